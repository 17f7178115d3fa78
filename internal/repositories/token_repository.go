package repositories

import (
	"errors"
	"time"

	"photofolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrResetTokenNotFound   = errors.New("password reset token not found")
)

// TokenRepository persists refresh tokens and password reset tokens.
type TokenRepository interface {
	CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error
	FindRefreshToken(db *gorm.DB, tokenString string) (*models.RefreshToken, error)
	DeleteRefreshToken(db *gorm.DB, tokenString string) error
	DeleteRefreshTokensByUser(db *gorm.DB, userID string) error
	CleanExpiredRefreshTokens(db *gorm.DB) error

	CreateResetToken(db *gorm.DB, token *models.PasswordResetToken) error
	FindResetToken(db *gorm.DB, tokenString string) (*models.PasswordResetToken, error)
	MarkResetTokenUsed(db *gorm.DB, id string) error
}

type TokenRepositoryImpl struct{}

func NewTokenRepository() TokenRepository {
	return &TokenRepositoryImpl{}
}

func (r *TokenRepositoryImpl) CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error {
	return db.Create(token).Error
}

func (r *TokenRepositoryImpl) FindRefreshToken(db *gorm.DB, tokenString string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := db.First(&token, "token = ?", tokenString).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepositoryImpl) DeleteRefreshToken(db *gorm.DB, tokenString string) error {
	return db.Delete(&models.RefreshToken{}, "token = ?", tokenString).Error
}

func (r *TokenRepositoryImpl) DeleteRefreshTokensByUser(db *gorm.DB, userID string) error {
	return db.Delete(&models.RefreshToken{}, "user_id = ?", userID).Error
}

func (r *TokenRepositoryImpl) CleanExpiredRefreshTokens(db *gorm.DB) error {
	return db.Delete(&models.RefreshToken{}, "expires_at < ?", time.Now()).Error
}

func (r *TokenRepositoryImpl) CreateResetToken(db *gorm.DB, token *models.PasswordResetToken) error {
	return db.Create(token).Error
}

func (r *TokenRepositoryImpl) FindResetToken(db *gorm.DB, tokenString string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	err := db.First(&token, "token = ?", tokenString).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepositoryImpl) MarkResetTokenUsed(db *gorm.DB, id string) error {
	return db.Model(&models.PasswordResetToken{}).Where("id = ?", id).Update("used", true).Error
}
