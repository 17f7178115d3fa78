package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"photofolio_backend/internal/auth"
	"photofolio_backend/internal/email"
	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/repositories"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	refreshTokenTTL = 30 * 24 * time.Hour
	resetTokenTTL   = 30 * time.Minute
)

// AuthService is the in-repo identity provider: registration, login,
// token refresh, logout, password reset and self-service profile access.
// The identity resolver middleware consumes only ResolveToken.
type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, db *gorm.DB, req *dto.LogoutRequest) error

	RequestPasswordReset(ctx context.Context, db *gorm.DB, req *dto.PasswordResetRequest) error
	ResetPassword(ctx context.Context, db *gorm.DB, req *dto.PasswordResetConfirm) error
	ChangePassword(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.ChangePasswordRequest) error

	GetProfile(ctx context.Context, db *gorm.DB, actor *models.Profile) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)

	// ResolveToken loads the profile behind an access token. Callers treat
	// any error as anonymous; it never fails a request by itself.
	ResolveToken(ctx context.Context, db *gorm.DB, tokenString string) (*models.Profile, error)

	// EnsureAdmin seeds the first admin account when the profile table is
	// empty. Called once at startup.
	EnsureAdmin(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) error
}

type authService struct {
	profileRepo repositories.ProfileRepository
	tokenRepo   repositories.TokenRepository
	tokens      *auth.TokenService
	mailer      email.Provider
	resetURL    string
}

func NewAuthService(profileRepo repositories.ProfileRepository, tokenRepo repositories.TokenRepository, tokens *auth.TokenService, mailer email.Provider, resetURL string) AuthService {
	return &authService{
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		tokens:      tokens,
		mailer:      mailer,
		resetURL:    resetURL,
	}
}

func (s *authService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.profileRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.StoreError(err, "auth")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         models.RoleViewer,
		Status:       models.StatusActive,
	}
	if err := s.profileRepo.Create(db, profile); err != nil {
		return nil, apperrors.StoreError(err, "auth")
	}

	logger.CtxInfo(ctx, "profile registered", "user_id", profile.ID)
	return s.issueTokens(ctx, db, profile)
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	profile, err := s.profileRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StoreError(err, "auth")
	}

	if !auth.CheckPasswordHash(req.Password, profile.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if profile.Status == models.StatusSuspended {
		return nil, apperrors.ErrAccountSuspended
	}

	now := time.Now()
	if err := s.profileRepo.UpdateLastLogin(db, profile.ID, now); err != nil {
		// Login still succeeds; the timestamp is cosmetic.
		logger.CtxWarn(ctx, "failed to update last_login", "user_id", profile.ID, "error", err)
	}
	profile.LastLogin = &now

	logger.CtxInfo(ctx, "login", "user_id", profile.ID)
	return s.issueTokens(ctx, db, profile)
}

func (s *authService) Refresh(ctx context.Context, db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	stored, err := s.tokenRepo.FindRefreshToken(db, req.RefreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.StoreError(err, "auth")
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.DeleteRefreshToken(db, req.RefreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	profile, err := s.profileRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if profile.Status == models.StatusSuspended {
		return nil, apperrors.ErrAccountSuspended
	}

	// Rotate: the presented token is consumed.
	if err := s.tokenRepo.DeleteRefreshToken(db, req.RefreshToken); err != nil {
		return nil, apperrors.StoreError(err, "auth")
	}

	return s.issueTokens(ctx, db, profile)
}

func (s *authService) Logout(ctx context.Context, db *gorm.DB, req *dto.LogoutRequest) error {
	if err := s.tokenRepo.DeleteRefreshToken(db, req.RefreshToken); err != nil {
		return apperrors.StoreError(err, "auth")
	}
	return nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, db *gorm.DB, req *dto.PasswordResetRequest) error {
	profile, err := s.profileRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			// Do not reveal whether the email exists.
			return nil
		}
		return apperrors.StoreError(err, "auth")
	}

	token := &models.PasswordResetToken{
		UserID:    profile.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.tokenRepo.CreateResetToken(db, token); err != nil {
		return apperrors.StoreError(err, "auth")
	}

	resetURL := fmt.Sprintf("%s?token=%s", s.resetURL, token.Token)
	msg, err := email.PasswordResetMessage(profile.Email, profile.Name, resetURL, int(resetTokenTTL.Minutes()))
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.mailer.Send(msg); err != nil {
		logger.CtxWithError(ctx, "failed to send password reset email", err, "user_id", profile.ID)
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset requested", "user_id", profile.ID)
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, db *gorm.DB, req *dto.PasswordResetConfirm) error {
	stored, err := s.tokenRepo.FindResetToken(db, req.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.StoreError(err, "auth")
	}

	if stored.Used || time.Now().After(stored.ExpiresAt) {
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.profileRepo.UpdateFields(db, stored.UserID, map[string]interface{}{"password_hash": hash}); err != nil {
		return apperrors.StoreError(err, "auth")
	}
	if err := s.tokenRepo.MarkResetTokenUsed(db, stored.ID); err != nil {
		return apperrors.StoreError(err, "auth")
	}

	// Force re-login everywhere.
	if err := s.tokenRepo.DeleteRefreshTokensByUser(db, stored.UserID); err != nil {
		logger.CtxWarn(ctx, "failed to revoke refresh tokens", "user_id", stored.UserID, "error", err)
	}

	logger.CtxInfo(ctx, "password reset", "user_id", stored.UserID)
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.ChangePasswordRequest) error {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return err
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, actor.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.profileRepo.UpdateFields(db, actor.ID, map[string]interface{}{"password_hash": hash}); err != nil {
		return apperrors.StoreError(err, "auth")
	}

	logger.CtxInfo(ctx, "password changed", "user_id", actor.ID)
	return nil
}

func (s *authService) GetProfile(ctx context.Context, db *gorm.DB, actor *models.Profile) (*dto.ProfileResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	resp := dto.NewProfileResponse(actor)
	return &resp, nil
}

// UpdateProfile changes the self-service fields only. Role and status are
// reserved for the admin user procedures.
func (s *authService) UpdateProfile(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
		actor.Name = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
		actor.Phone = *req.Phone
	}
	if req.ProfileImageURL != nil {
		updates["profile_image_url"] = *req.ProfileImageURL
		actor.ProfileImageURL = *req.ProfileImageURL
	}

	if len(updates) > 0 {
		if err := s.profileRepo.UpdateFields(db, actor.ID, updates); err != nil {
			return nil, apperrors.StoreError(err, "auth")
		}
	}

	resp := dto.NewProfileResponse(actor)
	return &resp, nil
}

func (s *authService) ResolveToken(ctx context.Context, db *gorm.DB, tokenString string) (*models.Profile, error) {
	claims, err := s.tokens.ParseToken(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	profile, err := s.profileRepo.FindByID(db, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.StoreError(err, "auth")
	}

	if profile.Status == models.StatusSuspended {
		return nil, apperrors.ErrAccountSuspended
	}

	return profile, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) error {
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	count, err := s.profileRepo.Count(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.Profile{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	if err := s.profileRepo.Create(db, admin); err != nil {
		return err
	}

	logger.Info("seeded first admin account", "email", adminEmail)
	return nil
}

func (s *authService) issueTokens(ctx context.Context, db *gorm.DB, profile *models.Profile) (*dto.AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(profile.ID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    profile.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.CreateRefreshToken(db, refresh); err != nil {
		return nil, apperrors.StoreError(err, "auth")
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		User:         dto.NewProfileResponse(profile),
	}, nil
}
