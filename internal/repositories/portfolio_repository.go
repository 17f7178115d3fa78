package repositories

import (
	"errors"
	"time"

	"photofolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
)

type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error)
	List(db *gorm.DB, includeHidden bool) ([]models.PortfolioItem, error)
	UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	CountVisible(db *gorm.DB) (int64, error)
	Count(db *gorm.DB) (int64, error)
	CountCreatedSince(db *gorm.DB, since time.Time) (int64, error)
}

type PortfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &PortfolioRepositoryImpl{}
}

func (r *PortfolioRepositoryImpl) Create(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Create(item).Error
}

func (r *PortfolioRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepositoryImpl) List(db *gorm.DB, includeHidden bool) ([]models.PortfolioItem, error) {
	query := db.Model(&models.PortfolioItem{})

	if !includeHidden {
		query = query.Where("visible = ?", true)
	}

	// Display rank ascending; ties resolved newest-first so the ordering is
	// reproducible under concurrent inserts with equal order_index.
	var items []models.PortfolioItem
	err := query.
		Order("order_index ASC").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *PortfolioRepositoryImpl) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.PortfolioItem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}

func (r *PortfolioRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.PortfolioItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}

func (r *PortfolioRepositoryImpl) CountVisible(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.PortfolioItem{}).Where("visible = ?", true).Count(&count).Error
	return count, err
}

func (r *PortfolioRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.PortfolioItem{}).Count(&count).Error
	return count, err
}

func (r *PortfolioRepositoryImpl) CountCreatedSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.PortfolioItem{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
