package repositories

import (
	"errors"
	"time"

	"photofolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMediaItemNotFound = errors.New("media item not found")
)

// MediaFilters narrows the public media listing.
type MediaFilters struct {
	Type   string // image, video, or "" for all
	Limit  int
	Offset int
}

type MediaRepository interface {
	Create(db *gorm.DB, item *models.MediaItem) error
	FindByID(db *gorm.DB, id string) (*models.MediaItem, error)
	List(db *gorm.DB, filters MediaFilters) ([]models.MediaItem, error)
	UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	CountByType(db *gorm.DB, mediaType models.MediaType) (int64, error)
	TotalFileSize(db *gorm.DB) (int64, error)
	CountCreatedSince(db *gorm.DB, since time.Time) (int64, error)
}

type MediaRepositoryImpl struct{}

func NewMediaRepository() MediaRepository {
	return &MediaRepositoryImpl{}
}

func (r *MediaRepositoryImpl) Create(db *gorm.DB, item *models.MediaItem) error {
	return db.Create(item).Error
}

func (r *MediaRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.MediaItem, error) {
	var item models.MediaItem
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *MediaRepositoryImpl) List(db *gorm.DB, filters MediaFilters) ([]models.MediaItem, error) {
	query := db.Model(&models.MediaItem{})

	if filters.Type != "" {
		query = query.Where("media_type = ?", filters.Type)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	var items []models.MediaItem
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(filters.Offset).
		Find(&items).Error
	return items, err
}

func (r *MediaRepositoryImpl) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.MediaItem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaItemNotFound
	}
	return nil
}

func (r *MediaRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.MediaItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaItemNotFound
	}
	return nil
}

func (r *MediaRepositoryImpl) CountByType(db *gorm.DB, mediaType models.MediaType) (int64, error) {
	var count int64
	err := db.Model(&models.MediaItem{}).Where("media_type = ?", mediaType).Count(&count).Error
	return count, err
}

func (r *MediaRepositoryImpl) TotalFileSize(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.MediaItem{}).
		Select("COALESCE(SUM(file_size), 0)").
		Scan(&total).Error
	return total, err
}

func (r *MediaRepositoryImpl) CountCreatedSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.MediaItem{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
