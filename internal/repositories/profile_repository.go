package repositories

import (
	"errors"
	"time"

	"photofolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileFilters narrows and orders the admin user listing.
type ProfileFilters struct {
	Search    string // matched against name, email and phone
	Role      string
	Status    string
	SortBy    string // created_at, last_login, name, email
	SortOrder string // asc, desc
	Limit     int
	Offset    int
}

var profileSortColumns = map[string]bool{
	"created_at": true,
	"last_login": true,
	"name":       true,
	"email":      true,
}

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	FindByEmail(db *gorm.DB, email string) (*models.Profile, error)
	List(db *gorm.DB, filters ProfileFilters) ([]models.Profile, int64, error)
	Update(db *gorm.DB, profile *models.Profile) error
	UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error
	UpdateLastLogin(db *gorm.DB, id string, at time.Time) error
	Delete(db *gorm.DB, id string) error
	DeleteMany(db *gorm.DB, ids []string) (int64, error)
	Count(db *gorm.DB) (int64, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) List(db *gorm.DB, filters ProfileFilters) ([]models.Profile, int64, error) {
	query := db.Model(&models.Profile{})

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}
	if filters.Role != "" {
		query = query.Where("role = ?", filters.Role)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filters.SortBy
	if !profileSortColumns[sortBy] {
		sortBy = "created_at"
	}
	direction := "DESC"
	if filters.SortOrder == "asc" {
		direction = "ASC"
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var profiles []models.Profile
	// Two-key sort: requested column first, created_at DESC breaks ties
	// deterministically under concurrent inserts.
	err := query.
		Order(sortBy + " " + direction).
		Order("created_at DESC").
		Limit(limit).
		Offset(filters.Offset).
		Find(&profiles).Error

	return profiles, total, err
}

func (r *ProfileRepositoryImpl) Update(db *gorm.DB, profile *models.Profile) error {
	result := db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.Profile{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateLastLogin(db *gorm.DB, id string, at time.Time) error {
	return db.Model(&models.Profile{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *ProfileRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) DeleteMany(db *gorm.DB, ids []string) (int64, error) {
	result := db.Delete(&models.Profile{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

func (r *ProfileRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}
