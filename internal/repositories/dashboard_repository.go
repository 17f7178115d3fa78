package repositories

import (
	"photofolio_backend/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository exposes the row counts the dashboard aggregates.
// Each method is one COUNT statement so the service can fan them out
// concurrently.
type DashboardRepository interface {
	CountProfiles(db *gorm.DB) (int64, error)
	CountLocations(db *gorm.DB) (int64, error)
	CountWorkshops(db *gorm.DB) (int64, error)
	CountPortfolioItems(db *gorm.DB) (int64, error)
	CountVideos(db *gorm.DB) (int64, error)
	CountCoupons(db *gorm.DB) (int64, error)
	CountVisibleComments(db *gorm.DB) (int64, error)
}

type DashboardRepositoryImpl struct{}

func NewDashboardRepository() DashboardRepository {
	return &DashboardRepositoryImpl{}
}

func (r *DashboardRepositoryImpl) CountProfiles(db *gorm.DB) (int64, error) {
	return countModel(db, &models.Profile{})
}

func (r *DashboardRepositoryImpl) CountLocations(db *gorm.DB) (int64, error) {
	return countModel(db, &models.Location{})
}

func (r *DashboardRepositoryImpl) CountWorkshops(db *gorm.DB) (int64, error) {
	return countModel(db, &models.Workshop{})
}

func (r *DashboardRepositoryImpl) CountPortfolioItems(db *gorm.DB) (int64, error) {
	return countModel(db, &models.PortfolioItem{})
}

func (r *DashboardRepositoryImpl) CountVideos(db *gorm.DB) (int64, error) {
	return countModel(db, &models.BTSVideo{})
}

func (r *DashboardRepositoryImpl) CountCoupons(db *gorm.DB) (int64, error) {
	return countModel(db, &models.Coupon{})
}

func (r *DashboardRepositoryImpl) CountVisibleComments(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.LocationComment{}).Where("hidden = ?", false).Count(&count).Error
	return count, err
}

func countModel(db *gorm.DB, model interface{}) (int64, error) {
	var count int64
	err := db.Model(model).Count(&count).Error
	return count, err
}
