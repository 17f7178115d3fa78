package repositories

import (
	"errors"

	"photofolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrWorkshopNotFound = errors.New("workshop not found")
	ErrVideoNotFound    = errors.New("bts video not found")
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrCommentNotFound  = errors.New("location comment not found")
)

// CatalogRepository covers the content resources behind the public app
// screens: locations, workshops, behind-the-scenes videos, coupons and
// location comments.
type CatalogRepository interface {
	CreateLocation(db *gorm.DB, location *models.Location) error
	FindLocationByID(db *gorm.DB, id string) (*models.Location, error)
	ListLocations(db *gorm.DB, includeHidden bool) ([]models.Location, error)
	UpdateLocation(db *gorm.DB, id string, updates map[string]interface{}) error
	DeleteLocation(db *gorm.DB, id string) error

	CreateWorkshop(db *gorm.DB, workshop *models.Workshop) error
	FindWorkshopByID(db *gorm.DB, id string) (*models.Workshop, error)
	ListWorkshops(db *gorm.DB, includeHidden bool) ([]models.Workshop, error)
	UpdateWorkshop(db *gorm.DB, id string, updates map[string]interface{}) error
	DeleteWorkshop(db *gorm.DB, id string) error

	CreateVideo(db *gorm.DB, video *models.BTSVideo) error
	FindVideoByID(db *gorm.DB, id string) (*models.BTSVideo, error)
	ListVideos(db *gorm.DB, includeHidden bool) ([]models.BTSVideo, error)
	UpdateVideo(db *gorm.DB, id string, updates map[string]interface{}) error
	DeleteVideo(db *gorm.DB, id string) error

	CreateCoupon(db *gorm.DB, coupon *models.Coupon) error
	FindCouponByID(db *gorm.DB, id string) (*models.Coupon, error)
	FindCouponByCode(db *gorm.DB, code string) (*models.Coupon, error)
	ListCoupons(db *gorm.DB) ([]models.Coupon, error)
	UpdateCoupon(db *gorm.DB, id string, updates map[string]interface{}) error
	DeleteCoupon(db *gorm.DB, id string) error

	CreateComment(db *gorm.DB, comment *models.LocationComment) error
	FindCommentByID(db *gorm.DB, id string) (*models.LocationComment, error)
	ListComments(db *gorm.DB, locationID string, includeHidden bool) ([]models.LocationComment, error)
	SetCommentHidden(db *gorm.DB, id string, hidden bool) error
}

type CatalogRepositoryImpl struct{}

func NewCatalogRepository() CatalogRepository {
	return &CatalogRepositoryImpl{}
}

// --- locations ---

func (r *CatalogRepositoryImpl) CreateLocation(db *gorm.DB, location *models.Location) error {
	return db.Create(location).Error
}

func (r *CatalogRepositoryImpl) FindLocationByID(db *gorm.DB, id string) (*models.Location, error) {
	var location models.Location
	if err := db.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *CatalogRepositoryImpl) ListLocations(db *gorm.DB, includeHidden bool) ([]models.Location, error) {
	query := db.Model(&models.Location{})
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}
	var locations []models.Location
	err := query.Order("created_at DESC").Find(&locations).Error
	return locations, err
}

func (r *CatalogRepositoryImpl) UpdateLocation(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.Location{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) DeleteLocation(db *gorm.DB, id string) error {
	result := db.Delete(&models.Location{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}

// --- workshops ---

func (r *CatalogRepositoryImpl) CreateWorkshop(db *gorm.DB, workshop *models.Workshop) error {
	return db.Create(workshop).Error
}

func (r *CatalogRepositoryImpl) FindWorkshopByID(db *gorm.DB, id string) (*models.Workshop, error) {
	var workshop models.Workshop
	if err := db.First(&workshop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}
	return &workshop, nil
}

func (r *CatalogRepositoryImpl) ListWorkshops(db *gorm.DB, includeHidden bool) ([]models.Workshop, error) {
	query := db.Model(&models.Workshop{})
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}
	var workshops []models.Workshop
	err := query.Order("date ASC NULLS LAST").Order("created_at DESC").Find(&workshops).Error
	return workshops, err
}

func (r *CatalogRepositoryImpl) UpdateWorkshop(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.Workshop{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkshopNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) DeleteWorkshop(db *gorm.DB, id string) error {
	result := db.Delete(&models.Workshop{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkshopNotFound
	}
	return nil
}

// --- bts videos ---

func (r *CatalogRepositoryImpl) CreateVideo(db *gorm.DB, video *models.BTSVideo) error {
	return db.Create(video).Error
}

func (r *CatalogRepositoryImpl) FindVideoByID(db *gorm.DB, id string) (*models.BTSVideo, error) {
	var video models.BTSVideo
	if err := db.First(&video, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *CatalogRepositoryImpl) ListVideos(db *gorm.DB, includeHidden bool) ([]models.BTSVideo, error) {
	query := db.Model(&models.BTSVideo{})
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}
	var videos []models.BTSVideo
	err := query.Order("created_at DESC").Find(&videos).Error
	return videos, err
}

func (r *CatalogRepositoryImpl) UpdateVideo(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.BTSVideo{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) DeleteVideo(db *gorm.DB, id string) error {
	result := db.Delete(&models.BTSVideo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

// --- coupons ---

func (r *CatalogRepositoryImpl) CreateCoupon(db *gorm.DB, coupon *models.Coupon) error {
	return db.Create(coupon).Error
}

func (r *CatalogRepositoryImpl) FindCouponByID(db *gorm.DB, id string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := db.First(&coupon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *CatalogRepositoryImpl) FindCouponByCode(db *gorm.DB, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := db.First(&coupon, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *CatalogRepositoryImpl) ListCoupons(db *gorm.DB) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := db.Model(&models.Coupon{}).Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (r *CatalogRepositoryImpl) UpdateCoupon(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.Coupon{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) DeleteCoupon(db *gorm.DB, id string) error {
	result := db.Delete(&models.Coupon{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

// --- location comments ---

func (r *CatalogRepositoryImpl) CreateComment(db *gorm.DB, comment *models.LocationComment) error {
	return db.Create(comment).Error
}

func (r *CatalogRepositoryImpl) FindCommentByID(db *gorm.DB, id string) (*models.LocationComment, error) {
	var comment models.LocationComment
	if err := db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CatalogRepositoryImpl) ListComments(db *gorm.DB, locationID string, includeHidden bool) ([]models.LocationComment, error) {
	query := db.Model(&models.LocationComment{}).Where("location_id = ?", locationID)
	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}
	var comments []models.LocationComment
	err := query.Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *CatalogRepositoryImpl) SetCommentHidden(db *gorm.DB, id string, hidden bool) error {
	result := db.Model(&models.LocationComment{}).Where("id = ?", id).Update("hidden", hidden)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
