package services

import (
	"context"
	"encoding/json"
	"errors"

	"photofolio_backend/internal/auth"
	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/repositories"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogService manages the content resources behind the public app
// screens. Listings are public (visible rows only unless the caller is an
// admin); all mutations are admin-gated and audited.
type CatalogService interface {
	ListLocations(ctx context.Context, db *gorm.DB, actor *models.Profile, includeHidden bool) ([]models.Location, error)
	GetLocation(ctx context.Context, db *gorm.DB, id string) (*models.Location, error)
	CreateLocation(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateLocationRequest) (*models.Location, error)
	UpdateLocation(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateLocationRequest) (*models.Location, error)
	DeleteLocation(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error

	ListWorkshops(ctx context.Context, db *gorm.DB, actor *models.Profile, includeHidden bool) ([]models.Workshop, error)
	CreateWorkshop(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateWorkshopRequest) (*models.Workshop, error)
	UpdateWorkshop(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateWorkshopRequest) (*models.Workshop, error)
	DeleteWorkshop(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error

	ListVideos(ctx context.Context, db *gorm.DB, actor *models.Profile, includeHidden bool) ([]models.BTSVideo, error)
	CreateVideo(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateBTSVideoRequest) (*models.BTSVideo, error)
	UpdateVideo(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateBTSVideoRequest) (*models.BTSVideo, error)
	DeleteVideo(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error

	ListCoupons(ctx context.Context, db *gorm.DB, actor *models.Profile) ([]models.Coupon, error)
	CreateCoupon(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateCouponRequest) (*models.Coupon, error)
	UpdateCoupon(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateCouponRequest) (*models.Coupon, error)
	DeleteCoupon(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error

	ListComments(ctx context.Context, db *gorm.DB, actor *models.Profile, locationID string, includeHidden bool) ([]models.LocationComment, error)
	CreateComment(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateCommentRequest) (*models.LocationComment, error)
	SetCommentHidden(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, hidden bool) error
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
	recorder    AuditRecorder
}

func NewCatalogService(catalogRepo repositories.CatalogRepository, recorder AuditRecorder) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		recorder:    recorder,
	}
}

// Locations

func (s *catalogService) ListLocations(ctx context.Context, db *gorm.DB, actor *models.Profile, includeHidden bool) ([]models.Location, error) {
	locations, err := s.catalogRepo.ListLocations(db, includeHidden && auth.IsAdmin(actor))
	if err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}
	return locations, nil
}

func (s *catalogService) GetLocation(ctx context.Context, db *gorm.DB, id string) (*models.Location, error) {
	location, err := s.catalogRepo.FindLocationByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, apperrors.StoreError(err, "catalog")
	}
	return location, nil
}

func (s *catalogService) CreateLocation(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateLocationRequest) (*models.Location, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	location := &models.Location{
		Title:        req.Title,
		HeroImageURL: req.HeroImageURL,
		StoryText:    req.StoryText,
		MapLat:       req.MapLat,
		MapLng:       req.MapLng,
		Visible:      true,
	}
	if req.Visible != nil {
		location.Visible = *req.Visible
	}
	if req.CameraSettings != nil {
		raw, err := json.Marshal(req.CameraSettings)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		location.CameraSettings = datatypes.JSON(raw)
	}

	if err := s.catalogRepo.CreateLocation(db, location); err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "locations", models.AuditCreated, &location.ID, map[string]interface{}{"title": location.Title})
	logger.CtxInfo(ctx, "location created", "location_id", location.ID)
	return location, nil
}

func (s *catalogService) UpdateLocation(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateLocationRequest) (*models.Location, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.FindLocationByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, apperrors.StoreError(err, "catalog")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.HeroImageURL != nil {
		updates["hero_image_url"] = *req.HeroImageURL
	}
	if req.StoryText != nil {
		updates["story_text"] = *req.StoryText
	}
	if req.MapLat != nil {
		updates["map_lat"] = *req.MapLat
	}
	if req.MapLng != nil {
		updates["map_lng"] = *req.MapLng
	}
	if req.Visible != nil {
		updates["visible"] = *req.Visible
	}
	if req.CameraSettings != nil {
		raw, err := json.Marshal(req.CameraSettings)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		updates["camera_settings"] = datatypes.JSON(raw)
	}

	if len(updates) > 0 {
		if err := s.catalogRepo.UpdateLocation(db, id, updates); err != nil {
			return nil, apperrors.StoreError(err, "catalog")
		}
		s.recorder.Record(ctx, db, &actor.ID, "locations", models.AuditUpdated, &id, map[string]interface{}{"fields": updateKeys(updates)})
	}

	return s.catalogRepo.FindLocationByID(db, id)
}

func (s *catalogService) DeleteLocation(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.catalogRepo.FindLocationByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return apperrors.StoreError(err, "catalog")
	}

	if err := s.catalogRepo.DeleteLocation(db, id); err != nil {
		return apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "locations", models.AuditDeleted, &id, nil)
	return nil
}

// Workshops

func (s *catalogService) ListWorkshops(ctx context.Context, db *gorm.DB, actor *models.Profile, includeHidden bool) ([]models.Workshop, error) {
	workshops, err := s.catalogRepo.ListWorkshops(db, includeHidden && auth.IsAdmin(actor))
	if err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}
	return workshops, nil
}

func (s *catalogService) CreateWorkshop(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateWorkshopRequest) (*models.Workshop, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	workshop := &models.Workshop{
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Price:            req.Price,
		ImageURL:         req.ImageURL,
		RegistrationLink: req.RegistrationLink,
		Visible:          true,
	}
	if req.Visible != nil {
		workshop.Visible = *req.Visible
	}

	if err := s.catalogRepo.CreateWorkshop(db, workshop); err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "workshops", models.AuditCreated, &workshop.ID, map[string]interface{}{"title": workshop.Title})
	return workshop, nil
}

func (s *catalogService) UpdateWorkshop(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateWorkshopRequest) (*models.Workshop, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.FindWorkshopByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrWorkshopNotFound) {
			return nil, apperrors.ErrWorkshopNotFound
		}
		return nil, apperrors.StoreError(err, "catalog")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.RegistrationLink != nil {
		updates["registration_link"] = *req.RegistrationLink
	}
	if req.Visible != nil {
		updates["visible"] = *req.Visible
	}

	if len(updates) > 0 {
		if err := s.catalogRepo.UpdateWorkshop(db, id, updates); err != nil {
			return nil, apperrors.StoreError(err, "catalog")
		}
		s.recorder.Record(ctx, db, &actor.ID, "workshops", models.AuditUpdated, &id, map[string]interface{}{"fields": updateKeys(updates)})
	}

	return s.catalogRepo.FindWorkshopByID(db, id)
}

func (s *catalogService) DeleteWorkshop(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.catalogRepo.FindWorkshopByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrWorkshopNotFound) {
			return apperrors.ErrWorkshopNotFound
		}
		return apperrors.StoreError(err, "catalog")
	}

	if err := s.catalogRepo.DeleteWorkshop(db, id); err != nil {
		return apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "workshops", models.AuditDeleted, &id, nil)
	return nil
}

// Behind-the-scenes videos

func (s *catalogService) ListVideos(ctx context.Context, db *gorm.DB, actor *models.Profile, includeHidden bool) ([]models.BTSVideo, error) {
	videos, err := s.catalogRepo.ListVideos(db, includeHidden && auth.IsAdmin(actor))
	if err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}
	return videos, nil
}

func (s *catalogService) CreateVideo(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateBTSVideoRequest) (*models.BTSVideo, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	video := &models.BTSVideo{
		Title:        req.Title,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Visible:      true,
	}
	if req.SubscriberOnly != nil {
		video.SubscriberOnly = *req.SubscriberOnly
	}
	if req.Visible != nil {
		video.Visible = *req.Visible
	}

	if err := s.catalogRepo.CreateVideo(db, video); err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "bts_videos", models.AuditCreated, &video.ID, map[string]interface{}{"title": video.Title})
	return video, nil
}

func (s *catalogService) UpdateVideo(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateBTSVideoRequest) (*models.BTSVideo, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.FindVideoByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, apperrors.ErrVideoNotFound
		}
		return nil, apperrors.StoreError(err, "catalog")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.SubscriberOnly != nil {
		updates["subscriber_only"] = *req.SubscriberOnly
	}
	if req.Visible != nil {
		updates["visible"] = *req.Visible
	}

	if len(updates) > 0 {
		if err := s.catalogRepo.UpdateVideo(db, id, updates); err != nil {
			return nil, apperrors.StoreError(err, "catalog")
		}
		s.recorder.Record(ctx, db, &actor.ID, "bts_videos", models.AuditUpdated, &id, map[string]interface{}{"fields": updateKeys(updates)})
	}

	return s.catalogRepo.FindVideoByID(db, id)
}

func (s *catalogService) DeleteVideo(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.catalogRepo.FindVideoByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return apperrors.ErrVideoNotFound
		}
		return apperrors.StoreError(err, "catalog")
	}

	if err := s.catalogRepo.DeleteVideo(db, id); err != nil {
		return apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "bts_videos", models.AuditDeleted, &id, nil)
	return nil
}

// Coupons

func (s *catalogService) ListCoupons(ctx context.Context, db *gorm.DB, actor *models.Profile) ([]models.Coupon, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	coupons, err := s.catalogRepo.ListCoupons(db)
	if err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}
	return coupons, nil
}

func (s *catalogService) CreateCoupon(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateCouponRequest) (*models.Coupon, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.FindCouponByCode(db, req.Code); err == nil {
		return nil, apperrors.ErrCouponCodeTaken
	} else if !errors.Is(err, repositories.ErrCouponNotFound) {
		return nil, apperrors.StoreError(err, "catalog")
	}

	coupon := &models.Coupon{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		Active:          true,
		ExpiresAt:       req.ExpiresAt,
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := s.catalogRepo.CreateCoupon(db, coupon); err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "coupons", models.AuditCreated, &coupon.ID, map[string]interface{}{"code": coupon.Code})
	return coupon, nil
}

func (s *catalogService) UpdateCoupon(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateCouponRequest) (*models.Coupon, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.FindCouponByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrCouponNotFound) {
			return nil, apperrors.ErrCouponNotFound
		}
		return nil, apperrors.StoreError(err, "catalog")
	}

	updates := map[string]interface{}{}
	if req.Code != nil {
		updates["code"] = *req.Code
	}
	if req.DiscountPercent != nil {
		updates["discount_percent"] = *req.DiscountPercent
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.ExpiresAt != nil {
		updates["expires_at"] = *req.ExpiresAt
	}

	if len(updates) > 0 {
		if err := s.catalogRepo.UpdateCoupon(db, id, updates); err != nil {
			return nil, apperrors.StoreError(err, "catalog")
		}
		s.recorder.Record(ctx, db, &actor.ID, "coupons", models.AuditUpdated, &id, map[string]interface{}{"fields": updateKeys(updates)})
	}

	return s.catalogRepo.FindCouponByID(db, id)
}

func (s *catalogService) DeleteCoupon(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.catalogRepo.FindCouponByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrCouponNotFound) {
			return apperrors.ErrCouponNotFound
		}
		return apperrors.StoreError(err, "catalog")
	}

	if err := s.catalogRepo.DeleteCoupon(db, id); err != nil {
		return apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "coupons", models.AuditDeleted, &id, nil)
	return nil
}

// Location comments

func (s *catalogService) ListComments(ctx context.Context, db *gorm.DB, actor *models.Profile, locationID string, includeHidden bool) ([]models.LocationComment, error) {
	comments, err := s.catalogRepo.ListComments(db, locationID, includeHidden && auth.IsAdmin(actor))
	if err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}
	return comments, nil
}

func (s *catalogService) CreateComment(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateCommentRequest) (*models.LocationComment, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.FindLocationByID(db, req.LocationID); err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, apperrors.StoreError(err, "catalog")
	}

	comment := &models.LocationComment{
		LocationID:  req.LocationID,
		UserID:      actor.ID,
		CommentText: req.CommentText,
	}
	if err := s.catalogRepo.CreateComment(db, comment); err != nil {
		return nil, apperrors.StoreError(err, "catalog")
	}

	return comment, nil
}

func (s *catalogService) SetCommentHidden(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, hidden bool) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.catalogRepo.FindCommentByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.StoreError(err, "catalog")
	}

	if err := s.catalogRepo.SetCommentHidden(db, id, hidden); err != nil {
		return apperrors.StoreError(err, "catalog")
	}

	s.recorder.Record(ctx, db, &actor.ID, "location_comments", models.AuditUpdated, &id, map[string]interface{}{"hidden": hidden})
	return nil
}
