package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"photofolio_backend/internal/auth"
	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/repositories"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/internal/storage"
	"photofolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PortfolioService interface {
	ListPortfolio(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.ListPortfolioRequest) ([]dto.PortfolioItemResponse, error)
	GetPortfolioItem(ctx context.Context, db *gorm.DB, id string) (*dto.PortfolioItemResponse, error)
	CreatePortfolioItem(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	UpdatePortfolioItem(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	DeletePortfolioItem(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error
	PortfolioStats(ctx context.Context, db *gorm.DB, actor *models.Profile) (*dto.PortfolioStatsResponse, error)
}

type portfolioService struct {
	portfolioRepo   repositories.PortfolioRepository
	recorder        AuditRecorder
	store           storage.Storage
	portfolioBucket string
}

func NewPortfolioService(portfolioRepo repositories.PortfolioRepository, recorder AuditRecorder, store storage.Storage, portfolioBucket string) PortfolioService {
	return &portfolioService{
		portfolioRepo:   portfolioRepo,
		recorder:        recorder,
		store:           store,
		portfolioBucket: portfolioBucket,
	}
}

// ListPortfolio returns items ordered by order_index then newest-first.
// Hidden items are included only when requested by an admin; for everyone
// else the flag is ignored rather than rejected.
func (s *portfolioService) ListPortfolio(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.ListPortfolioRequest) ([]dto.PortfolioItemResponse, error) {
	includeHidden := req.IncludeHidden && auth.IsAdmin(actor)

	items, err := s.portfolioRepo.List(db, includeHidden)
	if err != nil {
		return nil, apperrors.StoreError(err, "portfolio")
	}

	out := make([]dto.PortfolioItemResponse, 0, len(items))
	for i := range items {
		out = append(out, newPortfolioItemResponse(&items[i]))
	}
	return out, nil
}

func (s *portfolioService) GetPortfolioItem(ctx context.Context, db *gorm.DB, id string) (*dto.PortfolioItemResponse, error) {
	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.ErrPortfolioItemNotFound
		}
		return nil, apperrors.StoreError(err, "portfolio")
	}
	resp := newPortfolioItemResponse(item)
	return &resp, nil
}

func (s *portfolioService) CreatePortfolioItem(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Visible:     true,
	}
	if req.OrderIndex != nil {
		item.OrderIndex = *req.OrderIndex
	}
	if req.Visible != nil {
		item.Visible = *req.Visible
	}

	if err := s.portfolioRepo.Create(db, item); err != nil {
		return nil, apperrors.StoreError(err, "portfolio")
	}

	s.recorder.Record(ctx, db, &actor.ID, "portfolio", models.AuditCreated, &item.ID, map[string]interface{}{
		"title": item.Title,
	})

	logger.CtxInfo(ctx, "portfolio item created", "item_id", item.ID)

	resp := newPortfolioItemResponse(item)
	return &resp, nil
}

func (s *portfolioService) UpdatePortfolioItem(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.ErrPortfolioItemNotFound
		}
		return nil, apperrors.StoreError(err, "portfolio")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
		item.Title = *req.Title
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
		item.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		item.Description = req.Description
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
		item.OrderIndex = *req.OrderIndex
	}
	if req.Visible != nil {
		updates["visible"] = *req.Visible
		item.Visible = *req.Visible
	}

	if len(updates) == 0 {
		resp := newPortfolioItemResponse(item)
		return &resp, nil
	}

	if err := s.portfolioRepo.UpdateFields(db, id, updates); err != nil {
		return nil, apperrors.StoreError(err, "portfolio")
	}

	s.recorder.Record(ctx, db, &actor.ID, "portfolio", models.AuditUpdated, &id, map[string]interface{}{
		"fields": updateKeys(updates),
	})

	resp := newPortfolioItemResponse(item)
	return &resp, nil
}

func (s *portfolioService) DeletePortfolioItem(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return apperrors.ErrPortfolioItemNotFound
		}
		return apperrors.StoreError(err, "portfolio")
	}

	// Only blobs living in the portfolio bucket are removed; externally
	// hosted images are left alone.
	if path, ok := s.bucketPath(item.ImageURL); ok {
		if err := s.store.Delete(ctx, s.portfolioBucket, path); err != nil {
			logger.CtxWarn(ctx, "failed to remove portfolio blob",
				"bucket", s.portfolioBucket, "path", path, "error", err)
		}
	}

	if err := s.portfolioRepo.Delete(db, id); err != nil {
		return apperrors.StoreError(err, "portfolio")
	}

	s.recorder.Record(ctx, db, &actor.ID, "portfolio", models.AuditDeleted, &id, map[string]interface{}{
		"image_url": item.ImageURL,
	})

	logger.CtxInfo(ctx, "portfolio item deleted", "item_id", id)
	return nil
}

func (s *portfolioService) PortfolioStats(ctx context.Context, db *gorm.DB, actor *models.Profile) (*dto.PortfolioStatsResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	total, err := s.portfolioRepo.Count(db)
	if err != nil {
		return nil, apperrors.StoreError(err, "portfolio")
	}
	visible, err := s.portfolioRepo.CountVisible(db)
	if err != nil {
		return nil, apperrors.StoreError(err, "portfolio")
	}
	recent, err := s.portfolioRepo.CountCreatedSince(db, time.Now().Add(-recentWindow))
	if err != nil {
		return nil, apperrors.StoreError(err, "portfolio")
	}

	return &dto.PortfolioStatsResponse{
		TotalItems:   total,
		VisibleItems: visible,
		HiddenItems:  total - visible,
		RecentItems:  recent,
	}, nil
}

// bucketPath extracts the object path from an image URL that references the
// portfolio bucket. Returns false for external URLs.
func (s *portfolioService) bucketPath(imageURL string) (string, bool) {
	marker := "/" + s.portfolioBucket + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return "", false
	}
	path := imageURL[idx+len(marker):]
	if path == "" {
		return "", false
	}
	return path, true
}

func newPortfolioItemResponse(item *models.PortfolioItem) dto.PortfolioItemResponse {
	return dto.PortfolioItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		ImageURL:    item.ImageURL,
		Description: item.Description,
		OrderIndex:  item.OrderIndex,
		Visible:     item.Visible,
		CreatedAt:   item.CreatedAt,
	}
}
