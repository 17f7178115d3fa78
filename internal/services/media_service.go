package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"photofolio_backend/internal/auth"
	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/repositories"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/internal/storage"
	"photofolio_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recentWindow bounds the "recent uploads" stat.
const recentWindow = 7 * 24 * time.Hour

type MediaService interface {
	ListMedia(ctx context.Context, db *gorm.DB, req *dto.ListMediaRequest) ([]dto.MediaItemResponse, error)
	GetMediaItem(ctx context.Context, db *gorm.DB, id string) (*dto.MediaItemResponse, error)
	CreateMediaItem(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateMediaRequest) (*dto.MediaItemResponse, error)
	UpdateMediaItem(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateMediaRequest) (*dto.MediaItemResponse, error)
	DeleteMediaItem(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error
	MediaStats(ctx context.Context, db *gorm.DB, actor *models.Profile) (*dto.MediaStatsResponse, error)
}

type mediaService struct {
	mediaRepo   repositories.MediaRepository
	recorder    AuditRecorder
	store       storage.Storage
	mediaBucket string
}

func NewMediaService(mediaRepo repositories.MediaRepository, recorder AuditRecorder, store storage.Storage, mediaBucket string) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		recorder:    recorder,
		store:       store,
		mediaBucket: mediaBucket,
	}
}

func (s *mediaService) ListMedia(ctx context.Context, db *gorm.DB, req *dto.ListMediaRequest) ([]dto.MediaItemResponse, error) {
	items, err := s.mediaRepo.List(db, repositories.MediaFilters{
		Type:   req.Type,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return nil, apperrors.StoreError(err, "media")
	}

	out := make([]dto.MediaItemResponse, 0, len(items))
	for i := range items {
		out = append(out, newMediaItemResponse(&items[i]))
	}
	return out, nil
}

func (s *mediaService) GetMediaItem(ctx context.Context, db *gorm.DB, id string) (*dto.MediaItemResponse, error) {
	item, err := s.mediaRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaItemNotFound) {
			return nil, apperrors.ErrMediaNotFound
		}
		return nil, apperrors.StoreError(err, "media")
	}
	resp := newMediaItemResponse(item)
	return &resp, nil
}

func (s *mediaService) CreateMediaItem(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.CreateMediaRequest) (*dto.MediaItemResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if !models.ValidMediaType(req.MediaType) {
		return nil, apperrors.ErrInvalidMediaType
	}

	bucket := req.StorageBucket
	if bucket == "" {
		bucket = s.mediaBucket
	}

	item := &models.MediaItem{
		Title:         req.Title,
		Description:   req.Description,
		FileName:      req.FileName,
		FilePath:      req.FilePath,
		FileSize:      req.FileSize,
		MimeType:      req.MimeType,
		MediaType:     models.MediaType(req.MediaType),
		StorageBucket: bucket,
		UploadedBy:    actor.ID,
	}
	if len(req.UsageLocations) > 0 {
		raw, err := json.Marshal(req.UsageLocations)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		item.UsageLocations = datatypes.JSON(raw)
	}

	if err := s.mediaRepo.Create(db, item); err != nil {
		return nil, apperrors.StoreError(err, "media")
	}

	s.recorder.Record(ctx, db, &actor.ID, "media_items", models.AuditCreated, &item.ID, map[string]interface{}{
		"title":      item.Title,
		"media_type": item.MediaType,
	})

	logger.CtxInfo(ctx, "media item created", "media_id", item.ID, "type", item.MediaType)

	resp := newMediaItemResponse(item)
	return &resp, nil
}

func (s *mediaService) UpdateMediaItem(ctx context.Context, db *gorm.DB, actor *models.Profile, id string, req *dto.UpdateMediaRequest) (*dto.MediaItemResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	item, err := s.mediaRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaItemNotFound) {
			return nil, apperrors.ErrMediaNotFound
		}
		return nil, apperrors.StoreError(err, "media")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
		item.Title = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		item.Description = req.Description
	}
	if req.UsageLocations != nil {
		raw, err := json.Marshal(req.UsageLocations)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		updates["usage_locations"] = datatypes.JSON(raw)
		item.UsageLocations = datatypes.JSON(raw)
	}

	// Nothing to change: return the existing row unchanged.
	if len(updates) == 0 {
		resp := newMediaItemResponse(item)
		return &resp, nil
	}

	if err := s.mediaRepo.UpdateFields(db, id, updates); err != nil {
		return nil, apperrors.StoreError(err, "media")
	}

	s.recorder.Record(ctx, db, &actor.ID, "media_items", models.AuditUpdated, &id, map[string]interface{}{
		"fields": updateKeys(updates),
	})

	resp := newMediaItemResponse(item)
	return &resp, nil
}

func (s *mediaService) DeleteMediaItem(ctx context.Context, db *gorm.DB, actor *models.Profile, id string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	item, err := s.mediaRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaItemNotFound) {
			return apperrors.ErrMediaNotFound
		}
		return apperrors.StoreError(err, "media")
	}

	// Blob first. An orphaned blob is recoverable; an orphaned row pointing
	// at a deleted blob is not, so removal failures only warn.
	if item.FilePath != "" {
		if err := s.store.Delete(ctx, item.StorageBucket, item.FilePath); err != nil {
			logger.CtxWarn(ctx, "failed to remove media blob",
				"bucket", item.StorageBucket, "path", item.FilePath, "error", err)
		}
	}

	if err := s.mediaRepo.Delete(db, id); err != nil {
		return apperrors.StoreError(err, "media")
	}

	s.recorder.Record(ctx, db, &actor.ID, "media_items", models.AuditDeleted, &id, map[string]interface{}{
		"file_path": item.FilePath,
	})

	logger.CtxInfo(ctx, "media item deleted", "media_id", id)
	return nil
}

func (s *mediaService) MediaStats(ctx context.Context, db *gorm.DB, actor *models.Profile) (*dto.MediaStatsResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	images, err := s.mediaRepo.CountByType(db, models.MediaTypeImage)
	if err != nil {
		return nil, apperrors.StoreError(err, "media")
	}
	videos, err := s.mediaRepo.CountByType(db, models.MediaTypeVideo)
	if err != nil {
		return nil, apperrors.StoreError(err, "media")
	}
	totalSize, err := s.mediaRepo.TotalFileSize(db)
	if err != nil {
		return nil, apperrors.StoreError(err, "media")
	}
	recent, err := s.mediaRepo.CountCreatedSince(db, time.Now().Add(-recentWindow))
	if err != nil {
		return nil, apperrors.StoreError(err, "media")
	}

	return &dto.MediaStatsResponse{
		TotalItems:    images + videos,
		ImageCount:    images,
		VideoCount:    videos,
		TotalFileSize: totalSize,
		RecentUploads: recent,
	}, nil
}

func newMediaItemResponse(item *models.MediaItem) dto.MediaItemResponse {
	var usage []string
	if len(item.UsageLocations) > 0 {
		_ = json.Unmarshal(item.UsageLocations, &usage)
	}
	if usage == nil {
		usage = []string{}
	}
	return dto.MediaItemResponse{
		ID:             item.ID,
		Title:          item.Title,
		Description:    item.Description,
		FileName:       item.FileName,
		FilePath:       item.FilePath,
		FileSize:       item.FileSize,
		MimeType:       item.MimeType,
		MediaType:      item.MediaType,
		StorageBucket:  item.StorageBucket,
		UploadedBy:     item.UploadedBy,
		UsageLocations: usage,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func updateKeys(updates map[string]interface{}) []string {
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	return keys
}
