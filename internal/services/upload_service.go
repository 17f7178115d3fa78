package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"photofolio_backend/internal/auth"
	"photofolio_backend/internal/imageprocessor"
	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/internal/storage"
	"photofolio_backend/pkg/apperrors"
)

// UploadConfig carries the upload limits from the application config.
type UploadConfig struct {
	MaxSize         int64
	AllowedTypes    []string
	MediaBucket     string
	PortfolioBucket string
}

type UploadService interface {
	UploadFile(ctx context.Context, actor *models.Profile, file *multipart.FileHeader, req *dto.UploadRequest) (*dto.UploadResponse, error)
	DeleteFile(ctx context.Context, actor *models.Profile, bucket, path string) error
}

type uploadService struct {
	store     storage.Storage
	processor *imageprocessor.Processor
	cfg       UploadConfig
}

func NewUploadService(store storage.Storage, processor *imageprocessor.Processor, cfg UploadConfig) UploadService {
	return &uploadService{
		store:     store,
		processor: processor,
		cfg:       cfg,
	}
}

func (s *uploadService) UploadFile(ctx context.Context, actor *models.Profile, file *multipart.FileHeader, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if file.Size > s.cfg.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	mimeType := file.Header.Get("Content-Type")
	if !s.allowedType(mimeType) {
		return nil, apperrors.ErrInvalidFileType
	}

	bucket := s.cfg.MediaBucket
	if req.Bucket == "portfolio" {
		bucket = s.cfg.PortfolioBucket
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext == "" {
		ext = extensionFor(mimeType)
	}
	path := fmt.Sprintf("%s/%d.%s", actor.ID, time.Now().UnixNano(), ext)

	if !req.Overwrite {
		exists, err := s.store.Exists(ctx, bucket, path)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if exists {
			return nil, apperrors.ErrFileExists
		}
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	if err := s.store.Save(ctx, bucket, path, src, mimeType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, bucket, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	mediaType := string(models.MediaTypeImage)
	if strings.HasPrefix(mimeType, "video/") {
		mediaType = string(models.MediaTypeVideo)
	}

	resp := &dto.UploadResponse{
		Path:      path,
		URL:       url,
		FileName:  file.Filename,
		FileSize:  file.Size,
		MimeType:  mimeType,
		MediaType: mediaType,
	}

	if req.Thumbnail && mediaType == string(models.MediaTypeImage) {
		if thumbURL, err := s.saveThumbnail(ctx, file, bucket, path); err != nil {
			// The original stays usable without its thumbnail.
			logger.CtxWarn(ctx, "failed to generate thumbnail", "path", path, "error", err)
		} else {
			resp.ThumbnailURL = thumbURL
		}
	}

	logger.CtxInfo(ctx, "file uploaded", "bucket", bucket, "path", path, "size", file.Size)
	return resp, nil
}

func (s *uploadService) DeleteFile(ctx context.Context, actor *models.Profile, bucket, path string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, bucket, path); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "file deleted", "bucket", bucket, "path", path)
	return nil
}

func (s *uploadService) saveThumbnail(ctx context.Context, file *multipart.FileHeader, bucket, path string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	resized, err := s.processor.Resize(src, imageprocessor.SizeThumbnail)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(path)
	thumbPath := strings.TrimSuffix(path, ext) + "_thumb" + ext

	if err := s.store.Save(ctx, bucket, thumbPath, resized, file.Header.Get("Content-Type")); err != nil {
		return "", err
	}
	return s.store.GetURL(ctx, bucket, thumbPath)
}

func (s *uploadService) allowedType(mimeType string) bool {
	for _, t := range s.cfg.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "video/mp4":
		return "mp4"
	case "video/quicktime":
		return "mov"
	default:
		return "bin"
	}
}
