package dto

import (
	"time"

	"photofolio_backend/internal/models"
)

type CreateMediaRequest struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Description    *string  `json:"description" validate:"omitempty,max=2000"`
	FileName       string   `json:"file_name" validate:"required,max=255"`
	FilePath       string   `json:"file_path" validate:"required,max=1024"`
	FileSize       *int64   `json:"file_size" validate:"omitempty,min=0"`
	MimeType       *string  `json:"mime_type" validate:"omitempty,max=128"`
	MediaType      string   `json:"media_type" validate:"required,media_type"`
	StorageBucket  string   `json:"storage_bucket" validate:"omitempty,max=128"`
	UsageLocations []string `json:"usage_locations" validate:"omitempty,dive,max=128"`
}

// UpdateMediaRequest carries partial updates; nil fields are left untouched.
type UpdateMediaRequest struct {
	Title          *string  `json:"title" validate:"omitempty,max=255"`
	Description    *string  `json:"description" validate:"omitempty,max=2000"`
	UsageLocations []string `json:"usage_locations" validate:"omitempty,dive,max=128"`
}

type ListMediaRequest struct {
	Type   string `form:"type" validate:"omitempty,media_type"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" validate:"omitempty,min=0"`
}

type MediaItemResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    *string          `json:"description,omitempty"`
	FileName       string           `json:"file_name"`
	FilePath       string           `json:"file_path"`
	FileSize       *int64           `json:"file_size,omitempty"`
	MimeType       *string          `json:"mime_type,omitempty"`
	MediaType      models.MediaType `json:"media_type"`
	StorageBucket  string           `json:"storage_bucket"`
	UploadedBy     string           `json:"uploaded_by,omitempty"`
	UsageLocations []string         `json:"usage_locations"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type MediaStatsResponse struct {
	TotalItems    int64 `json:"total_items"`
	ImageCount    int64 `json:"image_count"`
	VideoCount    int64 `json:"video_count"`
	TotalFileSize int64 `json:"total_file_size"`
	RecentUploads int64 `json:"recent_uploads"`
}
