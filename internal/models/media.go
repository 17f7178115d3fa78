package models

import "gorm.io/datatypes"

// MediaItem is an uploaded binary asset in the media library. The blob lives
// in the storage bridge under (StorageBucket, FilePath); the row only
// describes it. FilePath is unique within its bucket.
type MediaItem struct {
	BaseModel
	Title          string         `gorm:"not null" json:"title"`
	Description    *string        `json:"description"`
	FileName       string         `gorm:"not null" json:"file_name"`
	FilePath       string         `gorm:"not null;uniqueIndex:idx_media_bucket_path" json:"file_path"`
	FileSize       *int64         `json:"file_size"`
	MimeType       *string        `json:"mime_type"`
	MediaType      MediaType      `gorm:"type:varchar(10);not null" json:"media_type"`
	StorageBucket  string         `gorm:"not null;uniqueIndex:idx_media_bucket_path" json:"storage_bucket"`
	UploadedBy     string         `gorm:"not null;index" json:"uploaded_by"`
	UsageLocations datatypes.JSON `json:"usage_locations"`
}
