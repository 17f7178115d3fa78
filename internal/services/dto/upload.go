package dto

// UploadRequest describes a multipart upload target. The file itself comes
// from the multipart form, not this struct.
type UploadRequest struct {
	Bucket    string `form:"bucket" validate:"omitempty,oneof=media portfolio"`
	Overwrite bool   `form:"overwrite"`
	Thumbnail bool   `form:"thumbnail"`
}

type UploadResponse struct {
	Path         string `json:"path"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	FileName     string `json:"file_name"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `json:"mime_type"`
	MediaType    string `json:"media_type"`
}
