package dto

import "time"

// Catalog DTOs. Models are returned directly for these resources; the
// request structs below exist for validation and partial updates.

type CreateLocationRequest struct {
	Title          string                 `json:"title" validate:"required,max=255"`
	HeroImageURL   *string                `json:"hero_image_url" validate:"omitempty,max=1024"`
	CameraSettings map[string]interface{} `json:"camera_settings"`
	StoryText      *string                `json:"story_text"`
	MapLat         *float64               `json:"map_lat" validate:"omitempty,min=-90,max=90"`
	MapLng         *float64               `json:"map_lng" validate:"omitempty,min=-180,max=180"`
	Visible        *bool                  `json:"visible"`
}

type UpdateLocationRequest struct {
	Title          *string                `json:"title" validate:"omitempty,max=255"`
	HeroImageURL   *string                `json:"hero_image_url" validate:"omitempty,max=1024"`
	CameraSettings map[string]interface{} `json:"camera_settings"`
	StoryText      *string                `json:"story_text"`
	MapLat         *float64               `json:"map_lat" validate:"omitempty,min=-90,max=90"`
	MapLng         *float64               `json:"map_lng" validate:"omitempty,min=-180,max=180"`
	Visible        *bool                  `json:"visible"`
}

type CreateWorkshopRequest struct {
	Title            string     `json:"title" validate:"required,max=255"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	Price            *float64   `json:"price" validate:"omitempty,min=0"`
	ImageURL         *string    `json:"image_url" validate:"omitempty,max=1024"`
	RegistrationLink *string    `json:"registration_link" validate:"omitempty,max=1024"`
	Visible          *bool      `json:"visible"`
}

type UpdateWorkshopRequest struct {
	Title            *string    `json:"title" validate:"omitempty,max=255"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	Price            *float64   `json:"price" validate:"omitempty,min=0"`
	ImageURL         *string    `json:"image_url" validate:"omitempty,max=1024"`
	RegistrationLink *string    `json:"registration_link" validate:"omitempty,max=1024"`
	Visible          *bool      `json:"visible"`
}

type CreateBTSVideoRequest struct {
	Title          string  `json:"title" validate:"required,max=255"`
	VideoURL       string  `json:"video_url" validate:"required,max=1024"`
	ThumbnailURL   *string `json:"thumbnail_url" validate:"omitempty,max=1024"`
	SubscriberOnly *bool   `json:"subscriber_only"`
	Visible        *bool   `json:"visible"`
}

type UpdateBTSVideoRequest struct {
	Title          *string `json:"title" validate:"omitempty,max=255"`
	VideoURL       *string `json:"video_url" validate:"omitempty,max=1024"`
	ThumbnailURL   *string `json:"thumbnail_url" validate:"omitempty,max=1024"`
	SubscriberOnly *bool   `json:"subscriber_only"`
	Visible        *bool   `json:"visible"`
}

type CreateCouponRequest struct {
	Code            string     `json:"code" validate:"required,max=64"`
	DiscountPercent *int       `json:"discount_percent" validate:"omitempty,min=1,max=100"`
	Active          *bool      `json:"active"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

type UpdateCouponRequest struct {
	Code            *string    `json:"code" validate:"omitempty,max=64"`
	DiscountPercent *int       `json:"discount_percent" validate:"omitempty,min=1,max=100"`
	Active          *bool      `json:"active"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

type CreateCommentRequest struct {
	LocationID  string `json:"location_id" validate:"required,uuid"`
	CommentText string `json:"comment_text" validate:"required,max=2000"`
}

type ListCommentsRequest struct {
	IncludeHidden bool `form:"include_hidden"`
}

type SetCommentHiddenRequest struct {
	Hidden bool `json:"hidden"`
}
