package dto

import (
	"time"
)

type CreatePortfolioItemRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	ImageURL    string  `json:"image_url" validate:"required,url,max=1024"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,min=0"`
	Visible     *bool   `json:"visible"`
}

type UpdatePortfolioItemRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url,max=1024"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,min=0"`
	Visible     *bool   `json:"visible"`
}

type ListPortfolioRequest struct {
	IncludeHidden bool `form:"include_hidden"`
}

type PortfolioItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	Description *string   `json:"description,omitempty"`
	OrderIndex  int       `json:"order_index"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"created_at"`
}

type PortfolioStatsResponse struct {
	TotalItems   int64 `json:"total_items"`
	VisibleItems int64 `json:"visible_items"`
	HiddenItems  int64 `json:"hidden_items"`
	RecentItems  int64 `json:"recent_items"`
}
