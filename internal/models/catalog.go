package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Catalog resources: the content tables behind the public app screens and
// the dashboard counts. All of them are admin-managed; Visible/Active gates
// public listings the same way PortfolioItem.Visible does.

type Location struct {
	BaseModel
	Title          string         `gorm:"not null" json:"title"`
	HeroImageURL   *string        `json:"hero_image_url"`
	CameraSettings datatypes.JSON `json:"camera_settings"`
	StoryText      *string        `json:"story_text"`
	MapLat         *float64       `json:"map_lat"`
	MapLng         *float64       `json:"map_lng"`
	Visible        bool           `gorm:"default:true" json:"visible"`
}

type Workshop struct {
	ID               string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string     `gorm:"not null" json:"title"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	Price            *float64   `json:"price"`
	ImageURL         *string    `json:"image_url"`
	RegistrationLink *string    `json:"registration_link"`
	Visible          bool       `gorm:"default:true" json:"visible"`
	CreatedAt        time.Time  `gorm:"default:now()" json:"created_at"`
}

type BTSVideo struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	VideoURL       string    `gorm:"not null" json:"video_url"`
	ThumbnailURL   *string   `json:"thumbnail_url"`
	SubscriberOnly bool      `gorm:"default:false" json:"subscriber_only"`
	Visible        bool      `gorm:"default:true" json:"visible"`
	CreatedAt      time.Time `gorm:"default:now()" json:"created_at"`
}

func (BTSVideo) TableName() string {
	return "bts_videos"
}

type Coupon struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	Code            string     `gorm:"uniqueIndex;not null" json:"code"`
	DiscountPercent *int       `json:"discount_percent"`
	Active          bool       `gorm:"default:true" json:"active"`
	ExpiresAt       *time.Time `json:"expires_at"`
	CreatedAt       time.Time  `gorm:"default:now()" json:"created_at"`
}

type LocationComment struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	LocationID  string    `gorm:"not null;index" json:"location_id"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	CommentText string    `gorm:"not null" json:"comment_text"`
	Hidden      bool      `gorm:"default:false" json:"hidden"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}

func (w *Workshop) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

func (v *BTSVideo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *LocationComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
