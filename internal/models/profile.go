package models

import "time"

// Profile is the application identity record. Role and status are mutable
// only through the admin procedures; the self-service profile update never
// touches them.
type Profile struct {
	BaseModel
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Role            UserRole   `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	Status          UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ProfileImageURL string     `json:"profile_image_url"`
	LastLogin       *time.Time `json:"last_login"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

type PasswordResetToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
}
