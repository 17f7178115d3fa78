package dto

import (
	"time"

	"photofolio_backend/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=120"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=120"`
	Phone           *string `json:"phone" validate:"omitempty,max=32"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,max=1024"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// AuthResponse carries a fresh token pair and the authenticated profile.
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         ProfileResponse `json:"user"`
}

// ProfileResponse is the public view of a profile row.
type ProfileResponse struct {
	ID              string            `json:"id"`
	Email           string            `json:"email"`
	Name            string            `json:"name"`
	Phone           string            `json:"phone,omitempty"`
	Role            models.UserRole   `json:"role"`
	Status          models.UserStatus `json:"status"`
	ProfileImageURL string            `json:"profile_image_url,omitempty"`
	LastLogin       *time.Time        `json:"last_login,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// NewProfileResponse maps a profile model to its response shape.
func NewProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Email:           p.Email,
		Name:            p.Name,
		Phone:           p.Phone,
		Role:            p.Role,
		Status:          p.Status,
		ProfileImageURL: p.ProfileImageURL,
		LastLogin:       p.LastLogin,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
