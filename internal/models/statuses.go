package models

type UserRole string
type UserStatus string
type MediaType string

const (
	RoleAdmin  UserRole = "admin"
	RoleViewer UserRole = "viewer"

	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"

	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ValidRole reports whether role is a member of the role enum.
func ValidRole(role string) bool {
	return role == string(RoleAdmin) || role == string(RoleViewer)
}

// ValidStatus reports whether status is a member of the status enum.
func ValidStatus(status string) bool {
	return status == string(StatusActive) || status == string(StatusSuspended)
}

// ValidMediaType reports whether t is a member of the media type enum.
func ValidMediaType(t string) bool {
	return t == string(MediaTypeImage) || t == string(MediaTypeVideo)
}
