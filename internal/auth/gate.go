package auth

import (
	"photofolio_backend/internal/models"
	"photofolio_backend/pkg/apperrors"
)

// RequireAdmin is the authorization gate applied as the first step of every
// privileged procedure. It consults only the profile passed in, never any
// ambient state, so identity-resolution failures (actor == nil) always
// fail closed here.
func RequireAdmin(actor *models.Profile) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// RequireAuthenticated rejects anonymous callers.
func RequireAuthenticated(actor *models.Profile) error {
	if actor == nil {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// IsAdmin reports whether the actor holds the admin role. Used by read
// procedures that merely branch on privilege (portfolio.list) instead of
// rejecting.
func IsAdmin(actor *models.Profile) bool {
	return actor != nil && actor.Role == models.RoleAdmin
}
