package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors and predefined variables for the
// static errors the resource procedures raise.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness conflict into a 409 AppError.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrInvalidOperation creates a 400 for operations the business rules forbid.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- authentication / authorization ---

var (
	ErrUnauthorized = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)

	// ErrAdminRequired is raised by the authorization gate whenever the
	// caller profile is missing or its role is not admin.
	ErrAdminRequired = New(CodeForbidden, "auth", "Unauthorized: Admin access required", http.StatusForbidden)

	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrAccountSuspended   = New(CodeForbidden, "auth", "Account is suspended", http.StatusForbidden)
)

// --- users ---

var (
	ErrUserNotFound       = New(CodeNotFound, "users", "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "users", "Email already exists", http.StatusConflict)
	ErrInvalidUserRole    = New(CodeInvalidOperation, "users", "Invalid user role", http.StatusBadRequest)
	ErrInvalidUserStatus  = New(CodeInvalidOperation, "users", "Invalid user status", http.StatusBadRequest)

	// ErrSelfDelete guards users.delete and users.bulkDelete against an
	// admin removing their own account.
	ErrSelfDelete = New(CodeInvalidOperation, "users", "Cannot delete your own account", http.StatusBadRequest)

	// ErrNoUsersToDelete is raised when a bulk delete target set is empty
	// after the caller id has been filtered out.
	ErrNoUsersToDelete = New(CodeInvalidOperation, "users", "No valid users to delete", http.StatusBadRequest)
)

// --- media ---

var (
	ErrMediaNotFound    = New(CodeNotFound, "media", "Media item not found", http.StatusNotFound)
	ErrInvalidMediaType = New(CodeInvalidOperation, "media", "Invalid media type", http.StatusBadRequest)
	ErrNoUpdateFields   = New(CodeValidationFailed, "media", "At least one field must be provided", http.StatusBadRequest)
)

// --- portfolio ---

var (
	ErrPortfolioItemNotFound = New(CodeNotFound, "portfolio", "Portfolio item not found", http.StatusNotFound)
)

// --- catalog ---

var (
	ErrLocationNotFound = New(CodeNotFound, "catalog", "Location not found", http.StatusNotFound)
	ErrWorkshopNotFound = New(CodeNotFound, "catalog", "Workshop not found", http.StatusNotFound)
	ErrVideoNotFound    = New(CodeNotFound, "catalog", "Video not found", http.StatusNotFound)
	ErrCouponNotFound   = New(CodeNotFound, "catalog", "Coupon not found", http.StatusNotFound)
	ErrCommentNotFound  = New(CodeNotFound, "catalog", "Comment not found", http.StatusNotFound)
	ErrCouponCodeTaken  = New(CodeAlreadyExists, "catalog", "Coupon code already exists", http.StatusConflict)
)

// --- uploads / storage ---

var (
	ErrFileTooLarge    = New(CodeValidationFailed, "uploads", "File too large", http.StatusBadRequest)
	ErrInvalidFileType = New(CodeValidationFailed, "uploads", "Invalid file type", http.StatusBadRequest)
	ErrFileExists      = New(CodeAlreadyExists, "uploads", "File already exists at this path", http.StatusConflict)
)
