package middleware

import (
	"strings"

	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/services"
	"photofolio_backend/pkg/apperrors"
	"photofolio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Identity is the fail-open identity resolver. It parses the Bearer token
// and loads the matching profile into the request context. Missing, invalid
// or expired tokens leave the request anonymous; the chain always continues.
// Authorization decisions are made later, per procedure, against the
// resolved profile.
func Identity(authSvc services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			c.Next()
			return
		}

		profile, err := authSvc.ResolveToken(c.Request.Context(), db.(*gorm.DB), tokenStr)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "identity resolution failed, continuing anonymous", "error", err)
			c.Next()
			return
		}

		c.Set(string(contextkeys.ProfileContextKey), profile)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), profile.ID))
		c.Next()
	}
}

// RequireAuth rejects anonymous requests. Route-level convenience on top of
// the service-level gates, not a replacement for them.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetProfile(c) == nil {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose resolved profile is not an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := GetProfile(c)
		if profile == nil || profile.Role != models.RoleAdmin {
			apperrors.HandleError(c, apperrors.ErrAdminRequired)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetProfile returns the resolved profile, or nil for anonymous requests.
func GetProfile(c *gin.Context) *models.Profile {
	val, ok := c.Get(string(contextkeys.ProfileContextKey))
	if !ok {
		return nil
	}
	profile, ok := val.(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}
