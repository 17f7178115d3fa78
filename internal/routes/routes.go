package routes

import (
	"photofolio_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler group under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Users.RegisterRoutes(api)
		appHandlers.Media.RegisterRoutes(api)
		appHandlers.Portfolio.RegisterRoutes(api)
		appHandlers.Dashboard.RegisterRoutes(api)
		appHandlers.Uploads.RegisterRoutes(api)
		appHandlers.Catalog.RegisterRoutes(api)
	}
}
