package handlers

import (
	"photofolio_backend/internal/services"
	"photofolio_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Media     *MediaHandler
	Portfolio *PortfolioHandler
	Dashboard *DashboardHandler
	Uploads   *UploadHandler
	Catalog   *CatalogHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:      NewAuthHandler(base, sc.Auth),
		Users:     NewUserHandler(base, sc.Users),
		Media:     NewMediaHandler(base, sc.Media),
		Portfolio: NewPortfolioHandler(base, sc.Portfolio),
		Dashboard: NewDashboardHandler(base, sc.Dashboard),
		Uploads:   NewUploadHandler(base, sc.Uploads),
		Catalog:   NewCatalogHandler(base, sc.Catalog),
	}
}
