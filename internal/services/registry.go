package services

import (
	"time"

	"photofolio_backend/internal/auth"
	"photofolio_backend/internal/config"
	"photofolio_backend/internal/email"
	"photofolio_backend/internal/imageprocessor"
	"photofolio_backend/internal/repositories"
	"photofolio_backend/internal/storage"
)

// ServiceContainer wires every service with its repositories and shared
// collaborators. Built once at startup.
type ServiceContainer struct {
	Auth      AuthService
	Users     UserService
	Media     MediaService
	Portfolio PortfolioService
	Dashboard DashboardService
	Uploads   UploadService
	Catalog   CatalogService
	Recorder  AuditRecorder
	Tokens    *auth.TokenService
}

func NewServiceContainer(cfg *config.Config, store storage.Storage) *ServiceContainer {
	profileRepo := repositories.NewProfileRepository()
	tokenRepo := repositories.NewTokenRepository()
	mediaRepo := repositories.NewMediaRepository()
	portfolioRepo := repositories.NewPortfolioRepository()
	dashboardRepo := repositories.NewDashboardRepository()
	catalogRepo := repositories.NewCatalogRepository()
	auditRepo := repositories.NewAuditRepository()

	recorder := NewAuditRecorder(auditRepo)

	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	var mailer email.Provider = email.NoopProvider{}
	if cfg.Email.Enabled {
		mailer = email.NewSMTPProvider(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Email.FromName,
		)
	}

	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	return &ServiceContainer{
		Auth:      NewAuthService(profileRepo, tokenRepo, tokens, mailer, cfg.Email.ResetURL),
		Users:     NewUserService(profileRepo, recorder),
		Media:     NewMediaService(mediaRepo, recorder, store, cfg.Storage.MediaBucket),
		Portfolio: NewPortfolioService(portfolioRepo, recorder, store, cfg.Storage.PortfolioBucket),
		Dashboard: NewDashboardService(dashboardRepo),
		Uploads: NewUploadService(store, processor, UploadConfig{
			MaxSize:         cfg.Upload.MaxSize,
			AllowedTypes:    cfg.Upload.AllowedTypes,
			MediaBucket:     cfg.Storage.MediaBucket,
			PortfolioBucket: cfg.Storage.PortfolioBucket,
		}),
		Catalog:  NewCatalogService(catalogRepo, recorder),
		Recorder: recorder,
		Tokens:   tokens,
	}
}
