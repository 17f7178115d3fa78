package app

import (
	"context"
	"fmt"
	"net/http"

	"photofolio_backend/database"
	"photofolio_backend/internal/config"
	"photofolio_backend/internal/handlers"
	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/middleware"
	"photofolio_backend/internal/routes"
	"photofolio_backend/internal/services"
	"photofolio_backend/internal/storage"
	"photofolio_backend/internal/validator"
	"photofolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	router, sc := SetupRouter(cfg, gormDB)

	if err := sc.Auth.EnsureAdmin(context.Background(), gormDB, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Fatal("Failed to seed first admin account", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full middleware/handler chain. Split from Run so
// tests can mount the router on an httptest server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	store, err := storage.NewStorage(context.Background(), storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Region:     cfg.Storage.Region,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	sc := services.NewServiceContainer(cfg, store)
	appHandlers := handlers.NewAppHandlers(sc, validator.New())

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(gormDB))
	router.Use(middleware.Identity(sc.Auth))

	router.NoRoute(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.New(apperrors.CodeNotFound, "http", "Route not found", http.StatusNotFound))
	})

	// Local storage is served straight off the filesystem.
	if cfg.Storage.Type != "s3" {
		router.Static("/files", cfg.Storage.BasePath)
	}

	routes.RegisterRoutes(router, appHandlers)

	return router, sc
}
