package database

import (
	"fmt"

	"photofolio_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs GORM auto-migration for every table in the schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Profile{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
		&models.MediaItem{},
		&models.PortfolioItem{},
		&models.AuditLog{},
		&models.Location{},
		&models.Workshop{},
		&models.BTSVideo{},
		&models.Coupon{},
		&models.LocationComment{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
