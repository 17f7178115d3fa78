package repositories

import (
	"photofolio_backend/internal/models"

	"gorm.io/gorm"
)

// AuditRepository appends to and reads from the append-only audit trail.
// There is deliberately no update or delete method.
type AuditRepository interface {
	Append(db *gorm.DB, entry *models.AuditLog) error
	ListRecent(db *gorm.DB, limit int) ([]models.AuditLog, error)
}

type AuditRepositoryImpl struct{}

func NewAuditRepository() AuditRepository {
	return &AuditRepositoryImpl{}
}

func (r *AuditRepositoryImpl) Append(db *gorm.DB, entry *models.AuditLog) error {
	return db.Create(entry).Error
}

func (r *AuditRepositoryImpl) ListRecent(db *gorm.DB, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.AuditLog
	err := db.Model(&models.AuditLog{}).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
