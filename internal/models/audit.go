package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog is the append-only record of a privileged mutation. Rows are
// written once and never updated or deleted by application code.
type AuditLog struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	TableName   string         `gorm:"not null;index" json:"table_name"`
	Action      string         `gorm:"not null" json:"action"`
	PerformedBy *string        `gorm:"index" json:"performed_by"`
	RowID       *string        `json:"row_id"`
	Payload     datatypes.JSON `json:"payload"`
	CreatedAt   time.Time      `gorm:"default:now()" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Audit action tags. Free-form strings by contract; the constants exist so
// tests and dashboards agree on spelling.
const (
	AuditRoleChange      = "role_change"
	AuditStatusChange    = "status_change"
	AuditUserDeleted     = "user_deleted"
	AuditBulkUserDeleted = "bulk_user_deleted"
	AuditCreated         = "created"
	AuditUpdated         = "updated"
	AuditDeleted         = "deleted"
)
