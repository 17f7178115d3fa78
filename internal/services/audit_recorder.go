package services

import (
	"context"
	"encoding/json"

	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditRecorder appends entries to the audit trail after successful
// mutations. Recording failures are logged and swallowed: a mutation that
// already committed is never failed because its audit row could not be
// written.
type AuditRecorder interface {
	Record(ctx context.Context, db *gorm.DB, actorID *string, tableName, action string, rowID *string, payload map[string]interface{})
}

type auditRecorder struct {
	auditRepo repositories.AuditRepository
}

func NewAuditRecorder(auditRepo repositories.AuditRepository) AuditRecorder {
	return &auditRecorder{auditRepo: auditRepo}
}

func (r *auditRecorder) Record(ctx context.Context, db *gorm.DB, actorID *string, tableName, action string, rowID *string, payload map[string]interface{}) {
	entry := &models.AuditLog{
		TableName:   tableName,
		Action:      action,
		PerformedBy: actorID,
		RowID:       rowID,
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.CtxWithError(ctx, "failed to marshal audit payload", err,
				"table", tableName, "action", action)
		} else {
			entry.Payload = datatypes.JSON(raw)
		}
	}

	if err := r.auditRepo.Append(db, entry); err != nil {
		logger.CtxWithError(ctx, "failed to write audit entry", err,
			"table", tableName, "action", action)
	}
}
