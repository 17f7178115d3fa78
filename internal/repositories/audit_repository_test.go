package repositories

import (
	"testing"
	"time"

	"photofolio_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestAuditAppendWritesToAuditLogsTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	actor := "admin-1"
	row := "u1"
	err := repo.Append(db, &models.AuditLog{
		TableName:   "profiles",
		Action:      models.AuditRoleChange,
		PerformedBy: &actor,
		RowID:       &row,
		Payload:     datatypes.JSON([]byte(`{"old_role":"viewer","new_role":"admin"}`)),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditListRecentDefaultsLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository()

	mock.ExpectQuery(`SELECT \* FROM "audit_logs" ORDER BY created_at DESC LIMIT `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "table_name", "action"}).
			AddRow("a1", "profiles", "role_change"))

	entries, err := repo.ListRecent(db, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "profiles", entries[0].TableName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
