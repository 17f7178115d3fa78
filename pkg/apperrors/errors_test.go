package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsCarryHTTPCodes(t *testing.T) {
	cases := map[*AppError]int{
		ErrUnauthorized:       http.StatusUnauthorized,
		ErrAdminRequired:      http.StatusForbidden,
		ErrInvalidCredentials: http.StatusUnauthorized,
		ErrEmailAlreadyExists: http.StatusConflict,
		ErrSelfDelete:         http.StatusBadRequest,
		ErrNoUsersToDelete:    http.StatusBadRequest,
	}
	for sentinel, code := range cases {
		assert.Equal(t, code, sentinel.HTTPCode, sentinel.Message)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := StoreError(cause, "users")

	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, CodeDatabaseError, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestAsExtractsAppError(t *testing.T) {
	var appErr *AppError
	require.True(t, As(ErrSelfDelete, &appErr))
	assert.Equal(t, CodeInvalidOperation, appErr.Code)

	assert.False(t, As(errors.New("plain"), &appErr))
}

func TestMarshalJSONHidesInternals(t *testing.T) {
	wrapped := StoreError(errors.New("row read failed"), "users").WithDetails(map[string]string{"field": "bad"})

	data, err := json.Marshal(wrapped)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "HTTPCode")
	assert.NotContains(t, decoded, "Err")
	assert.Equal(t, "users", decoded["domain"])
	assert.NotNil(t, decoded["details"])
}

func TestWithDetailsAndError(t *testing.T) {
	base := New(CodeNotFound, "media", "Media item not found", http.StatusNotFound)
	cause := errors.New("row missing")

	enriched := base.WithError(cause)
	assert.ErrorIs(t, enriched, cause)
	assert.Contains(t, enriched.Error(), "row missing")
}
