package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorValidationStatus(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()

	HandleError(rec, validator.ValidationErrors{
		{Field: "reason", Message: "is required"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "is required", body.Error.Details["reason"])
}

func TestHandleErrorStatusMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid credentials", user.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account deactivated", user.ErrAccountDeactivated, http.StatusForbidden},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"already punched in", attendance.ErrAlreadyPunchedIn, http.StatusBadRequest},
		{"insufficient balance", leave.ErrInsufficientBalance, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
