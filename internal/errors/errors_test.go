package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{
			name:       "validation error keeps field",
			err:        NewValidationError("salaryMax", "must be greater than or equal to salaryMin"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantField:  "salaryMax",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("find job application: %w", ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "invalid credentials",
			err:        ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "unauthorized",
			err:        ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "rate limited",
			err:        ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "RATE_LIMITED",
		},
		{
			name:       "unknown error hides details",
			err:        errors.New("dial tcp 10.0.0.1:3306: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantField, got.Field)
			assert.NotContains(t, got.Message, "10.0.0.1")
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("applicationDate", "invalid date %q", "yesterday")
	assert.Equal(t, `applicationDate: invalid date "yesterday"`, err.Error())

	bare := &ValidationError{Message: "request body is invalid"}
	assert.Equal(t, "request body is invalid", bare.Error())
}
