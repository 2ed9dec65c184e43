package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brianhe1/smartcards-ai/internal/generation"
	"github.com/brianhe1/smartcards-ai/internal/service/auth"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid refresh token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"password mismatch", auth.ErrPasswordMismatch, http.StatusUnauthorized},
		{"user record missing", store.ErrUserRecordMissing, http.StatusNotFound},
		{"set not found", store.ErrSetNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"duplicate name", store.ErrDuplicateName, http.StatusConflict},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"version conflict", store.ErrVersionConflict, http.StatusConflict},
		{"empty topic", generation.ErrEmptyTopic, http.StatusBadRequest},
		{"invalid count", generation.ErrInvalidCount, http.StatusBadRequest},
		{"generation failed", generation.ErrGenerationFailed, http.StatusBadGateway},
		{"invalid response", generation.ErrInvalidResponse, http.StatusBadGateway},
		{"content blocked", generation.ErrContentBlocked, http.StatusBadGateway},
		{"store unavailable", store.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"unknown error", errors.New("mystery"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("ctx: %w", store.ErrDuplicateName), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "An unexpected error occurred",
		GetSafeErrorMessage(errors.New("pq: relation does not exist")))

	// Sanitized messages never include wrapped internal detail
	wrapped := fmt.Errorf("SELECT failed on host db-internal-1: %w", store.ErrDuplicateName)
	msg := GetSafeErrorMessage(wrapped)
	assert.Equal(t, "A set with this name already exists", msg)
	assert.NotContains(t, msg, "db-internal-1")
}

func TestSanitizeValidationError(t *testing.T) {
	fieldErr := errors.New(
		"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag")
	assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(fieldErr))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
