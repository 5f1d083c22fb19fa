package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/validation"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "no payload",
			err:     &validation.Error{Reason: validation.ReasonNoPayload},
			status:  http.StatusBadRequest,
			code:    "BAD_INPUT",
			message: "No JSON data provided",
		},
		{
			name:    "suspicious content",
			err:     &validation.Error{Reason: validation.ReasonSuspiciousContent, Field: "username"},
			status:  http.StatusBadRequest,
			code:    "BAD_INPUT",
			message: "Invalid characters detected in username",
		},
		{
			name:    "weak password",
			err:     &domain.WeakPasswordError{MinLength: 8},
			status:  http.StatusBadRequest,
			code:    "WEAK_PASSWORD",
			message: "Password must be at least 8 characters long",
		},
		{
			name:   "password too long",
			err:    domain.ErrPasswordTooLong,
			status: http.StatusBadRequest,
			code:   "PASSWORD_TOO_LONG",
		},
		{
			name:    "username taken",
			err:     domain.ErrUsernameTaken,
			status:  http.StatusConflict,
			code:    "USERNAME_TAKEN",
			message: "Username already exists",
		},
		{
			name:    "invalid credentials",
			err:     domain.ErrInvalidCredentials,
			status:  http.StatusUnauthorized,
			code:    "INVALID_CREDENTIALS",
			message: "Invalid credentials",
		},
		{
			name:    "token missing",
			err:     domain.ErrTokenMissing,
			status:  http.StatusUnauthorized,
			code:    "TOKEN_MISSING",
			message: "Token is missing",
		},
		{
			name:    "token expired",
			err:     domain.ErrTokenExpired,
			status:  http.StatusUnauthorized,
			code:    "TOKEN_EXPIRED",
			message: "Token has expired",
		},
		{
			name:    "token invalid",
			err:     domain.ErrTokenInvalid,
			status:  http.StatusUnauthorized,
			code:    "TOKEN_INVALID",
			message: "Token is invalid",
		},
		{
			name:    "user not found",
			err:     domain.ErrUserNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "User not found",
		},
		{
			name:    "unknown route",
			err:     fiber.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Not found",
		},
		{
			name:    "storage failure is opaque",
			err:     fmt.Errorf("%w: %w", domain.ErrStorageFailure, errors.New("disk I/O error at /var/lib/users.db")),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_ERROR",
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tt.err)
			assert.Equal(t, tt.status, mapped.HTTPStatus)
			assert.Equal(t, tt.code, mapped.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, mapped.Message)
			}
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}

func TestMapError_ValidationDetails(t *testing.T) {
	t.Parallel()

	mapped := MapError(&validation.Error{Reason: validation.ReasonMissingField, Field: "password"})
	assert.Equal(t, map[string]any{"reason": "MISSING_FIELD", "field": "password"}, mapped.Details)
}

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MapError(nil))
}
