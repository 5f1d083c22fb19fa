package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload Payload
		reason  Reason
		field   string
	}{
		{name: "nil payload", payload: nil, reason: ReasonNoPayload},
		{name: "empty payload", payload: Payload{}, reason: ReasonNoPayload},
		{name: "missing password", payload: Payload{"username": "alice"}, reason: ReasonMissingField, field: "password"},
		{name: "empty username", payload: Payload{"username": "", "password": "longenough1"}, reason: ReasonMissingField, field: "username"},
		{name: "null username", payload: Payload{"username": nil, "password": "longenough1"}, reason: ReasonMissingField, field: "username"},
		{name: "zero username", payload: Payload{"username": float64(0), "password": "longenough1"}, reason: ReasonMissingField, field: "username"},
		{name: "false password", payload: Payload{"username": "alice", "password": false}, reason: ReasonMissingField, field: "password"},
		{name: "username too long", payload: Payload{"username": strings.Repeat("a", 256), "password": "longenough1"}, reason: ReasonFieldTooLong, field: "username"},
		{name: "drop table", payload: Payload{"username": "'; DROP TABLE users; --", "password": "password123"}, reason: ReasonSuspiciousContent, field: "username"},
		{name: "tautology", payload: Payload{"username": "admin' OR 1=1", "password": "password123"}, reason: ReasonSuspiciousContent, field: "username"},
		{name: "union select", payload: Payload{"username": "x UNION SELECT password", "password": "password123"}, reason: ReasonSuspiciousContent, field: "username"},
		{name: "comment in password", payload: Payload{"username": "alice", "password": "pass--word"}, reason: ReasonSuspiciousContent, field: "password"},
		{name: "semicolon in password", payload: Payload{"username": "alice", "password": "pass;word1"}, reason: ReasonSuspiciousContent, field: "password"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields, err := Validate(tt.payload, "username", "password")
			require.Error(t, err)
			assert.Nil(t, fields)

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateAcceptsAndDoesNotTransform(t *testing.T) {
	t.Parallel()

	fields, err := Validate(Payload{
		"username": "  alice  ",
		"password": "longenough1",
		"extra":    "ignored; --",
	}, "username", "password")
	require.NoError(t, err)

	assert.Equal(t, Fields{"username": "  alice  ", "password": "longenough1"}, fields)
}

func TestValidateLengthCountsCharacters(t *testing.T) {
	t.Parallel()

	exact := strings.Repeat("é", domain.MaxUsernameLength)
	_, err := Validate(Payload{"username": exact}, "username")
	assert.NoError(t, err)

	_, err = Validate(Payload{"username": exact + "é"}, "username")
	assert.Error(t, err)
}

func TestValidateUsesStringFormOfNonStrings(t *testing.T) {
	t.Parallel()

	fields, err := Validate(Payload{"username": float64(12345)}, "username")
	require.NoError(t, err)
	assert.Equal(t, "12345", fields["username"])
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No JSON data provided", (&Error{Reason: ReasonNoPayload}).Error())
	assert.Equal(t, "Missing required field: username", (&Error{Reason: ReasonMissingField, Field: "username"}).Error())
	assert.Equal(t, "Field password exceeds maximum length", (&Error{Reason: ReasonFieldTooLong, Field: "password"}).Error())
	assert.Equal(t, "Invalid characters detected in username", (&Error{Reason: ReasonSuspiciousContent, Field: "username"}).Error())
}
