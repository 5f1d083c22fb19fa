// Package validation gates registration and login payloads before they reach
// the user store.
//
// The denylist below is a heuristic filter kept for compatibility with the
// existing API. It is not an injection defense: every store query binds its
// arguments as parameters, and that is what keeps hostile input out of SQL.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spec-kit/account-service/internal/domain"
)

// MaxFieldLength is the longest accepted field, counted in characters. It
// matches the username column constraint.
const MaxFieldLength = domain.MaxUsernameLength

// Reason identifies why a payload was rejected.
type Reason string

const (
	ReasonNoPayload         Reason = "NO_PAYLOAD"
	ReasonMissingField      Reason = "MISSING_FIELD"
	ReasonFieldTooLong      Reason = "FIELD_TOO_LONG"
	ReasonSuspiciousContent Reason = "SUSPICIOUS_CONTENT"
)

// suspiciousPatterns is matched against the lowercased field value.
var suspiciousPatterns = []string{
	"drop table", "delete from", "update ", "insert into",
	"truncate", "alter table", "create table", "--", ";",
	"union select", "or 1=1", "' or", "\" or",
}

// Payload is a decoded JSON request body.
type Payload map[string]any

// Fields holds the string form of each validated field, unchanged.
type Fields map[string]string

// Error is a rejected payload.
type Error struct {
	Reason Reason
	Field  string
}

func (e *Error) Error() string {
	switch e.Reason {
	case ReasonNoPayload:
		return "No JSON data provided"
	case ReasonMissingField:
		return fmt.Sprintf("Missing required field: %s", e.Field)
	case ReasonFieldTooLong:
		return fmt.Sprintf("Field %s exceeds maximum length", e.Field)
	case ReasonSuspiciousContent:
		return fmt.Sprintf("Invalid characters detected in %s", e.Field)
	default:
		return fmt.Sprintf("invalid field %s", e.Field)
	}
}

// Validate checks required fields in order and returns their string forms.
// The first failing field determines the rejection.
func Validate(payload Payload, required ...string) (Fields, error) {
	if len(payload) == 0 {
		return nil, &Error{Reason: ReasonNoPayload}
	}

	fields := make(Fields, len(required))
	for _, name := range required {
		raw, ok := payload[name]
		if !ok || isFalsy(raw) {
			return nil, &Error{Reason: ReasonMissingField, Field: name}
		}

		value := stringForm(raw)
		if utf8.RuneCountInString(value) > MaxFieldLength {
			return nil, &Error{Reason: ReasonFieldTooLong, Field: name}
		}
		if IsSuspicious(value) {
			return nil, &Error{Reason: ReasonSuspiciousContent, Field: name}
		}
		fields[name] = value
	}
	return fields, nil
}

// IsSuspicious reports whether value contains a denylisted fragment.
func IsSuspicious(value string) bool {
	lower := strings.ToLower(value)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// isFalsy treats JSON null, false, zero, and empty strings/arrays/objects as absent.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

func stringForm(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
