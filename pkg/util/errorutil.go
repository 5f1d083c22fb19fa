package util

import (
	"fmt"
	"net/http"
)

// DomainError standardizes application errors rendered to HTTP clients.
// Err is kept for server-side logging and is never serialized.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithCause records err as the underlying cause and returns e.
func (e *DomainError) WithCause(err error) *DomainError {
	e.Err = err
	return e
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(code, message string, details map[string]any) *DomainError {
	return NewDomainError(code, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) *DomainError {
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(code, message string) *DomainError {
	return NewDomainError(code, message, http.StatusUnauthorized, nil)
}

func NewConflict(code, message string) *DomainError {
	return NewDomainError(code, message, http.StatusConflict, nil)
}

func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
