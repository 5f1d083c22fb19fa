package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/validation"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// MapError translates service and transport errors into the client-facing DomainError.
// Unknown errors become an opaque 500.
func MapError(err error) *apperrors.DomainError {
	if err == nil {
		return nil
	}

	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		details := map[string]any{"reason": string(validationErr.Reason)}
		if validationErr.Field != "" {
			details["field"] = validationErr.Field
		}
		return apperrors.NewValidationError("BAD_INPUT", validationErr.Error(), details).WithCause(err)
	}

	var weak *domain.WeakPasswordError
	if errors.As(err, &weak) {
		return apperrors.NewValidationError("WEAK_PASSWORD", weak.Error(), nil).WithCause(err)
	}

	switch {
	case errors.Is(err, domain.ErrPasswordTooLong):
		return apperrors.NewValidationError("PASSWORD_TOO_LONG", "Password must be at most 72 bytes", nil).WithCause(err)
	case errors.Is(err, domain.ErrUsernameTaken):
		return apperrors.NewConflict("USERNAME_TAKEN", "Username already exists").WithCause(err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.NewUnauthorized("INVALID_CREDENTIALS", "Invalid credentials").WithCause(err)
	case errors.Is(err, domain.ErrTokenMissing):
		return apperrors.NewUnauthorized("TOKEN_MISSING", "Token is missing").WithCause(err)
	case errors.Is(err, domain.ErrTokenExpired):
		return apperrors.NewUnauthorized("TOKEN_EXPIRED", "Token has expired").WithCause(err)
	case errors.Is(err, domain.ErrTokenInvalid):
		return apperrors.NewUnauthorized("TOKEN_INVALID", "Token is invalid").WithCause(err)
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NewNotFound("User", nil).WithCause(err)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return apperrors.NewDomainError("NOT_FOUND", "Not found", fiber.StatusNotFound, nil).WithCause(err)
		case fiber.StatusMethodNotAllowed:
			return apperrors.NewDomainError("METHOD_NOT_ALLOWED", "Method not allowed", fiber.StatusMethodNotAllowed, nil).WithCause(err)
		case fiber.StatusRequestEntityTooLarge:
			return apperrors.NewDomainError("PAYLOAD_TOO_LARGE", "Request body too large", fiber.StatusRequestEntityTooLarge, nil).WithCause(err)
		}
		if fiberErr.Code < fiber.StatusInternalServerError {
			return apperrors.NewDomainError("BAD_REQUEST", fiberErr.Message, fiberErr.Code, nil).WithCause(err)
		}
	}

	return apperrors.NewInternalError(err)
}
