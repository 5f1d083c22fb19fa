package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUsernameTaken is returned by the store when the username unique constraint fires.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrUserNotFound is returned when looking up a non-existent user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrWeakPassword is returned when a password is shorter than the configured minimum.
	ErrWeakPassword = errors.New("password too short")
	// ErrPasswordTooLong is returned when a password exceeds the hasher input limit.
	ErrPasswordTooLong = errors.New("password too long")
	// ErrStorageFailure wraps any store error that is not a uniqueness violation.
	ErrStorageFailure = errors.New("storage failure")

	// ErrTokenMissing is returned when a protected request carries no Authorization header.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid covers unparsable, unsigned or wrongly signed tokens.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned for a correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// WeakPasswordError reports a password below the configured minimum length.
// It matches ErrWeakPassword with errors.Is.
type WeakPasswordError struct {
	MinLength int
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("Password must be at least %d characters long", e.MinLength)
}

func (e *WeakPasswordError) Is(target error) bool {
	return target == ErrWeakPassword
}
