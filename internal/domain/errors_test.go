package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeakPasswordError(t *testing.T) {
	t.Parallel()

	var err error = &WeakPasswordError{MinLength: 8}
	wrapped := fmt.Errorf("register: %w", err)

	assert.True(t, errors.Is(wrapped, ErrWeakPassword))
	assert.False(t, errors.Is(wrapped, ErrInvalidCredentials))
	assert.Equal(t, "Password must be at least 8 characters long", err.Error())

	var weak *WeakPasswordError
	assert.True(t, errors.As(wrapped, &weak))
	assert.Equal(t, 8, weak.MinLength)
}

func TestUserProfileOmitsHash(t *testing.T) {
	t.Parallel()

	u := &User{ID: 3, Username: "alice", PasswordHash: []byte("secret-hash")}
	p := u.Profile()

	assert.Equal(t, Profile{ID: 3, Username: "alice"}, p)
}
