package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the bcrypt input limit; longer inputs would be truncated.
const MaxPasswordBytes = 72

var (
	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("empty password")
	// ErrPasswordTooLong is returned for passwords bcrypt would truncate.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// PasswordHasher hashes and verifies passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost, or bcrypt.DefaultCost when cost is out of range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted, self-describing bcrypt hash of plain.
func (h *PasswordHasher) Hash(plain string) ([]byte, error) {
	if plain == "" {
		return nil, ErrEmptyPassword
	}
	if len(plain) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	return bcrypt.GenerateFromPassword([]byte(plain), h.cost)
}

// Verify reports whether plain matches hashed. Malformed hashes never match,
// nor do inputs longer than MaxPasswordBytes, which bcrypt would truncate.
func (h *PasswordHasher) Verify(plain string, hashed []byte) bool {
	if len(plain) > MaxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword(hashed, []byte(plain)) == nil
}
