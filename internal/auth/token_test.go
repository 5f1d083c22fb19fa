package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	tok, exp, err := tm.Issue(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)
	assert.Len(t, strings.Split(tok, "."), 3)

	userID, err := tm.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenManager_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	tm := NewTokenManager("secret", time.Hour, WithClock(clock.Now))

	tok, exp, err := tm.Issue(7)
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(time.Hour), exp)

	clock.now = clock.now.Add(59 * time.Minute)
	userID, err := tm.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	clock.now = exp
	_, err = tm.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)

	clock.now = exp.Add(time.Minute)
	_, err = tm.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenManager("right-secret", time.Hour).Issue(1)
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenManager_ExpiredTokenWithBadSignatureIsMalformed(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	tok, _, err := NewTokenManager("right-secret", time.Hour, WithClock(clock.Now)).Issue(1)
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)
	_, err = NewTokenManager("wrong-secret", time.Hour, WithClock(clock.Now)).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenManager_TamperedToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	tok, _, err := tm.Issue(99)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	flip := func(s string, i int) string {
		b := []byte(s)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		return string(b)
	}

	tampered := []string{
		strings.Join([]string{parts[0], flip(parts[1], len(parts[1])/2), parts[2]}, "."),
		strings.Join([]string{parts[0], parts[1], flip(parts[2], 0)}, "."),
		strings.Join([]string{flip(parts[0], 1), parts[1], parts[2]}, "."),
	}
	for _, tok := range tampered {
		userID, err := tm.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed)
		assert.Zero(t, userID)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "abc", "a.b.c.d"} {
		_, err := tm.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed, tok)
	}
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	tm := NewTokenManager("k", time.Hour)
	for _, tok := range []string{none, hs512} {
		_, err := tm.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed)
	}
}

func TestTokenManager_RequiresExpiry(t *testing.T) {
	t.Parallel()

	claims := &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewTokenManager("k", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Hour, NewTokenManager("k", 0).ttl)
}
