package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash([]byte("pw"))
	require.NoError(t, err)
	assert.NotEqual(t, "pw", hash)

	assert.True(t, h.Matches(hash, []byte("pw")))
	assert.False(t, h.Matches(hash, []byte("wrong")))

	other, err := h.Hash([]byte("pw"))
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes must be salted")
}

func TestHasher_RejectsOverlongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash([]byte(strings.Repeat("a", MaxPasswordBytes+1)))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	hash, err := h.Hash([]byte(strings.Repeat("a", MaxPasswordBytes)))
	require.NoError(t, err)
	assert.True(t, h.Matches(hash, []byte(strings.Repeat("a", MaxPasswordBytes))))
	assert.False(t, h.Matches(hash, []byte(strings.Repeat("a", MaxPasswordBytes+1))))
}

func TestNewHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).Cost)
	assert.Equal(t, bcrypt.MinCost, NewHasher(1).Cost)
	assert.Equal(t, bcrypt.MaxCost, NewHasher(99).Cost)
}

func TestTokenProvider(t *testing.T) {
	p := NewTokenProvider("secret", "taskboard", time.Hour)

	token, expiresAt, err := p.Issue("session-1", "user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	sessionID, userID, err := p.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
	assert.Equal(t, "user-1", userID)

	t.Run("rejects foreign signature", func(t *testing.T) {
		other := NewTokenProvider("other-secret", "taskboard", time.Hour)
		_, _, err := other.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		other := NewTokenProvider("secret", "someone-else", time.Hour)
		_, _, err := other.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		later := NewTokenProvider("secret", "taskboard", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, _, err := later.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, _, err := p.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
