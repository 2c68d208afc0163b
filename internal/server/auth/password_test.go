package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", hash)

	assert.True(t, h.Matches(hash, "password"))
	assert.False(t, h.Matches(hash, "Password"))
	assert.False(t, h.Matches("not-a-hash", "password"))
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher().Cost)
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	long := strings.Repeat("пароль", 7)
	require.Greater(t, len(long), 72)

	hash, err := h.Hash(long)
	require.NoError(t, err)

	assert.True(t, h.Matches(hash, long))
	// the whole password counts, not just its first 72 bytes
	assert.False(t, h.Matches(hash, long[:72]))
	assert.False(t, h.Matches(hash, long+"!"))
}
