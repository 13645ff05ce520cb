package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Secr3t!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secr3t!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, CheckPasswordHash("Secr3t!", hash))
	assert.False(t, CheckPasswordHash("Secr3t", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("Secr3t!")
	require.NoError(t, err)
	second, err := HashPassword("Secr3t!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("Secr3t!", first))
	assert.True(t, CheckPasswordHash("Secr3t!", second))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	t.Parallel()

	// Garbage hashes are a mismatch, not a panic.
	assert.False(t, CheckPasswordHash("Secr3t!", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("Secr3t!", ""))
}
