package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash, "hash must not be the plaintext")

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret", first))
	assert.True(t, CheckPassword("secret", second))
}

func TestGenerateSessionToken(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		token := GenerateSessionToken()
		require.NotEmpty(t, token)
		assert.False(t, seen[token], "token %s generated twice", token)
		seen[token] = true
	}
}
