package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTextVerifier(t *testing.T) {
	verifier := PlainTextVerifier{}

	assert.True(t, verifier.Verify("sekret1", "sekret1"))
	assert.False(t, verifier.Verify("sekret1", "sekret2"))
	assert.False(t, verifier.Verify("sekret1", "Sekret1"))
	assert.False(t, verifier.Verify("sekret1", ""))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := HashPassword("sekret1")
	require.NoError(t, err)
	require.NotEqual(t, "sekret1", hash)

	verifier := BcryptVerifier{}

	assert.True(t, verifier.Verify(hash, "sekret1"))
	assert.False(t, verifier.Verify(hash, "sekret2"))
	assert.False(t, verifier.Verify("not-a-hash", "sekret1"))
}

func TestForScheme(t *testing.T) {
	t.Run("plain round-trips the password unchanged", func(t *testing.T) {
		verifier, encoder := ForScheme("plain")
		stored, err := encoder.Encode("sekret1")
		require.NoError(t, err)
		assert.Equal(t, "sekret1", stored)
		assert.True(t, verifier.Verify(stored, "sekret1"))
	})

	t.Run("bcrypt encodes to a matching hash", func(t *testing.T) {
		verifier, encoder := ForScheme("bcrypt")
		stored, err := encoder.Encode("sekret1")
		require.NoError(t, err)
		assert.NotEqual(t, "sekret1", stored)
		assert.True(t, verifier.Verify(stored, "sekret1"))
		assert.False(t, verifier.Verify(stored, "sekret2"))
	})

	t.Run("unknown scheme falls back to plain", func(t *testing.T) {
		_, encoder := ForScheme("rot13")
		stored, err := encoder.Encode("sekret1")
		require.NoError(t, err)
		assert.Equal(t, "sekret1", stored)
	})
}
