package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("produces PHC format digest", func(t *testing.T) {
		hash, err := HashPassword("hunter2")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
		require.Len(t, strings.Split(hash, "$"), 6)
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		a, err := HashPassword("hunter2")
		require.NoError(t, err)
		b, err := HashPassword("hunter2")
		require.NoError(t, err)

		require.NotEqual(t, a, b)
		require.NoError(t, VerifyPassword("hunter2", a))
		require.NoError(t, VerifyPassword("hunter2", b))
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("accepts the right password", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("rejects the wrong password", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("wrong", hash), ErrPasswordMismatch)
	})

	t.Run("rejects malformed digests", func(t *testing.T) {
		require.Error(t, VerifyPassword("x", "not-a-hash"))
		require.Error(t, VerifyPassword("x", "$bcrypt$v=19$m=1,t=1,p=1$AAAA$BBBB"))
		require.Error(t, VerifyPassword("x", "$argon2id$v=18$m=1,t=1,p=1$AAAA$BBBB"))
	})

	t.Run("verifies digests with foreign parameters", func(t *testing.T) {
		// Digest parameters win over package constants.
		foreign := "$argon2id$v=19$m=8,t=1,p=1$c29tZXNhbHQ$x"
		require.Error(t, VerifyPassword("x", foreign)) // bad hash bytes, but parsed
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := GenerateToken(0)
		require.Error(t, err)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		a, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		b, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("fingerprint is deterministic", func(t *testing.T) {
		tok, err := GenerateToken(TokenSize128)
		require.NoError(t, err)
		require.Equal(t, FingerprintToken(tok), FingerprintToken(tok))
		require.NotEqual(t, FingerprintToken(tok), tok)
	})
}
