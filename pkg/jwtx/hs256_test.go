package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewSignerHS256(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := NewSignerHS256([]byte("short"))
		require.ErrorIs(t, err, ErrWeakSecret)
	})

	t.Run("accepts 32 byte secrets", func(t *testing.T) {
		s, err := NewSignerHS256(testSecret)
		require.NoError(t, err)
		require.Equal(t, "HS256", s.Alg())
	})
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier := NewVerifierHS256(testSecret, "lockbox-test")

	now := time.Now().UTC()
	claims := NewSessionClaims("user-1", "alice@example.com", "Alice", time.Hour, "lockbox-test", now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "Alice", got.Name)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier := NewVerifierHS256(testSecret, "lockbox-test")

	now := time.Now().UTC()

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("tampered payload", func(t *testing.T) {
		claims := NewSessionClaims("user-1", "alice@example.com", "", time.Hour, "lockbox-test", now)
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]

		_, err = verifier.Verify(tampered)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewSignerHS256([]byte("ffffffffffffffffffffffffffffffff"))
		require.NoError(t, err)

		claims := NewSessionClaims("user-1", "alice@example.com", "", time.Hour, "lockbox-test", now)
		token, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		claims := NewSessionClaims("user-1", "alice@example.com", "", time.Hour, "someone-else", now)
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, ErrIssuer)
	})

	t.Run("expired token still verifies but fails expiry check", func(t *testing.T) {
		claims := NewSessionClaims("user-1", "alice@example.com", "", time.Hour, "lockbox-test",
			now.Add(-2*time.Hour))
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		got, err := verifier.Verify(token)
		require.NoError(t, err)
		require.ErrorIs(t, got.ValidateExpiry(), ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := NewSessionClaims("user-1", "alice@example.com", "", time.Hour, "lockbox-test",
			now.Add(time.Hour))
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		got, err := verifier.Verify(token)
		require.NoError(t, err)
		require.ErrorIs(t, got.ValidateExpiry(), ErrNotYetValid)
	})
}
