package vault_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

// TestVaultLifecycle walks the whole user journey: register, log in, store a
// credential, read it back, and confirm another account can see or touch
// none of it.
func TestVaultLifecycle(t *testing.T) {
	ctx := context.Background()
	client := startTestServer(t)

	// Register two independent accounts.
	aliceUser, err := client.Register(ctx, vaultsdk.RegisterRequest{
		Email:       "alice@example.com",
		Password:    "alice-passphrase",
		DisplayName: "Alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, aliceUser.UserID)
	require.Equal(t, "alice@example.com", aliceUser.Email)

	_, err = client.Register(ctx, vaultsdk.RegisterRequest{
		Email:    "bob@example.com",
		Password: "bob-passphrase",
	})
	require.NoError(t, err)

	// A wrong password is rejected without detail.
	_, err = client.Login(ctx, "alice@example.com", "not-her-password")
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidCredentials)

	// An unknown email fails identically.
	_, err = client.Login(ctx, "mallory@example.com", "whatever")
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidCredentials)

	alice, err := client.Login(ctx, "alice@example.com", "alice-passphrase")
	require.NoError(t, err)
	require.NotEmpty(t, alice.Token)

	bob, err := client.Login(ctx, "bob@example.com", "bob-passphrase")
	require.NoError(t, err)

	// The session identifies its owner.
	info, err := alice.UserInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, aliceUser.UserID, info.UserID)
	require.Equal(t, "Alice", info.DisplayName)

	// Store a credential and read it back.
	entry, err := alice.CreateEntry(ctx, vaultsdk.CreateEntryRequest{
		Site:     "github.com",
		Username: "alice",
		Secret:   "gh-token-abc123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)

	entries, err := alice.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "github.com", entries[0].Site)
	require.Equal(t, "gh-token-abc123", entries[0].Secret)

	// Bob sees nothing and cannot delete Alice's entry.
	bobEntries, err := bob.ListEntries(ctx)
	require.NoError(t, err)
	require.Empty(t, bobEntries)

	err = bob.DeleteEntry(ctx, entry.ID)
	requireAPIError(t, err, http.StatusForbidden, vaultsdk.ErrorCodeForbidden)

	// Alice's entry survived the attempt.
	entries, err = alice.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Alice deletes it for real; a repeat delete reports not found.
	require.NoError(t, alice.DeleteEntry(ctx, entry.ID))

	err = alice.DeleteEntry(ctx, entry.ID)
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)

	entries, err = alice.ListEntries(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	client := startTestServer(t)

	_, err := client.Register(ctx, vaultsdk.RegisterRequest{
		Email:    "carol@example.com",
		Password: "carol-passphrase",
	})
	require.NoError(t, err)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := client.Register(ctx, vaultsdk.RegisterRequest{
			Email:    "carol@example.com",
			Password: "other-passphrase",
		})
		requireAPIError(t, err, http.StatusConflict, vaultsdk.ErrorCodeConflict)
	})

	t.Run("missing password is a bad request", func(t *testing.T) {
		_, err := client.Register(ctx, vaultsdk.RegisterRequest{Email: "dave@example.com"})
		requireAPIError(t, err, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest)
	})
}

func TestSessionEnforcement(t *testing.T) {
	ctx := context.Background()
	client := startTestServer(t)

	t.Run("missing token is rejected", func(t *testing.T) {
		_, err := client.NewSession("").ListEntries(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := client.NewSession("not.a.jwt").UserInfo(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)
	})
}

func TestProvidersListEmptyWithoutConfiguration(t *testing.T) {
	ctx := context.Background()
	client := startTestServer(t)

	resp, err := client.Providers(ctx)
	require.NoError(t, err)
	require.Empty(t, resp.Providers)
}
