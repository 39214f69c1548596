package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
	"github.com/lockboxhq/lockbox/internal/vault/store"
	"github.com/lockboxhq/lockbox/pkg/idx"
)

func openStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(filepath.Join(t.TempDir(), "store_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testUser(email string) domain.User {
	now := time.Now().UTC()
	hash := "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA"
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	t.Run("round-trips a user", func(t *testing.T) {
		u := testUser("alice@example.com")
		require.NoError(t, st.Users().CreateUser(ctx, u))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)
		require.NotNil(t, got.PasswordHash)
		require.Equal(t, *u.PasswordHash, *got.PasswordHash)
		require.Nil(t, got.VerifiedAt)

		byEmail, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("duplicate email maps to ErrAlreadyExists", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, testUser("alice@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown lookups map to ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("counts orphans", func(t *testing.T) {
		orphans, err := st.Users().CountOrphans(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 0, orphans)

		u := testUser("orphan@example.com")
		u.PasswordHash = nil
		require.NoError(t, st.Users().CreateUser(ctx, u))

		orphans, err = st.Users().CountOrphans(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, orphans)
	})
}

func TestIdentitiesRepo(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	owner := testUser("owner@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, owner))

	expiry := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	link := domain.LinkedIdentity{
		ID:             idx.New().String(),
		UserID:         owner.ID,
		Provider:       "google",
		Subject:        "subject-1",
		AccessToken:    "at",
		RefreshToken:   "rt",
		IDToken:        "idt",
		TokenExpiresAt: &expiry,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	t.Run("round-trips a linked identity", func(t *testing.T) {
		require.NoError(t, st.Identities().CreateIdentity(ctx, link))

		got, err := st.Identities().GetByProviderSubject(ctx, "google", "subject-1")
		require.NoError(t, err)
		require.Equal(t, owner.ID, got.UserID)
		require.Equal(t, "at", got.AccessToken)
		require.Equal(t, "rt", got.RefreshToken)
		require.NotNil(t, got.TokenExpiresAt)
		require.True(t, got.TokenExpiresAt.Equal(expiry))
	})

	t.Run("duplicate provider+subject maps to ErrAlreadyExists", func(t *testing.T) {
		dup := link
		dup.ID = idx.New().String()
		err := st.Identities().CreateIdentity(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("same subject under another provider is a distinct identity", func(t *testing.T) {
		other := link
		other.ID = idx.New().String()
		other.Provider = "github"
		require.NoError(t, st.Identities().CreateIdentity(ctx, other))

		count, err := st.Identities().CountByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, count)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	boom := errors.New("boom")
	u := testUser("txuser@example.com")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByEmail(ctx, "txuser@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	u := testUser("committed@example.com")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, u)
	})
	require.NoError(t, err)

	got, err := st.Users().GetUserByEmail(ctx, "committed@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}
