package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
	"github.com/lockboxhq/lockbox/internal/vault/store"
	"github.com/lockboxhq/lockbox/pkg/idx"
	"github.com/lockboxhq/lockbox/pkg/slogx"
)

// ErrNotOwner reports an operation on an entry owned by someone else.
var ErrNotOwner = errors.New("entry: not owned by caller")

// EntryService owns vault entry access. Every operation is scoped to the
// acting user; ownership is enforced here, not in the store.
type EntryService struct {
	Store store.Store
}

// List returns the caller's entries, newest first.
func (s *EntryService) List(ctx context.Context, userID string) ([]domain.Entry, error) {
	return s.Store.Entries().ListEntriesByUser(ctx, userID)
}

// Create stores a new entry for the caller. All three fields are required.
// The secret is persisted as submitted.
func (s *EntryService) Create(
	ctx context.Context,
	userID, site, username, secret string,
) (domain.Entry, error) {
	site = strings.TrimSpace(site)
	username = strings.TrimSpace(username)
	if site == "" || username == "" || secret == "" {
		return domain.Entry{}, ErrMissingField
	}

	entry := domain.Entry{
		ID:        idx.New().String(),
		UserID:    userID,
		Site:      site,
		Username:  username,
		Secret:    secret,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Entries().CreateEntry(ctx, entry); err != nil {
		return domain.Entry{}, err
	}

	slogx.FromContext(ctx).Info("entry created", "user_id", userID, "entry_id", entry.ID)
	return entry, nil
}

// Delete removes an entry the caller owns. The check order is deliberate:
// existence first (store.ErrNotFound), ownership second (ErrNotOwner), so a
// caller probing foreign ids cannot distinguish timing-wise between "checked
// and absent" and "checked and denied" via differently shaped code paths.
// The check-then-delete runs in one transaction.
func (s *EntryService) Delete(ctx context.Context, userID, entryID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		entry, err := tx.Entries().GetEntryByID(ctx, entryID)
		if err != nil {
			return err // store.ErrNotFound included
		}

		if entry.UserID != userID {
			return ErrNotOwner
		}

		return tx.Entries().DeleteEntry(ctx, entryID)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("entry deleted", "user_id", userID, "entry_id", entryID)
	return nil
}
