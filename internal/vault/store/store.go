package store

import (
	"context"
	"errors"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists maps the store's uniqueness constraints (user email,
	// identity provider+subject). It is the authoritative race-safety signal:
	// an insert losing a race surfaces this, and callers re-fetch instead of
	// failing the user-visible request.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. The handle is long-lived, owned by the process, and injected
// into services; there is no ambient global lookup.
type Store interface {
	Users() Users
	Identities() Identities
	Entries() Entries

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Multi-step
	// sequences that must be atomic (the federation resolve-or-create) run
	// through this.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Users() Users
	Identities() Identities
	Entries() Entries

	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is the exact-match lookup used during credential
	// verification and federation resolution.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate email returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// CountOrphans returns the number of users with neither a password hash
	// nor a linked identity. Such rows are unreachable accounts; the
	// housekeeping sweep reports them.
	CountOrphans(ctx context.Context) (int64, error)
}

type Identities interface {
	// GetByProviderSubject resolves a linked identity by its globally unique
	// (provider, subject) pair.
	GetByProviderSubject(ctx context.Context, provider, subject string) (domain.LinkedIdentity, error)

	// CreateIdentity inserts a new linked identity. A duplicate
	// (provider, subject) pair returns ErrAlreadyExists.
	CreateIdentity(ctx context.Context, li domain.LinkedIdentity) error

	// CountByUser returns how many identities are linked to a user.
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type Entries interface {
	// GetEntryByID returns an entry by id regardless of owner. Ownership is
	// the service's concern; existence is checked before ownership.
	GetEntryByID(ctx context.Context, id string) (domain.Entry, error)

	// ListEntriesByUser returns a user's entries newest-first.
	ListEntriesByUser(ctx context.Context, userID string) ([]domain.Entry, error)

	// CreateEntry inserts a new entry.
	CreateEntry(ctx context.Context, e domain.Entry) error

	// DeleteEntry removes an entry by id.
	DeleteEntry(ctx context.Context, id string) error
}
