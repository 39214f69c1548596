package sqlite

import (
	"context"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
)

type entriesRepo struct {
	db dbtx
}

func (r *entriesRepo) GetEntryByID(ctx context.Context, id string) (domain.Entry, error) {
	var e domain.Entry
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, site, username, secret, created_at FROM entries WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.UserID, &e.Site, &e.Username, &e.Secret, &e.CreatedAt)
	if err != nil {
		return domain.Entry{}, mapNotFound(err)
	}
	return e, nil
}

func (r *entriesRepo) ListEntriesByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	// Newest first; id is a ULID so it tiebreaks rows created in the same
	// timestamp granule.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, site, username, secret, created_at
		 FROM entries WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Site, &e.Username, &e.Secret, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *entriesRepo) CreateEntry(ctx context.Context, e domain.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (id, user_id, site, username, secret, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Site, e.Username, e.Secret, e.CreatedAt)
	return mapConstraint(err)
}

func (r *entriesRepo) DeleteEntry(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	return err
}
