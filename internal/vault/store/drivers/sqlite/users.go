package sqlite

import (
	"context"
	"database/sql"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, display_name, password_hash, verified_at, avatar_url, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, display_name, password_hash, verified_at, avatar_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.DisplayName,
		mapOptionalString(u.PasswordHash),
		mapOptionalTime(u.VerifiedAt),
		u.AvatarURL,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) CountOrphans(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users u
		 WHERE (u.password_hash IS NULL OR u.password_hash = '')
		   AND NOT EXISTS (SELECT 1 FROM linked_identities li WHERE li.user_id = u.id)`,
	).Scan(&count)
	return count, err
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u            domain.User
		passwordHash sql.NullString
		verifiedAt   sql.NullTime
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&passwordHash,
		&verifiedAt,
		&u.AvatarURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.PasswordHash = mapNullStringPtr(passwordHash)
	u.VerifiedAt = mapNullTimePtr(verifiedAt)
	return u, nil
}
