package sqlite

import (
	"context"
	"database/sql"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
)

type identitiesRepo struct {
	db dbtx
}

const identityColumns = `id, user_id, provider, subject, access_token, refresh_token, id_token, token_expires_at, created_at, updated_at`

func (r *identitiesRepo) GetByProviderSubject(
	ctx context.Context,
	provider, subject string,
) (domain.LinkedIdentity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+identityColumns+` FROM linked_identities WHERE provider = ? AND subject = ?`,
		provider, subject)
	return scanIdentity(row)
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, li domain.LinkedIdentity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO linked_identities
		 (id, user_id, provider, subject, access_token, refresh_token, id_token, token_expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		li.ID,
		li.UserID,
		li.Provider,
		li.Subject,
		mapStringNull(li.AccessToken),
		mapStringNull(li.RefreshToken),
		mapStringNull(li.IDToken),
		mapOptionalTime(li.TokenExpiresAt),
		li.CreatedAt,
		li.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *identitiesRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM linked_identities WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}

func scanIdentity(row *sql.Row) (domain.LinkedIdentity, error) {
	var (
		li             domain.LinkedIdentity
		accessToken    sql.NullString
		refreshToken   sql.NullString
		idToken        sql.NullString
		tokenExpiresAt sql.NullTime
	)
	err := row.Scan(
		&li.ID,
		&li.UserID,
		&li.Provider,
		&li.Subject,
		&accessToken,
		&refreshToken,
		&idToken,
		&tokenExpiresAt,
		&li.CreatedAt,
		&li.UpdatedAt,
	)
	if err != nil {
		return domain.LinkedIdentity{}, mapNotFound(err)
	}

	li.AccessToken = mapNullString(accessToken)
	li.RefreshToken = mapNullString(refreshToken)
	li.IDToken = mapNullString(idToken)
	li.TokenExpiresAt = mapNullTimePtr(tokenExpiresAt)
	return li, nil
}
