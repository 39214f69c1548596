package service

import (
	"time"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
	"github.com/lockboxhq/lockbox/pkg/jwtx"
)

// TokenService materializes sessions for verified identities. It is the
// final stage of the sign-in pipeline: verify/resolve identity, enrich
// claims, materialize session.
type TokenService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Issue mints a signed session token for the given user. The claims carry
// only public identity fields; nothing is persisted.
func (s *TokenService) Issue(user domain.User) (domain.Session, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(
		user.ID,
		user.Email,
		user.DisplayName,
		ttl,
		s.Issuer,
		time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{AccessToken: token, ExpiresIn: ttl}, nil
}
