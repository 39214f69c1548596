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

// ErrEmailMissing reports a provider assertion without a usable email.
// No local user can be resolved or created from it, so the sign-in fails.
var ErrEmailMissing = errors.New("federation: provider returned no email")

// FederationService resolves or provisions local accounts from external
// identity assertions and links the external identity, idempotently.
type FederationService struct {
	Store store.Store
}

// SignIn runs the federated sign-in for a confirmed provider assertion:
// resolve the user by email (creating one on first sign-in), then resolve
// the linked identity by (provider, subject) (creating it if absent). The
// whole sequence is one transaction; a half-created identity never issues a
// session. Losing an insert race to a concurrent callback for the same
// assertion is handled by re-fetching, not by failing the request.
func (s *FederationService) SignIn(
	ctx context.Context,
	ext domain.ExternalIdentity,
) (domain.User, error) {
	if strings.TrimSpace(ext.Email) == "" {
		return domain.User{}, ErrEmailMissing
	}

	log := slogx.FromContext(ctx)

	var user domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = s.resolveUser(ctx, tx, ext)
		if err != nil {
			return err
		}
		return s.resolveLink(ctx, tx, user, ext)
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("federated sign-in",
		"provider", ext.Provider,
		"user_id", user.ID,
	)
	return user, nil
}

// resolveUser finds the account for the asserted email or creates one. An
// account that registered directly with this email gets linked, never
// duplicated.
func (s *FederationService) resolveUser(
	ctx context.Context,
	tx store.Tx,
	ext domain.ExternalIdentity,
) (domain.User, error) {
	user, err := tx.Users().GetUserByEmail(ctx, ext.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	verified := now
	user = domain.User{
		ID:          idx.New().String(),
		Email:       ext.Email,
		DisplayName: displayNameFor(ext),
		VerifiedAt:  &verified, // the provider vouched for this email
		AvatarURL:   ext.AvatarURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := tx.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// A concurrent callback created the account first; use theirs.
			return tx.Users().GetUserByEmail(ctx, ext.Email)
		}
		return domain.User{}, err
	}
	return user, nil
}

// resolveLink ensures exactly one linked identity exists for the
// (provider, subject) pair.
func (s *FederationService) resolveLink(
	ctx context.Context,
	tx store.Tx,
	user domain.User,
	ext domain.ExternalIdentity,
) error {
	_, err := tx.Identities().GetByProviderSubject(ctx, ext.Provider, ext.Subject)
	if err == nil {
		return nil // already linked on a previous sign-in
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	now := time.Now().UTC()
	link := domain.LinkedIdentity{
		ID:             idx.New().String(),
		UserID:         user.ID,
		Provider:       ext.Provider,
		Subject:        ext.Subject,
		AccessToken:    ext.AccessToken,
		RefreshToken:   ext.RefreshToken,
		IDToken:        ext.IDToken,
		TokenExpiresAt: ext.TokenExpiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := tx.Identities().CreateIdentity(ctx, link); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Concurrent callback linked it first; the link exists, which is
			// all this step guarantees.
			return nil
		}
		return err
	}
	return nil
}

// displayNameFor picks the provider-supplied name, falling back to the
// local part of the email.
func displayNameFor(ext domain.ExternalIdentity) string {
	if name := strings.TrimSpace(ext.Name); name != "" {
		return name
	}
	local, _, _ := strings.Cut(ext.Email, "@")
	return local
}
