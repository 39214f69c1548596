package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
	"github.com/lockboxhq/lockbox/internal/vault/store"
	"github.com/lockboxhq/lockbox/pkg/cryptox"
	"github.com/lockboxhq/lockbox/pkg/idx"
	"github.com/lockboxhq/lockbox/pkg/slogx"
)

var (
	// ErrInvalidCredentials is the single rejection for every credential
	// verification failure. Callers must not be able to tell an unknown
	// email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrEmailTaken reports a registration against an existing email.
	ErrEmailTaken = errors.New("email_taken")

	// ErrMissingField reports empty required input.
	ErrMissingField = errors.New("missing_field")
)

// decoyHash is a throwaway digest burned on rejections that would otherwise
// skip the hash comparison, so "unknown email" and "wrong password" cost the
// same wall-clock time.
var decoyHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword("lockbox-decoy-credential")
	if err != nil {
		// rand.Read failing here means the process cannot do anything useful.
		panic(err)
	}
	return h
})

type UserService struct {
	Store store.Store
}

// Register creates a direct (password) account. The password is hashed
// before anything is stored; the plaintext never leaves this call.
func (s *UserService) Register(
	ctx context.Context,
	email, password, displayName string,
) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, ErrMissingField
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return user, nil
}

// VerifyCredentials checks a submitted email+password pair. Absent users,
// federation-only accounts without a password hash, and hash mismatches all
// collapse into ErrInvalidCredentials; the hash comparison runs in every
// branch.
func (s *UserService) VerifyCredentials(
	ctx context.Context,
	email, password string,
) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, ErrMissingField
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, decoyHash())
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if !user.HasPassword() {
		_ = cryptox.VerifyPassword(password, decoyHash())
		return domain.User{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, *user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
