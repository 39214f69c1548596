package domain

import "time"

// User is a vault account. PasswordHash is nil for accounts created solely
// through a federated provider; such accounts are only ever created together
// with a linked identity, so every user has at least one way to sign in.
type User struct {
	ID           string
	Email        string // login identifier, unique, case-sensitive
	DisplayName  string
	PasswordHash *string    // argon2id PHC encoded, nil for federation-only accounts
	VerifiedAt   *time.Time // set when the email was confirmed by a provider
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can sign in with credentials.
func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
