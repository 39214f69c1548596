package domain

import "time"

// LinkedIdentity binds a User to an external identity-provider account.
// The (Provider, Subject) pair is globally unique and is the lookup key on
// every federated sign-in.
type LinkedIdentity struct {
	ID       string
	UserID   string
	Provider string // e.g. "google"
	Subject  string // provider-scoped account id

	// Provider tokens, stored as given. All optional; some providers omit
	// refresh tokens entirely.
	AccessToken    string
	RefreshToken   string
	IDToken        string
	TokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExternalIdentity is the assertion a provider hands us after a successful
// sign-in, before any local record exists.
type ExternalIdentity struct {
	Provider  string
	Subject   string
	Email     string // may be empty; federation rejects that case outright
	Name      string
	AvatarURL string

	AccessToken    string
	RefreshToken   string
	IDToken        string
	TokenExpiresAt *time.Time
}
