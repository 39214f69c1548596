package vaultsdk

import "time"

// RegisterRequest is the body for POST /v1/auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// LoginRequest is the body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued session token. Sessions are bearer
// tokens only; the service never sets a session cookie.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// UserResponse is the public view of a user. It never carries the password
// hash or provider tokens.
type UserResponse struct {
	UserID      string     `json:"user_id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateEntryRequest is the body for POST /v1/entries.
type CreateEntryRequest struct {
	Site     string `json:"site"`
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

// EntryResponse is one stored vault entry owned by the caller.
type EntryResponse struct {
	ID        string    `json:"id"`
	Site      string    `json:"site"`
	Username  string    `json:"username"`
	Secret    string    `json:"secret"`
	CreatedAt time.Time `json:"created_at"`
}

// EntriesResponse is the body for GET /v1/entries, newest first.
type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ProviderInfo describes one enabled federated identity provider.
type ProviderInfo struct {
	Name         string `json:"name"`
	AuthorizeURL string `json:"authorize_url"`
}

// ProvidersResponse is the body for GET /v1/auth/providers.
type ProvidersResponse struct {
	Providers []ProviderInfo `json:"providers"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is the body for the livez/readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ErrorResponse mirrors the JSON shape of APIError for documentation and
// client-side decoding.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}
