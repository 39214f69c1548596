package domain

import "time"

// Session is an issued bearer token plus its metadata. Nothing is persisted
// server-side; the token is self-contained.
type Session struct {
	AccessToken string
	ExpiresIn   time.Duration
}
