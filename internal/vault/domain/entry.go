package domain

import "time"

// Entry is one stored (site, username, secret) triple owned by a User.
// Entries are write-once: they are created and deleted, never edited.
// The secret is stored as submitted.
type Entry struct {
	ID        string
	UserID    string
	Site      string
	Username  string
	Secret    string
	CreatedAt time.Time
}
