package models

import "time"

// AccountBan is an unconditional, non-expiring restriction. Presence of a
// row means the account is banned; removal is the only mutation.
type AccountBan struct {
	Username  string
	Reason    string
	CreatedAt time.Time
}

// IPBan is a time-bounded restriction, active only while now < ExpiresAt.
// Expired rows stay in the table for audit and must be treated as inactive.
type IPBan struct {
	ID        string
	Username  string
	BannedOn  time.Time
	ExpiresAt time.Time
}
