package models

import "time"

// Account is a registered user. PasswordHash and Salt are opaque values
// supplied by the client-side key derivation; a non-empty PublicKey means
// security-key authentication is enabled for the account.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Salt         string
	PublicKey    string
	CreatedAt    time.Time
}
