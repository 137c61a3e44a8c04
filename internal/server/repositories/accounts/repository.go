// Package accounts persists account rows and answers credential matches.
// Every Match* method compares all presented factors inside a single SQL
// statement so a match can never be assembled from different rows.
package accounts

import (
	"context"

	"github.com/cryptiom/cryptiom-server/internal/server/models"
)

type Repository interface {
	// Create inserts an account; ErrorAlreadyExists if the username is taken.
	Create(ctx context.Context, account *models.Account) error

	// Delete removes the row matching both username and password hash and
	// reports whether a row was actually removed.
	Delete(ctx context.Context, username, passwordHash string) (bool, error)

	Exists(ctx context.Context, username string) (bool, error)

	// GetSalt returns the stored salt or ErrorNotFound.
	GetSalt(ctx context.Context, username string) (string, error)

	// MatchPassword reports whether exactly one row matches both factors.
	MatchPassword(ctx context.Context, username, passwordHash string) (bool, error)

	// MatchSecurityKey reports whether exactly one row holds this non-empty key.
	MatchSecurityKey(ctx context.Context, key string) (bool, error)

	// MatchTwoFactor reports whether exactly one row matches all three factors.
	MatchTwoFactor(ctx context.Context, username, passwordHash, key string) (bool, error)

	// HasSecurityKey reports whether the account exists with a non-empty key.
	HasSecurityKey(ctx context.Context, username string) (bool, error)

	// KeyOnFile reports whether any account holds this non-empty key.
	KeyOnFile(ctx context.Context, key string) (bool, error)
}
