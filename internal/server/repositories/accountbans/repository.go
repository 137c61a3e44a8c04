// Package accountbans persists unconditional account bans. One row per
// banned username; removing the row lifts the ban.
package accountbans

import (
	"context"

	"github.com/cryptiom/cryptiom-server/internal/server/models"
)

type Repository interface {
	// Ban inserts a ban row and reports whether a new row was inserted
	// (false when the account was already banned).
	Ban(ctx context.Context, ban *models.AccountBan) (bool, error)

	// Remove deletes the ban row and reports whether one was removed.
	Remove(ctx context.Context, username string) (bool, error)

	// List returns all ban rows, for reporting.
	List(ctx context.Context) ([]models.AccountBan, error)
}
