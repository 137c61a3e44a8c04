// Package ipbans persists time-bounded bans. Rows are never auto-deleted;
// a ban is active only while the supplied reference time precedes its
// expiration, and expired rows remain queryable for audit.
package ipbans

import (
	"context"
	"time"

	"github.com/cryptiom/cryptiom-server/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, ban *models.IPBan) error

	// ActiveExists reports whether any ban row for username has
	// now < expires_at. The comparison happens in SQL against the stored
	// absolute timestamps.
	ActiveExists(ctx context.Context, username string, now time.Time) (bool, error)

	// List returns all rows, active and expired, for reporting.
	List(ctx context.Context) ([]models.IPBan, error)
}
