// Package logins persists the append-only login audit trail.
package logins

import (
	"context"

	"github.com/cryptiom/cryptiom-server/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, record *models.LoginRecord) error

	// List returns every record ordered oldest-to-newest by stored
	// timestamp. At holds the raw persisted wall-clock value; anchoring it
	// to the reading process's clock is the caller's job.
	List(ctx context.Context) ([]models.LoginRecord, error)
}
