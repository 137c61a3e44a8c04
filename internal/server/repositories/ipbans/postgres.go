package ipbans

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, ban *models.IPBan) error {
	query :=
		`INSERT INTO ip_bans (id, username, banned_on, expires_at)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query,
		ban.ID, ban.Username, ban.BannedOn.Unix(), ban.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ActiveExists(ctx context.Context, username string, now time.Time) (bool, error) {
	query := `SELECT count(1) FROM ip_bans WHERE username = $1 AND expires_at > $2`

	var n int64
	if err := r.db.QueryRowContext(ctx, query, username, now.Unix()).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.IPBan, error) {
	query := `SELECT id, username, banned_on, expires_at FROM ip_bans ORDER BY banned_on`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.IPBan
	for rows.Next() {
		var item models.IPBan
		var bannedOn, expiresAt int64
		if err := rows.Scan(&item.ID, &item.Username, &bannedOn, &expiresAt); err != nil {
			return nil, err
		}
		item.BannedOn = time.Unix(bannedOn, 0)
		item.ExpiresAt = time.Unix(expiresAt, 0)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
