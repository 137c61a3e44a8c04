package accountbans

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

func (r *PostgresRepository) Ban(ctx context.Context, ban *models.AccountBan) (bool, error) {
	query :=
		`INSERT INTO account_bans (username, reason, created_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, ban.Username, ban.Reason, ban.CreatedAt.Unix())
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, username string) (bool, error) {
	query := `DELETE FROM account_bans WHERE username = $1`

	res, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.AccountBan, error) {
	query := `SELECT username, reason, created_at FROM account_bans ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.AccountBan
	for rows.Next() {
		var item models.AccountBan
		var createdAt int64
		if err := rows.Scan(&item.Username, &item.Reason, &createdAt); err != nil {
			return nil, err
		}
		item.CreatedAt = time.Unix(createdAt, 0)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
