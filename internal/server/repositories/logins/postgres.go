package logins

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

func (r *PostgresRepository) Add(ctx context.Context, record *models.LoginRecord) error {
	query :=
		`INSERT INTO login_records (id, username, created_at)
		 VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, record.ID, record.Username, record.At.Unix())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.LoginRecord, error) {
	query := `SELECT id, username, created_at FROM login_records ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.LoginRecord
	for rows.Next() {
		var item models.LoginRecord
		var createdAt int64
		if err := rows.Scan(&item.ID, &item.Username, &createdAt); err != nil {
			return nil, err
		}
		item.At = time.Unix(createdAt, 0)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
