package logins

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, record *models.LoginRecord) error {
	query :=
		`INSERT INTO login_records (id, username, created_at)
		 VALUES (?, ?, ?)
		 `

	_, err := r.db.ExecContext(ctx, query, record.ID, record.Username, record.At.Unix())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.LoginRecord, error) {
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
