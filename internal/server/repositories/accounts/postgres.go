package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cryptiom/cryptiom-server/internal/common"
	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/server/models"
)

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) error {
	query :=
		`INSERT INTO accounts (id, username, password_hash, salt, public_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (username) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query,
		account.ID, account.Username, account.PasswordHash, account.Salt, account.PublicKey, account.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorAlreadyExists
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, username, passwordHash string) (bool, error) {
	query := `DELETE FROM accounts WHERE username = $1 AND password_hash = $2`

	res, err := r.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE username = $1`
	return r.countAtLeastOne(ctx, query, username)
}

func (r *PostgresRepository) GetSalt(ctx context.Context, username string) (string, error) {
	query := `SELECT salt FROM accounts WHERE username = $1`

	var salt string
	err := r.db.QueryRowContext(ctx, query, username).Scan(&salt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return salt, nil
}

func (r *PostgresRepository) MatchPassword(ctx context.Context, username, passwordHash string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE username = $1 AND password_hash = $2`
	return r.countExactlyOne(ctx, query, username, passwordHash)
}

func (r *PostgresRepository) MatchSecurityKey(ctx context.Context, key string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE public_key = $1 AND public_key <> ''`
	return r.countExactlyOne(ctx, query, key)
}

func (r *PostgresRepository) MatchTwoFactor(ctx context.Context, username, passwordHash, key string) (bool, error) {
	query :=
		`SELECT count(1) FROM accounts
		 WHERE username = $1 AND password_hash = $2 AND public_key = $3 AND public_key <> ''
		 `
	return r.countExactlyOne(ctx, query, username, passwordHash, key)
}

func (r *PostgresRepository) HasSecurityKey(ctx context.Context, username string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE username = $1 AND public_key <> ''`
	return r.countAtLeastOne(ctx, query, username)
}

func (r *PostgresRepository) KeyOnFile(ctx context.Context, key string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE public_key = $1 AND public_key <> ''`
	return r.countAtLeastOne(ctx, query, key)
}

func (r *PostgresRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) countExactlyOne(ctx context.Context, query string, args ...any) (bool, error) {
	n, err := r.count(ctx, query, args...)
	return n == 1, err
}

func (r *PostgresRepository) countAtLeastOne(ctx context.Context, query string, args ...any) (bool, error) {
	n, err := r.count(ctx, query, args...)
	return n > 0, err
}
