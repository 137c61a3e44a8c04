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

// SQLiteRepository implements account storage for the internal file-backed
// database. Same schema and semantics as the Postgres variant.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) error {
	query :=
		`INSERT INTO accounts (id, username, password_hash, salt, public_key, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
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

func (r *SQLiteRepository) Delete(ctx context.Context, username, passwordHash string) (bool, error) {
	query := `DELETE FROM accounts WHERE username = ? AND password_hash = ?`

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

func (r *SQLiteRepository) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE username = ?`
	return r.countAtLeastOne(ctx, query, username)
}

func (r *SQLiteRepository) GetSalt(ctx context.Context, username string) (string, error) {
	query := `SELECT salt FROM accounts WHERE username = ?`

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

func (r *SQLiteRepository) MatchPassword(ctx context.Context, username, passwordHash string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE username = ? AND password_hash = ?`
	return r.countExactlyOne(ctx, query, username, passwordHash)
}

func (r *SQLiteRepository) MatchSecurityKey(ctx context.Context, key string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE public_key = ? AND public_key <> ''`
	return r.countExactlyOne(ctx, query, key)
}

func (r *SQLiteRepository) MatchTwoFactor(ctx context.Context, username, passwordHash, key string) (bool, error) {
	query :=
		`SELECT count(1) FROM accounts
		 WHERE username = ? AND password_hash = ? AND public_key = ? AND public_key <> ''
		 `
	return r.countExactlyOne(ctx, query, username, passwordHash, key)
}

func (r *SQLiteRepository) HasSecurityKey(ctx context.Context, username string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE username = ? AND public_key <> ''`
	return r.countAtLeastOne(ctx, query, username)
}

func (r *SQLiteRepository) KeyOnFile(ctx context.Context, key string) (bool, error) {
	query := `SELECT count(1) FROM accounts WHERE public_key = ? AND public_key <> ''`
	return r.countAtLeastOne(ctx, query, key)
}

func (r *SQLiteRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) countExactlyOne(ctx context.Context, query string, args ...any) (bool, error) {
	n, err := r.count(ctx, query, args...)
	return n == 1, err
}

func (r *SQLiteRepository) countAtLeastOne(ctx context.Context, query string, args ...any) (bool, error) {
	n, err := r.count(ctx, query, args...)
	return n > 0, err
}
