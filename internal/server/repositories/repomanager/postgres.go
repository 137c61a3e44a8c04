// Package repomanager provides concrete RepositoryManager implementations
// for PostgreSQL and SQLite, wiring together repository constructors and
// database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/server/migrations"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/accountbans"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/accounts"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/ipbans"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/logins"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) AccountBans(db dbx.DBTX) accountbans.Repository {
	return accountbans.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) IPBans(db dbx.DBTX) ipbans.Repository {
	return ipbans.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Logins(db dbx.DBTX) logins.Repository {
	return logins.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded PostgreSQL migrations. Safe to run on
// an already-initialized database.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Postgres)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "postgres")
}
