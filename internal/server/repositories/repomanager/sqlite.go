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
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends repositories for the internal file-backed
// database.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) AccountBans(db dbx.DBTX) accountbans.Repository {
	return accountbans.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) IPBans(db dbx.DBTX) ipbans.Repository {
	return ipbans.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Logins(db dbx.DBTX) logins.Repository {
	return logins.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded SQLite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}
