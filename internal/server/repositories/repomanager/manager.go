package repomanager

import (
	"context"
	"database/sql"

	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/accountbans"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/accounts"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/ipbans"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/logins"
)

// RepositoryManager vends backend-specific repositories bound to a DBTX and
// exposes the schema migration hook. A migration failure is fatal at
// startup; callers must not proceed with a partially initialized store.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	AccountBans(db dbx.DBTX) accountbans.Repository
	IPBans(db dbx.DBTX) ipbans.Repository
	Logins(db dbx.DBTX) logins.Repository
}
