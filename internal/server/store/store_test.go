package store

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cryptiom/cryptiom-server/internal/common"
	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/logging"
	"github.com/cryptiom/cryptiom-server/internal/server/models"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/accountbans"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/accounts"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/ipbans"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/logins"
)

// --- fakes ---

// fakeAccountsRepo keeps accounts in a plain map. It is deliberately
// unsynchronized: the store's write mutex is what must keep concurrent
// mutations apart, and the race detector will catch it if it does not.
type fakeAccountsRepo struct {
	accounts map[string]*models.Account
	err      error
}

func newFakeAccountsRepo() *fakeAccountsRepo {
	return &fakeAccountsRepo{accounts: make(map[string]*models.Account)}
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.accounts[a.Username]; ok {
		return common.ErrorAlreadyExists
	}
	// widen the check-then-insert window
	runtime.Gosched()
	f.accounts[a.Username] = a
	return nil
}

func (f *fakeAccountsRepo) Delete(ctx context.Context, username, passwordHash string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	a, ok := f.accounts[username]
	if !ok || a.PasswordHash != passwordHash {
		return false, nil
	}
	delete(f.accounts, username)
	return true, nil
}

func (f *fakeAccountsRepo) Exists(ctx context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.accounts[username]
	return ok, nil
}

func (f *fakeAccountsRepo) GetSalt(ctx context.Context, username string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	a, ok := f.accounts[username]
	if !ok {
		return "", common.ErrorNotFound
	}
	return a.Salt, nil
}

func (f *fakeAccountsRepo) MatchPassword(ctx context.Context, username, passwordHash string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	a, ok := f.accounts[username]
	return ok && a.PasswordHash == passwordHash, nil
}

func (f *fakeAccountsRepo) MatchSecurityKey(ctx context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	n := 0
	for _, a := range f.accounts {
		if a.PublicKey != "" && a.PublicKey == key {
			n++
		}
	}
	return n == 1, nil
}

func (f *fakeAccountsRepo) MatchTwoFactor(ctx context.Context, username, passwordHash, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	a, ok := f.accounts[username]
	return ok && a.PasswordHash == passwordHash && a.PublicKey != "" && a.PublicKey == key, nil
}

func (f *fakeAccountsRepo) HasSecurityKey(ctx context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	a, ok := f.accounts[username]
	return ok && a.PublicKey != "", nil
}

func (f *fakeAccountsRepo) KeyOnFile(ctx context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.accounts {
		if a.PublicKey != "" && a.PublicKey == key {
			return true, nil
		}
	}
	return false, nil
}

type fakeAccountBansRepo struct {
	bans map[string]*models.AccountBan
	err  error
}

func newFakeAccountBansRepo() *fakeAccountBansRepo {
	return &fakeAccountBansRepo{bans: make(map[string]*models.AccountBan)}
}

func (f *fakeAccountBansRepo) Ban(ctx context.Context, ban *models.AccountBan) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.bans[ban.Username]; ok {
		return false, nil
	}
	f.bans[ban.Username] = ban
	return true, nil
}

func (f *fakeAccountBansRepo) Remove(ctx context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.bans[username]; !ok {
		return false, nil
	}
	delete(f.bans, username)
	return true, nil
}

func (f *fakeAccountBansRepo) List(ctx context.Context) ([]models.AccountBan, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.AccountBan
	for _, b := range f.bans {
		out = append(out, *b)
	}
	return out, nil
}

type fakeIPBansRepo struct {
	bans []*models.IPBan
	err  error
}

func (f *fakeIPBansRepo) Add(ctx context.Context, ban *models.IPBan) error {
	if f.err != nil {
		return f.err
	}
	f.bans = append(f.bans, ban)
	return nil
}

func (f *fakeIPBansRepo) ActiveExists(ctx context.Context, username string, now time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, b := range f.bans {
		if b.Username == username && b.ExpiresAt.Unix() > now.Unix() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeIPBansRepo) List(ctx context.Context) ([]models.IPBan, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.IPBan
	for _, b := range f.bans {
		out = append(out, *b)
	}
	return out, nil
}

type fakeLoginsRepo struct {
	records []*models.LoginRecord
	err     error
}

func (f *fakeLoginsRepo) Add(ctx context.Context, record *models.LoginRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeLoginsRepo) List(ctx context.Context) ([]models.LoginRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.LoginRecord
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, nil
}

type fakeRepoManager struct {
	accounts    *fakeAccountsRepo
	accountBans *fakeAccountBansRepo
	ipBans      *fakeIPBansRepo
	logins      *fakeLoginsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		accounts:    newFakeAccountsRepo(),
		accountBans: newFakeAccountBansRepo(),
		ipBans:      &fakeIPBansRepo{},
		logins:      &fakeLoginsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository       { return m.accounts }
func (m *fakeRepoManager) AccountBans(dbx.DBTX) accountbans.Repository { return m.accountBans }
func (m *fakeRepoManager) IPBans(dbx.DBTX) ipbans.Repository           { return m.ipBans }
func (m *fakeRepoManager) Logins(dbx.DBTX) logins.Repository           { return m.logins }

// --- helpers ---

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func newTestStore(t *testing.T) (*Store, *fakeRepoManager, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	rm := newFakeRepoManager()
	return New(db, rm, discardLogger(), 0), rm, mock, db
}

func seedAccount(rm *fakeRepoManager, username, hash, salt, key string) {
	rm.accounts.accounts[username] = &models.Account{
		ID:           "a-" + username,
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		PublicKey:    key,
		CreatedAt:    time.Unix(1700000000, 0),
	}
}
