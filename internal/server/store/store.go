// Package store is the single entry point the transport layer calls into.
// It owns the database handle and composes credential verification, account
// lifecycle, the ban registry, and the audit log reader over the
// backend-specific repositories.
//
// Mutating operations are serialized through one mutex held for the full
// check-then-act sequence and commit atomically via dbx.WithTx. Read-only
// operations run concurrently and never observe a partially committed
// mutation. Domain outcomes (not found, already exists, invalid input) are
// returned as common sentinels and never logged as errors; storage faults
// are logged and wrapped in common.ErrorStorageUnavailable.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cryptiom/cryptiom-server/internal/common"
	"github.com/cryptiom/cryptiom-server/internal/logging"
	"github.com/cryptiom/cryptiom-server/internal/server/repositories/repomanager"
)

type Store struct {
	db      *sql.DB
	repos   repomanager.RepositoryManager
	logger  logging.Logger
	timeout time.Duration
	mu      sync.Mutex
}

// New constructs a Store around an open database handle. timeout bounds
// every storage call; zero disables the bound.
func New(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger, timeout time.Duration) *Store {
	return &Store{
		db:      db,
		repos:   repos,
		logger:  logger.With("module", "store"),
		timeout: timeout,
	}
}

// timeNow is a seam for tests.
var timeNow = time.Now

func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func isDomainError(err error) bool {
	return errors.Is(err, common.ErrorNotFound) ||
		errors.Is(err, common.ErrorAlreadyExists) ||
		errors.Is(err, common.ErrorInvalidInput)
}

// storageErr classifies an operation failure. Domain sentinels pass through
// untouched; everything else is a storage fault, logged at error severity
// and wrapped so callers can match common.ErrorStorageUnavailable.
func (s *Store) storageErr(ctx context.Context, op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	s.logger.Error(ctx, "storage failure", "op", op, "error", err.Error())
	return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
}
