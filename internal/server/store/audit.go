package store

import (
	"context"
	"time"

	"github.com/cryptiom/cryptiom-server/internal/common"
	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/server/models"
	"github.com/cryptiom/cryptiom-server/internal/timex"
	"github.com/google/uuid"
)

// RecordLogin appends one audit record with the given wall-clock time.
func (s *Store) RecordLogin(ctx context.Context, username string, at time.Time) error {
	if username == "" {
		return common.ErrorInvalidInput
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	record := &models.LoginRecord{ID: uuid.NewString(), Username: username, At: at}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repos.Logins(tx).Add(ctx, record)
	})
	return s.storageErr(ctx, "record_login", err)
}

// ListLogins returns the audit trail oldest-to-newest. Each stored
// wall-clock timestamp is reconciled against the current process clock.
// A record whose timestamp cannot be converted keeps its place with At
// set to the read time and Degraded marked, and the fallback is logged.
func (s *Store) ListLogins(ctx context.Context) ([]models.LoginRecord, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	records, err := s.repos.Logins(s.db).List(ctx)
	if err != nil {
		return nil, s.storageErr(ctx, "list_logins", err)
	}

	now := timeNow()
	for i := range records {
		at, degraded := timex.Reconcile(records[i].At.Unix(), now)
		records[i].At = at
		records[i].Degraded = degraded
		if degraded {
			s.logger.Warn(ctx, "login record timestamp reconciliation fell back to now",
				"id", records[i].ID,
				"username", records[i].Username,
				"error", common.ErrorDegradedTimestamp,
			)
		}
	}
	return records, nil
}
