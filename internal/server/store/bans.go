package store

import (
	"context"
	"time"

	"github.com/cryptiom/cryptiom-server/internal/common"
	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/server/models"
	"github.com/google/uuid"
)

// BanAccount records an unconditional ban. common.ErrorNotFound if the
// account does not exist; returns false without error when the account was
// already banned.
func (s *Store) BanAccount(ctx context.Context, username, reason string) (bool, error) {
	if username == "" {
		return false, common.ErrorInvalidInput
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	var inserted bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := s.repos.Accounts(tx).Exists(ctx, username)
		if err != nil {
			return err
		}
		if !exists {
			return common.ErrorNotFound
		}

		ban := &models.AccountBan{Username: username, Reason: reason, CreatedAt: timeNow()}
		inserted, err = s.repos.AccountBans(tx).Ban(ctx, ban)
		return err
	})
	if err != nil {
		return false, s.storageErr(ctx, "ban_account", err)
	}
	return inserted, nil
}

// RemoveAccountBan lifts an account ban. common.ErrorNotFound if the
// account does not exist; reports whether a ban row was actually removed,
// distinguishing "unbanned" from "was not banned".
func (s *Store) RemoveAccountBan(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, common.ErrorInvalidInput
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := s.repos.Accounts(tx).Exists(ctx, username)
		if err != nil {
			return err
		}
		if !exists {
			return common.ErrorNotFound
		}

		removed, err = s.repos.AccountBans(tx).Remove(ctx, username)
		return err
	})
	if err != nil {
		return false, s.storageErr(ctx, "remove_account_ban", err)
	}
	return removed, nil
}

// IPBan records a time-bounded ban. The expiration must be strictly after
// bannedOn; violations yield common.ErrorInvalidInput before any write.
func (s *Store) IPBan(ctx context.Context, username string, bannedOn, expiration time.Time) error {
	if username == "" || !expiration.After(bannedOn) {
		return common.ErrorInvalidInput
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	ban := &models.IPBan{
		ID:        uuid.NewString(),
		Username:  username,
		BannedOn:  bannedOn,
		ExpiresAt: expiration,
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repos.IPBans(tx).Add(ctx, ban)
	})
	return s.storageErr(ctx, "ip_ban", err)
}

// IsIPBanned reports whether an IP ban for username is active at now.
// Expired rows stay in the table but never count as active.
func (s *Store) IsIPBanned(ctx context.Context, username string, now time.Time) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	banned, err := s.repos.IPBans(s.db).ActiveExists(ctx, username, now)
	if err != nil {
		return false, s.storageErr(ctx, "is_ip_banned", err)
	}
	return banned, nil
}

// ListBannedAccounts returns every account ban for reporting. No
// pagination; callers must bound call frequency.
func (s *Store) ListBannedAccounts(ctx context.Context) ([]models.AccountBan, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	bans, err := s.repos.AccountBans(s.db).List(ctx)
	if err != nil {
		return nil, s.storageErr(ctx, "list_banned_accounts", err)
	}
	return bans, nil
}

// ListIPBans returns every IP ban row, active and expired, for reporting.
func (s *Store) ListIPBans(ctx context.Context) ([]models.IPBan, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	bans, err := s.repos.IPBans(s.db).List(ctx)
	if err != nil {
		return nil, s.storageErr(ctx, "list_ip_bans", err)
	}
	return bans, nil
}
