package store

import (
	"context"

	"github.com/cryptiom/cryptiom-server/internal/common"
	"github.com/cryptiom/cryptiom-server/internal/dbx"
	"github.com/cryptiom/cryptiom-server/internal/server/models"
	"github.com/google/uuid"
)

// CreateAccount registers a new account. The insert is conditional on the
// username being absent, so two concurrent calls can never both succeed;
// the loser gets common.ErrorAlreadyExists.
func (s *Store) CreateAccount(ctx context.Context, username, passwordHash, salt, publicKey string) error {
	if username == "" || passwordHash == "" || salt == "" {
		return common.ErrorInvalidInput
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	account := &models.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
		PublicKey:    publicKey,
		CreatedAt:    timeNow(),
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repos.Accounts(tx).Create(ctx, account)
	})
	return s.storageErr(ctx, "create_account", err)
}

// DeleteAccount removes the account matching both username and password
// hash. common.ErrorNotFound if no such username exists; otherwise reports
// whether a row was actually removed (false when the hash did not match).
func (s *Store) DeleteAccount(ctx context.Context, username, passwordHash string) (bool, error) {
	if username == "" || passwordHash == "" {
		return false, common.ErrorInvalidInput
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Accounts(tx)

		exists, err := repo.Exists(ctx, username)
		if err != nil {
			return err
		}
		if !exists {
			return common.ErrorNotFound
		}

		removed, err = repo.Delete(ctx, username, passwordHash)
		return err
	})
	if err != nil {
		return false, s.storageErr(ctx, "delete_account", err)
	}
	return removed, nil
}

// AccountExists reports whether an account row exists for username.
func (s *Store) AccountExists(ctx context.Context, username string) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	exists, err := s.repos.Accounts(s.db).Exists(ctx, username)
	if err != nil {
		return false, s.storageErr(ctx, "account_exists", err)
	}
	return exists, nil
}

// RetrieveSalt returns the salt stored at account creation, for client-side
// key derivation. common.ErrorNotFound if the account is absent.
func (s *Store) RetrieveSalt(ctx context.Context, username string) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	salt, err := s.repos.Accounts(s.db).GetSalt(ctx, username)
	if err != nil {
		return "", s.storageErr(ctx, "retrieve_salt", err)
	}
	return salt, nil
}
