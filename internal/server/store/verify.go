package store

import "context"

// Credential verification. All operations are read-only; a failed match is
// (false, nil), never an error. Each check compares every presented factor
// inside one SQL statement, so a match cannot be assembled from different
// rows and secrets are compared by the storage layer rather than fetched
// into this process.

// LoginSecurityKey reports whether exactly one account holds the given
// security key. An empty key never matches.
func (s *Store) LoginSecurityKey(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	ok, err := s.repos.Accounts(s.db).MatchSecurityKey(ctx, key)
	if err != nil {
		return false, s.storageErr(ctx, "login_security_key", err)
	}
	return ok, nil
}

// LoginUserPassword reports whether exactly one account matches both the
// username and the password hash.
func (s *Store) LoginUserPassword(ctx context.Context, username, passwordHash string) (bool, error) {
	if username == "" || passwordHash == "" {
		return false, nil
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	ok, err := s.repos.Accounts(s.db).MatchPassword(ctx, username, passwordHash)
	if err != nil {
		return false, s.storageErr(ctx, "login_user_password", err)
	}
	return ok, nil
}

// LoginUserPasswordTFA reports whether exactly one account matches the
// username, the password hash, and the security key simultaneously. AND
// semantics: any single mismatch yields false.
func (s *Store) LoginUserPasswordTFA(ctx context.Context, username, passwordHash, key string) (bool, error) {
	if username == "" || passwordHash == "" || key == "" {
		return false, nil
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	ok, err := s.repos.Accounts(s.db).MatchTwoFactor(ctx, username, passwordHash, key)
	if err != nil {
		return false, s.storageErr(ctx, "login_user_password_tfa", err)
	}
	return ok, nil
}

// AccountHasSecurityKey reports whether the account exists and has
// security-key authentication enabled.
func (s *Store) AccountHasSecurityKey(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, nil
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	ok, err := s.repos.Accounts(s.db).HasSecurityKey(ctx, username)
	if err != nil {
		return false, s.storageErr(ctx, "account_has_security_key", err)
	}
	return ok, nil
}

// SecurityKeyOnFile reports whether any account holds the given key. Used
// by callers to pick a login flow before attempting verification.
func (s *Store) SecurityKeyOnFile(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	ok, err := s.repos.Accounts(s.db).KeyOnFile(ctx, key)
	if err != nil {
		return false, s.storageErr(ctx, "security_key_on_file", err)
	}
	return ok, nil
}
