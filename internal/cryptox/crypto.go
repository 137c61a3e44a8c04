// Package cryptox holds the key-derivation helpers that login clients are
// expected to use together with the store's salt retrieval: derive a key from
// the password and the stored salt, then present the hex-encoded result as
// the password hash. The store itself never hashes anything.
package cryptox

import (
	"encoding/hex"

	"github.com/cryptiom/cryptiom-server/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 32

// DeriveKey stretches a password with argon2id using the account salt.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// HashPassword returns the hex form of the derived key, the representation
// persisted in the accounts table.
func HashPassword(password, salt []byte) string {
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return hex.EncodeToString(key)
}

// GenerateSalt returns a fresh random salt in hex form.
func GenerateSalt() string {
	return common.MakeRandHexString(saltSize)
}
