// Package cryptox holds the credential primitives used by the driver roster:
// argon2id password hashing and constant-time comparison.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/drivercal/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32

	// SaltLen is the size of a freshly generated per-driver salt.
	SaltLen = 16
)

// NewSalt returns SaltLen random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltLen)
}

// HashPassword derives the stored password hash from (password, salt).
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// VerifyPassword reports whether password hashes to want under salt.
func VerifyPassword(password, salt, want []byte) bool {
	if len(want) == 0 {
		return false
	}
	got := HashPassword(password, salt)
	defer common.WipeByteArray(got)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// EqualStrings compares a and b in constant time.
func EqualStrings(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
