// Package cryptox derives and verifies salted password hashes for the
// user record store.
//
// Hashes are PBKDF2-HMAC-SHA256 with a fixed iteration count. Both the salt
// and the derived key are stored hex-encoded, so a record carries two
// printable columns that are always generated together.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltBytes is the number of random bytes drawn for each salt.
	SaltBytes = 16
	// Iterations is the PBKDF2 round count used for stored hashes.
	Iterations = 200_000
	// KeyLength matches the SHA-256 digest size.
	KeyLength = sha256.Size
)

// Hasher holds the derivation parameters. The zero value is not usable;
// use DefaultHasher or build one with an explicit iteration count.
type Hasher struct {
	Iterations int
}

// DefaultHasher is the hasher used for every persisted record.
var DefaultHasher = Hasher{Iterations: Iterations}

// GenerateSalt returns SaltBytes random bytes, hex-encoded.
func GenerateSalt() (string, error) {
	s, err := common.MakeRandHexString(SaltBytes)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return s, nil
}

// Hash derives the hex-encoded key for password and saltHex.
func (h Hasher) Hash(password []byte, saltHex string) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", common.ErrMalformedInput)
	}
	dk := pbkdf2.Key(password, salt, h.Iterations, KeyLength, sha256.New)
	return hex.EncodeToString(dk), nil
}

// Verify recomputes the key and compares it with hashHex in constant time.
// Any decoding problem counts as a mismatch.
func (h Hasher) Verify(password []byte, saltHex, hashHex string) bool {
	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	got, err := h.Hash(password, saltHex)
	if err != nil {
		return false
	}
	gotRaw, _ := hex.DecodeString(got)
	return subtle.ConstantTimeCompare(gotRaw, want) == 1
}

// HashPassword hashes with DefaultHasher.
func HashPassword(password []byte, saltHex string) (string, error) {
	return DefaultHasher.Hash(password, saltHex)
}

// VerifyPassword verifies with DefaultHasher.
func VerifyPassword(password []byte, saltHex, hashHex string) bool {
	return DefaultHasher.Verify(password, saltHex, hashHex)
}
