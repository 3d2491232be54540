package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString generates size random bytes and returns them
// hex-encoded, so the result is 2*size characters long.
//
// It returns an error if the random number generator fails.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been hashed or compared.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
