package cryptox

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fast keeps the suite quick; the derivation is the same apart from rounds.
var fast = Hasher{Iterations: 1000}

func TestGenerateSalt(t *testing.T) {
	s, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, s, SaltBytes*2)

	_, err = hex.DecodeString(s)
	assert.NoError(t, err)
}

func TestHash_Deterministic(t *testing.T) {
	salt := "00112233445566778899aabbccddeeff"

	h1, err := fast.Hash([]byte("secret"), salt)
	require.NoError(t, err)
	h2, err := fast.Hash([]byte("secret"), salt)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, KeyLength*2)
}

// RFC 7914 §11 PBKDF2-HMAC-SHA256 test vector (c=1, dkLen=32 prefix).
func TestHash_KnownVector(t *testing.T) {
	h := Hasher{Iterations: 1}
	got, err := h.Hash([]byte("passwd"), hex.EncodeToString([]byte("salt")))
	require.NoError(t, err)
	assert.Equal(t, "55ac046e56e3089fec1691c22544b605f94185216dde0465e68b9d57c20dacbc", got)
}

func TestVerify_RoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash, err := fast.Hash([]byte("pw"), salt)
	require.NoError(t, err)

	assert.True(t, fast.Verify([]byte("pw"), salt, hash))
	assert.False(t, fast.Verify([]byte("pW"), salt, hash), "different password")

	otherSalt, err := GenerateSalt()
	require.NoError(t, err)
	assert.False(t, fast.Verify([]byte("pw"), otherSalt, hash), "different salt")
}

func TestVerify_BadEncoding(t *testing.T) {
	assert.False(t, fast.Verify([]byte("pw"), "zz", "00"))
	assert.False(t, fast.Verify([]byte("pw"), "00", "not-hex"))
}

func TestHash_BadSalt(t *testing.T) {
	_, err := fast.Hash([]byte("pw"), "xyz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrMalformedInput))
}

func TestDefaultHasher_Iterations(t *testing.T) {
	assert.Equal(t, 200_000, DefaultHasher.Iterations)
}
