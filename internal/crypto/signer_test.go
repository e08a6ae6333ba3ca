package crypto

import (
	"bytes"
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromSeedDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, SeedLen)

	a, err := IdentityFromSeed(seed)
	require.NoError(t, err)
	b, err := IdentityFromSeed(seed)
	require.NoError(t, err)

	assert.Equal(t, a.Address, b.Address)
	assert.Equal(t, a.PublicKey, b.PublicKey)
	assert.True(t, strings.HasPrefix(a.Address, AddressPrefix))
	assert.True(t, ValidAddress(a.Address), "derived address should match the advisory pattern")
	assert.LessOrEqual(t, len(a.Address), 48)
}

func TestIdentityFromSeedWrongLength(t *testing.T) {
	_, err := IdentityFromSeed(make([]byte, 31))
	require.Error(t, err)
	assert.True(t, IsInvalidKeyLengthError(err))

	_, err = IdentityFromSeed(nil)
	require.Error(t, err)
	assert.True(t, IsInvalidKeyLengthError(err))
}

func TestSign(t *testing.T) {
	id, err := IdentityFromSeed(bytes.Repeat([]byte{1}, SeedLen))
	require.NoError(t, err)

	msg := []byte(`{"from":"a","to_":"b"}`)
	sig := id.Sign(msg)
	assert.True(t, ed25519.Verify(id.PublicKey, msg, sig))
	assert.False(t, ed25519.Verify(id.PublicKey, []byte("tampered"), sig))
}

func TestNewIdentityUnique(t *testing.T) {
	a, err := NewIdentity()
	require.NoError(t, err)
	b, err := NewIdentity()
	require.NoError(t, err)
	assert.NotEqual(t, a.Address, b.Address)
}

func TestValidAddress(t *testing.T) {
	assert.False(t, ValidAddress("not-an-address"))
	assert.False(t, ValidAddress("oct"))
	// 0, O, I and l are outside the alphabet
	assert.False(t, ValidAddress("oct"+strings.Repeat("0", 44)))
	assert.True(t, ValidAddress("oct"+strings.Repeat("1", 44)))
}

func TestIdentityFromBase64(t *testing.T) {
	_, err := IdentityFromBase64("!!!not base64!!!")
	assert.Error(t, err)

	_, err = IdentityFromBase64("c2hvcnQ=") // "short"
	assert.Error(t, err)
}
