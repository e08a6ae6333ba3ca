package crypto

import (
	"bytes"
	"path/filepath"
	"testing"

	"owt/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptWallet(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt key derivation is slow")
	}

	path := filepath.Join(t.TempDir(), "wallet.owt")
	data := &model.WalletData{
		Seed:      bytes.Repeat([]byte{9}, SeedLen),
		CreatedAt: "2025-06-01",
	}

	err := EncryptWallet(path, "oct1example", data, []byte("hunter2"))
	require.NoError(t, err)

	owtFile, got, err := DecryptWallet(path, []byte("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, "octra", owtFile.Network)
	assert.Equal(t, "oct1example", owtFile.Address)
	assert.Equal(t, data.Seed, got.Seed)
	assert.Equal(t, data.CreatedAt, got.CreatedAt)
}

func TestDecryptWalletWrongPassword(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt key derivation is slow")
	}

	path := filepath.Join(t.TempDir(), "wallet.owt")
	data := &model.WalletData{Seed: bytes.Repeat([]byte{9}, SeedLen)}

	require.NoError(t, EncryptWallet(path, "oct1example", data, []byte("right")))

	_, _, err := DecryptWallet(path, []byte("wrong"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password")
}

func TestEncryptWalletRequiresOWTExtension(t *testing.T) {
	err := EncryptWallet(filepath.Join(t.TempDir(), "wallet.json"), "oct1example", &model.WalletData{}, []byte("pw"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".owt")
}

func TestDecryptWalletMissingFile(t *testing.T) {
	_, _, err := DecryptWallet(filepath.Join(t.TempDir(), "absent.owt"), []byte("pw"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
