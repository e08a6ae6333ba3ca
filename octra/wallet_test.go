package octra

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"testing"

	"owt/internal/crypto"
	"owt/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWallet(t *testing.T) {
	s, _ := newTestSession(t, http.NewServeMux())

	seed := bytes.Repeat([]byte{7}, crypto.SeedLen)
	addr, err := s.LoadWallet(base64.StdEncoding.EncodeToString(seed))
	require.NoError(t, err)

	want, err := crypto.IdentityFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, want.Address, addr)
	assert.Equal(t, want.Address, s.Address())
}

func TestLoadWalletInvalidKeyMaterial(t *testing.T) {
	s, _ := newTestSession(t, http.NewServeMux())

	_, err := s.LoadWallet("not base64 !!!")
	assert.Equal(t, CodeInvalidKeyMaterial, CodeOf(err))

	_, err = s.LoadWallet(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.Equal(t, CodeInvalidKeyMaterial, CodeOf(err))

	assert.Empty(t, s.Address())
}

func TestLoadWalletResetsCachedState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/balance/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"balance":"50","nonce":3}`)
	})
	mux.HandleFunc("/staging", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"staged_transactions":[]}`)
	})

	s, _ := newTestSession(t, mux)
	loadTestWallet(t, s, 1)

	s.mu.Lock()
	s.refreshLocked(context.Background())
	s.mu.Unlock()
	record(s, model.HistoryEntry{Time: s.now(), Hash: "old"})
	require.NotNil(t, s.balance)

	loadTestWallet(t, s, 2)

	assert.Nil(t, s.nonce)
	assert.Nil(t, s.balance)
	assert.Empty(t, s.history)
	assert.False(t, s.state.Fresh(s.now()))
}

func TestGenerateWallet(t *testing.T) {
	s, _ := newTestSession(t, http.NewServeMux())

	resp, err := s.GenerateWallet()
	require.NoError(t, err)

	assert.Equal(t, "wallet generated", resp.Status)
	assert.Equal(t, resp.Address, s.Address())
	assert.True(t, crypto.ValidAddress(resp.Address))

	// the returned seed round-trips to the same identity
	seed, err := base64.StdEncoding.DecodeString(resp.PrivateKey)
	require.NoError(t, err)
	id, err := crypto.IdentityFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, resp.Address, id.Address)
	assert.Equal(t, resp.PublicKey, id.PublicKeyBase64())
}

func TestExport(t *testing.T) {
	s, _ := newTestSession(t, http.NewServeMux())

	_, err := s.Export()
	assert.ErrorIs(t, err, ErrNoWallet)

	id := loadTestWallet(t, s, 1)
	resp, err := s.Export()
	require.NoError(t, err)

	assert.Equal(t, id.Address, resp.Address)
	assert.Equal(t, id.SeedBase64(), resp.PrivateKey)
	assert.Equal(t, id.PublicKeyBase64(), resp.PublicKey)

	png, err := base64.StdEncoding.DecodeString(resp.QR)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestWalletData(t *testing.T) {
	s, _ := newTestSession(t, http.NewServeMux())

	_, err := s.WalletData("2025-06-01")
	assert.ErrorIs(t, err, ErrNoWallet)

	id := loadTestWallet(t, s, 1)
	data, err := s.WalletData("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []byte(id.Seed), data.Seed)
	assert.Equal(t, "2025-06-01", data.CreatedAt)
}

func TestWalletView(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/balance/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"balance":"42.5","nonce":9}`)
	})
	mux.HandleFunc("/staging", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"staged_transactions":[{"hash":"p1","from":"someone","nonce":1}]}`)
	})
	mux.HandleFunc("/address/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	s, _ := newTestSession(t, mux)

	_, err := s.WalletView(context.Background())
	assert.ErrorIs(t, err, ErrNoWallet)

	id := loadTestWallet(t, s, 1)
	view, err := s.WalletView(context.Background())
	require.NoError(t, err)

	assert.Equal(t, id.Address, view.Address)
	assert.Equal(t, "42.500000 oct", view.Balance)
	require.NotNil(t, view.Nonce)
	assert.Equal(t, uint64(9), *view.Nonce)
	assert.Equal(t, id.PublicKeyBase64(), view.PublicKey)
	assert.Empty(t, view.Transactions)

	// mutating the view's nonce must not leak into the session
	*view.Nonce = 999
	require.NotNil(t, s.nonce)
	assert.Equal(t, uint64(9), *s.nonce)
}

func TestWalletViewUnknownBalance(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	s, _ := newTestSession(t, mux)
	loadTestWallet(t, s, 1)

	view, err := s.WalletView(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "N/A", view.Balance)
	assert.Nil(t, view.Nonce)
	assert.Zero(t, view.PendingTxs)
}
