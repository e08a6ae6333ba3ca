package octra

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"owt/internal/client"
	"owt/internal/crypto"
	"owt/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestSession builds a session talking to a fake ledger and pins its
// clock to a fixed instant tests can move
func newTestSession(t *testing.T, ledger http.Handler) (*Session, *time.Time) {
	t.Helper()

	srv := httptest.NewServer(ledger)
	t.Cleanup(srv.Close)

	s := NewSession(client.NewLedgerClient(srv.URL), zap.NewNop())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	return s, &now
}

// loadTestWallet installs a deterministic identity derived from a
// single-byte seed pattern
func loadTestWallet(t *testing.T, s *Session, b byte) *crypto.Identity {
	t.Helper()

	seed := bytes.Repeat([]byte{b}, crypto.SeedLen)
	_, err := s.LoadWalletSeed(seed)
	require.NoError(t, err)

	id, err := crypto.IdentityFromSeed(seed)
	require.NoError(t, err)
	return id
}

// reconcile runs one history reconciliation pass under the session mutex
func reconcile(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshHistoryLocked(context.Background())
}

// record appends a local log entry under the session mutex
func record(s *Session, entry model.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendHistoryLocked(entry)
}

// testAddress returns a valid address distinct per seed byte
func testAddress(t *testing.T, b byte) string {
	t.Helper()
	id, err := crypto.IdentityFromSeed(bytes.Repeat([]byte{b}, crypto.SeedLen))
	require.NoError(t, err)
	return id.Address
}
