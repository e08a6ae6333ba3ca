package octra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"owt/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiSendLedger(balance string, nonce uint64) (*http.ServeMux, *submitRecorder) {
	rec := &submitRecorder{}
	mux := http.NewServeMux()
	mux.HandleFunc("/balance/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"balance":"%s","nonce":%d}`, balance, nonce)
	})
	mux.HandleFunc("/staging", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"staged_transactions":[]}`)
	})
	mux.HandleFunc("/send-tx", func(w http.ResponseWriter, r *http.Request) {
		tx := rec.record(r)
		if rec.reject != nil && rec.reject(tx) {
			http.Error(w, "rejected by pool", http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, `{"status":"accepted","tx_hash":"hash-%d"}`, tx.Nonce)
	})
	return mux, rec
}

// submitRecorder captures every posted transaction and tracks how many
// submissions are in flight at once
type submitRecorder struct {
	mu       sync.Mutex
	posted   []Transaction
	inFlight int32
	peak     int32
	reject   func(Transaction) bool
}

func (rec *submitRecorder) record(r *http.Request) Transaction {
	n := atomic.AddInt32(&rec.inFlight, 1)
	defer atomic.AddInt32(&rec.inFlight, -1)

	rec.mu.Lock()
	if n > rec.peak {
		rec.peak = n
	}
	var tx Transaction
	body, _ := io.ReadAll(r.Body)
	json.Unmarshal(body, &tx)
	rec.posted = append(rec.posted, tx)
	rec.mu.Unlock()
	return tx
}

func recipients(t *testing.T, n int, amount float64) []model.Recipient {
	t.Helper()
	out := make([]model.Recipient, n)
	for i := range out {
		out[i] = model.Recipient{To: testAddress(t, byte(10+i)), Amount: amount}
	}
	return out
}

func TestMultiSendAssignsSequentialNonces(t *testing.T) {
	mux, rec := multiSendLedger("10000", 7)
	s, _ := newTestSession(t, mux)
	loadTestWallet(t, s, 1)

	rcps := recipients(t, 7, 10)
	resp, err := s.MultiSend(context.Background(), rcps)
	require.NoError(t, err)

	assert.Equal(t, 7, resp.SuccessCount)
	assert.Equal(t, 0, resp.FailureCount)
	require.Len(t, resp.Results, 7)

	// recipient i gets nonce base+1+i regardless of dispatch order
	for i, result := range resp.Results {
		assert.Equal(t, rcps[i].To, result.To)
		assert.Equal(t, uint64(8+i), result.Nonce)
		assert.True(t, result.OK)
		assert.Equal(t, fmt.Sprintf("hash-%d", result.Nonce), result.TxHash)
	}

	// seven sends in groups of five: never more than five in flight
	assert.Len(t, rec.posted, 7)
	assert.LessOrEqual(t, rec.peak, int32(multiSendGroupSize))

	// every posted nonce is distinct
	seen := map[uint64]bool{}
	for _, tx := range rec.posted {
		assert.False(t, seen[tx.Nonce], "duplicate nonce %d", tx.Nonce)
		seen[tx.Nonce] = true
	}

	assert.Len(t, s.history, 7)
	assert.False(t, s.state.Fresh(s.now()))
}

func TestMultiSendPartialFailure(t *testing.T) {
	mux, rec := multiSendLedger("10000", 0)
	s, _ := newTestSession(t, mux)
	loadTestWallet(t, s, 1)

	rcps := recipients(t, 6, 5)
	rec.reject = func(tx Transaction) bool { return tx.To == rcps[2].To }

	resp, err := s.MultiSend(context.Background(), rcps)
	require.NoError(t, err)

	assert.Equal(t, 5, resp.SuccessCount)
	assert.Equal(t, 1, resp.FailureCount)

	failed := resp.Results[2]
	assert.False(t, failed.OK)
	assert.Empty(t, failed.TxHash)
	assert.Contains(t, failed.Error, "rejected by pool")

	// only accepted transfers reach the local log
	assert.Len(t, s.history, 5)
	for _, entry := range s.history {
		assert.NotEqual(t, rcps[2].To, entry.Counterparty)
	}
}

func TestMultiSendRejectsBatchUpFront(t *testing.T) {
	mux, rec := multiSendLedger("100", 0)
	s, _ := newTestSession(t, mux)
	loadTestWallet(t, s, 1)

	_, err := s.MultiSend(context.Background(), nil)
	assert.Equal(t, CodeInvalidAmount, CodeOf(err))

	rcps := recipients(t, 3, 10)
	rcps[1].To = "not-an-address"
	_, err = s.MultiSend(context.Background(), rcps)
	assert.Equal(t, CodeInvalidAddress, CodeOf(err))

	rcps = recipients(t, 3, 10)
	rcps[2].Amount = 0
	_, err = s.MultiSend(context.Background(), rcps)
	assert.Equal(t, CodeInvalidAmount, CodeOf(err))

	// 3 * 40 exceeds the confirmed balance of 100
	_, err = s.MultiSend(context.Background(), recipients(t, 3, 40))
	assert.Equal(t, CodeInsufficientBalance, CodeOf(err))

	// no transaction ever left the session
	assert.Empty(t, rec.posted)
}

func TestMultiSendRequiresWallet(t *testing.T) {
	mux, _ := multiSendLedger("100", 0)
	s, _ := newTestSession(t, mux)

	_, err := s.MultiSend(context.Background(), recipients(t, 1, 1))
	assert.ErrorIs(t, err, ErrNoWallet)
}
