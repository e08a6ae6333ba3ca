package octra

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"owt/internal/client"
	"owt/internal/common"
	"owt/internal/crypto"
	"owt/internal/model"
)

// Transaction is the canonical wire form of a transfer. The declared field
// order is the serialization order: the content hash and the signature cover
// the compact JSON of exactly the first six fields, so Signature and
// PublicKey must stay empty until after signing.
type Transaction struct {
	From      string  `json:"from"`
	To        string  `json:"to_"`
	Amount    string  `json:"amount"` // micro units as a decimal string
	Nonce     uint64  `json:"nonce"`
	OU        string  `json:"ou"` // size class: "1" below 1000 oct, "3" otherwise
	Timestamp float64 `json:"timestamp"`
	Signature string  `json:"signature,omitempty"`
	PublicKey string  `json:"public_key,omitempty"`
}

// buildTransaction constructs, signs and hashes one transfer. The timestamp
// carries a sub-10ms random jitter so two back-to-back transfers with equal
// fields never serialize identically.
//
// Caller must hold s.mu, or be inside a multi-send group dispatch (identity
// and clock are read-only there).
func (s *Session) buildTransaction(to string, amount float64, nonce uint64) (*Transaction, string, error) {
	tx := &Transaction{
		From:      s.identity.Address,
		To:        to,
		Amount:    strconv.FormatUint(common.OCTToMicro(amount), 10),
		Nonce:     nonce,
		OU:        sizeClass(amount),
		Timestamp: float64(s.now().UnixNano())/1e9 + rand.Float64()*0.01,
	}

	payload, err := json.Marshal(tx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize transaction: %w", err)
	}

	digest := sha256.Sum256(payload)
	tx.Signature = base64.StdEncoding.EncodeToString(s.identity.Sign(payload))
	tx.PublicKey = s.identity.PublicKeyBase64()

	return tx, hex.EncodeToString(digest[:]), nil
}

func sizeClass(amount float64) string {
	if amount < 1000 {
		return "1"
	}
	return "3"
}

// submit posts a signed transaction and classifies the reply. accepted is
// true when the ledger took the transaction; hashOrErr then carries its hash,
// otherwise the error text (preferring the structured reply's string form).
// submit does not touch session state, so group members of a multi-send may
// call it concurrently; invalidating cache freshness is the caller's job.
func (s *Session) submit(ctx context.Context, tx *Transaction) (accepted bool, hashOrErr string, elapsed time.Duration, res client.Result) {
	start := time.Now()
	res = s.ledger.Call(ctx, http.MethodPost, "/send-tx", tx, client.DefaultTimeout)
	elapsed = time.Since(start)

	if res.Status == http.StatusOK {
		if res.Structured() && client.Str(res.JSON, "status") == "accepted" {
			return true, client.Str(res.JSON, "tx_hash"), elapsed, res
		}
		if strings.HasPrefix(strings.ToLower(res.Text), "ok") {
			fields := strings.Fields(res.Text)
			return true, fields[len(fields)-1], elapsed, res
		}
	}

	if msg := res.JSONString(); msg != "" {
		return false, msg, elapsed, res
	}
	return false, res.Text, elapsed, res
}

// Send validates, builds, submits one transfer and records it in the local
// log. Any submission attempt, successful or not, invalidates the cached
// nonce/balance: the pool may already hold the transaction even when this
// call reports failure.
func (s *Session) Send(ctx context.Context, to string, amount float64) (*model.SendResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil, ErrNoWallet
	}
	if !crypto.ValidAddress(to) {
		return nil, walletErrorf(CodeInvalidAddress, "invalid address: %s", to)
	}
	if !(amount > 0) {
		return nil, walletErrorf(CodeInvalidAmount, "invalid amount: %v", amount)
	}

	nonce, balance := s.refreshLocked(ctx)
	if nonce == nil {
		return nil, walletErrorf(CodeNonceUnavailable, "failed to determine nonce")
	}
	if balance == nil || *balance < amount {
		have := 0.0
		if balance != nil {
			have = *balance
		}
		return nil, walletErrorf(CodeInsufficientBalance, "insufficient balance (%.6f < %.6f)", have, amount)
	}

	tx, _, err := s.buildTransaction(to, amount, *nonce+1)
	if err != nil {
		return nil, err
	}

	accepted, hashOrErr, elapsed, res := s.submit(ctx, tx)
	s.state.Invalidate()

	if !accepted {
		if res.Status == 0 {
			return nil, walletErrorf(CodeTransportFailure, "transaction failed: %s", hashOrErr)
		}
		return nil, walletErrorf(CodeRemoteRejection, "transaction failed: %s", hashOrErr)
	}

	s.appendHistoryLocked(model.HistoryEntry{
		Time:         s.now(),
		Hash:         hashOrErr,
		Amount:       amount,
		Counterparty: to,
		Direction:    model.DirectionOut,
		Confirmed:    true,
	})

	poolSize := 0
	if res.Structured() {
		if info := client.Object(res.JSON, "pool_info"); info != nil {
			if n, ok := client.Uint(info, "total_pool_size"); ok {
				poolSize = int(n)
			}
		}
	}

	return &model.SendResponse{
		Status:   "success",
		TxHash:   hashOrErr,
		Time:     fmt.Sprintf("%.2fs", elapsed.Seconds()),
		PoolSize: poolSize,
	}, nil
}
