package octra

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"owt/internal/client"

	"golang.org/x/sync/errgroup"
)

// refreshLocked brings the cached (nonce, balance) pair up to date and
// returns it. A fresh cache is returned as is with no network call.
// Otherwise the account balance and the staging pool are queried
// concurrently, each failing independently of the other. The adopted nonce
// is raised to the highest nonce among our own staged transactions, so a
// rapid sequence of sends does not reuse a nonce the pool already holds.
//
// Caller must hold s.mu.
func (s *Session) refreshLocked(ctx context.Context) (*uint64, *float64) {
	now := s.now()
	if s.balance != nil && s.state.Fresh(now) {
		return s.nonce, s.balance
	}

	addr := s.identity.Address

	var balRes, poolRes client.Result
	g := new(errgroup.Group)
	g.Go(func() error {
		balRes = s.ledger.Call(ctx, http.MethodGet, "/balance/"+addr, nil, client.DefaultTimeout)
		return nil
	})
	g.Go(func() error {
		poolRes = s.ledger.Call(ctx, http.MethodGet, "/staging", nil, client.StagingTimeout)
		return nil
	})
	g.Wait()

	switch {
	case balRes.Status == http.StatusOK && balRes.Structured():
		nonce, _ := client.Uint(balRes.JSON, "nonce")
		balance, _ := client.Float(balRes.JSON, "balance")
		if poolRes.Status == http.StatusOK && poolRes.Structured() {
			for _, tx := range client.Objects(poolRes.JSON, "staged_transactions") {
				if client.Str(tx, "from") != addr {
					continue
				}
				if n, ok := client.Uint(tx, "nonce"); ok && n > nonce {
					nonce = n
				}
			}
		}
		s.nonce, s.balance = &nonce, &balance
		s.state.Touch(now)

	case balRes.Status == http.StatusNotFound:
		// brand-new account
		var nonce uint64
		var balance float64
		s.nonce, s.balance = &nonce, &balance
		s.state.Touch(now)

	case balRes.Status == http.StatusOK && balRes.Text != "":
		// bare "<balance> <nonce>" line
		if balance, nonce, ok := parseBareBalance(balRes.Text); ok {
			s.nonce, s.balance = &nonce, &balance
			s.state.Touch(now)
		} else {
			// explicitly unknown rather than silently stale
			s.nonce, s.balance = nil, nil
			s.state.Invalidate()
		}

	default:
		// transient failure: keep whatever we had
	}

	return s.nonce, s.balance
}

// parseBareBalance parses the ledger's plain-text balance reply of the form
// "<balance> <nonce>"
func parseBareBalance(text string) (balance float64, nonce uint64, ok bool) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) < 2 {
		return 0, 0, false
	}
	balance, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	nonce, err = strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return balance, nonce, true
}

// pendingCountLocked peeks at the staging pool and counts our own staged
// transactions. Opportunistic: a short timeout and zero on any failure.
//
// Caller must hold s.mu.
func (s *Session) pendingCountLocked(ctx context.Context) int {
	res := s.ledger.Call(ctx, http.MethodGet, "/staging", nil, client.PoolPeekTimeout)
	if !res.Structured() {
		return 0
	}
	count := 0
	for _, tx := range client.Objects(res.JSON, "staged_transactions") {
		if client.Str(tx, "from") == s.identity.Address {
			count++
		}
	}
	return count
}
