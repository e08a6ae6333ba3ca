package octra

import (
	"context"

	"owt/internal/crypto"
	"owt/internal/model"

	"golang.org/x/sync/errgroup"
)

// MultiSend dispatches one transfer per recipient in groups of five.
// The whole batch is validated up front; nonces are assigned strictly
// increasing in recipient order (base+1+index), so retries can reason about
// which nonce belongs to whom. Sends within a group run concurrently, groups
// run sequentially, and each recipient's outcome is recorded independently;
// one failure never aborts the rest. Cache freshness is invalidated once for
// the whole batch.
func (s *Session) MultiSend(ctx context.Context, recipients []model.Recipient) (*model.MultiSendResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil, ErrNoWallet
	}
	if len(recipients) == 0 {
		return nil, walletErrorf(CodeInvalidAmount, "no recipients")
	}

	var total float64
	for _, rcp := range recipients {
		if !crypto.ValidAddress(rcp.To) {
			return nil, walletErrorf(CodeInvalidAddress, "invalid address: %s", rcp.To)
		}
		if !(rcp.Amount > 0) {
			return nil, walletErrorf(CodeInvalidAmount, "invalid amount for %s: %v", rcp.To, rcp.Amount)
		}
		total += rcp.Amount
	}

	nonce, balance := s.refreshLocked(ctx)
	if nonce == nil {
		return nil, walletErrorf(CodeNonceUnavailable, "failed to determine nonce")
	}
	if balance == nil || *balance < total {
		have := 0.0
		if balance != nil {
			have = *balance
		}
		return nil, walletErrorf(CodeInsufficientBalance, "insufficient balance for batch (%.6f < %.6f)", have, total)
	}

	base := *nonce
	results := make([]model.MultiSendResult, len(recipients))

	for start := 0; start < len(recipients); start += multiSendGroupSize {
		end := start + multiSendGroupSize
		if end > len(recipients) {
			end = len(recipients)
		}

		g := new(errgroup.Group)
		for i := start; i < end; i++ {
			i, rcp := i, recipients[i]
			g.Go(func() error {
				result := model.MultiSendResult{
					To:     rcp.To,
					Amount: rcp.Amount,
					Nonce:  base + 1 + uint64(i),
				}
				tx, _, err := s.buildTransaction(rcp.To, rcp.Amount, result.Nonce)
				if err != nil {
					result.Error = err.Error()
				} else if accepted, hashOrErr, _, _ := s.submit(ctx, tx); accepted {
					result.OK = true
					result.TxHash = hashOrErr
				} else {
					result.Error = hashOrErr
				}
				results[i] = result
				return nil
			})
		}
		g.Wait()
	}

	s.state.Invalidate()

	resp := &model.MultiSendResponse{Results: results}
	for _, result := range results {
		if result.OK {
			resp.SuccessCount++
			s.appendHistoryLocked(model.HistoryEntry{
				Time:         s.now(),
				Hash:         result.TxHash,
				Amount:       result.Amount,
				Counterparty: result.To,
				Direction:    model.DirectionOut,
				Confirmed:    true,
				Nonce:        result.Nonce,
			})
		} else {
			resp.FailureCount++
		}
	}
	return resp, nil
}
