package octra

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"owt/internal/client"
	"owt/internal/common"
	"owt/internal/model"

	"golang.org/x/sync/errgroup"
)

// refreshHistoryLocked reconciles the local log with the ledger's recent
// transactions for the wallet address. Detail fetches run concurrently and
// fail independently; a failed fetch just drops that one entry from this
// pass. The merged log keeps locally appended entries until they age out,
// dedupes by hash, sorts newest first and caps at historyMaxEntries.
//
// Caller must hold s.mu.
func (s *Session) refreshHistoryLocked(ctx context.Context) {
	now := s.now()
	if s.historyAt.Fresh(now) && len(s.history) > 0 {
		return
	}

	addr := s.identity.Address
	path := fmt.Sprintf("/address/%s?limit=%d", addr, historyFetchLimit)
	res := s.ledger.Call(ctx, http.MethodGet, path, nil, client.DefaultTimeout)

	switch {
	case res.Status == http.StatusOK && res.Structured() && res.JSON["recent_transactions"] != nil:
		refs := client.Objects(res.JSON, "recent_transactions")

		existing := make(map[string]bool, len(s.history))
		for _, entry := range s.history {
			existing[entry.Hash] = true
		}

		// fan out the per-transaction detail fetches; each slot keeps its
		// own result, a slow or failed sibling affects nobody else
		details := make([]client.Result, len(refs))
		g := new(errgroup.Group)
		for i, ref := range refs {
			hash := client.Str(ref, "hash")
			if hash == "" || existing[hash] {
				continue
			}
			i, hash := i, hash
			g.Go(func() error {
				details[i] = s.ledger.Call(ctx, http.MethodGet, "/tx/"+hash, nil, client.DetailTimeout)
				return nil
			})
		}
		g.Wait()

		fresh := make([]model.HistoryEntry, 0, len(refs))
		seen := make(map[string]bool, len(refs))
		for i, ref := range refs {
			hash := client.Str(ref, "hash")
			if hash == "" || existing[hash] || seen[hash] {
				continue
			}
			det := details[i]
			if det.Status != http.StatusOK || !det.Structured() {
				continue
			}
			parsed := client.Object(det.JSON, "parsed_tx")
			if parsed == nil {
				continue
			}

			incoming := client.Str(parsed, "to") == addr
			direction := model.DirectionOut
			counterparty := client.Str(parsed, "to")
			if incoming {
				direction = model.DirectionIn
				counterparty = client.Str(parsed, "from")
			}

			ts, _ := client.Float(parsed, "timestamp")
			nonce, _ := client.Uint(parsed, "nonce")
			epoch, _ := client.Uint(ref, "epoch")

			seen[hash] = true
			fresh = append(fresh, model.HistoryEntry{
				Time:         timeFromUnixFloat(ts),
				Hash:         hash,
				Amount:       parseHistoryAmount(parsed),
				Counterparty: counterparty,
				Direction:    direction,
				Confirmed:    true,
				Nonce:        nonce,
				Epoch:        epoch,
			})
		}

		cutoff := now.Add(-historyMaxAge)
		merged := fresh
		for _, entry := range s.history {
			if seen[entry.Hash] {
				continue
			}
			if entry.Time.After(cutoff) {
				merged = append(merged, entry)
				seen[entry.Hash] = true
			}
		}

		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].Time.After(merged[j].Time)
		})
		if len(merged) > historyMaxEntries {
			merged = merged[:historyMaxEntries]
		}

		s.history = merged
		s.historyAt.Touch(now)

	case res.Status == http.StatusNotFound,
		res.Status == http.StatusOK && strings.Contains(strings.ToLower(res.Text), "no transactions"):
		s.history = nil
		s.historyAt.Touch(now)

	default:
		// transport failure or unrecognized reply: keep the current log
	}
}

// appendHistoryLocked records a locally submitted transaction immediately,
// without waiting for the next reconciliation pass.
//
// Caller must hold s.mu.
func (s *Session) appendHistoryLocked(entry model.HistoryEntry) {
	s.history = append([]model.HistoryEntry{entry}, s.history...)
	if len(s.history) > historyMaxEntries {
		s.history = s.history[:historyMaxEntries]
	}
}

// ClearHistory drops the local log and forces the next view to reconcile
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.historyAt.Invalidate()
}

// parseHistoryAmount extracts the human-readable amount of a parsed
// transaction: a decimal string is taken as is, an integral value is read as
// micro units.
func parseHistoryAmount(parsed map[string]interface{}) float64 {
	raw, ok := parsed["amount_raw"]
	if !ok {
		raw = parsed["amount"]
	}
	switch v := raw.(type) {
	case string:
		if strings.Contains(v, ".") {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0
			}
			return f
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}
		return common.MicroToOCT(n)
	case float64:
		if v != math.Trunc(v) {
			return v
		}
		return v / common.MicroPerOCT
	}
	return 0
}

func timeFromUnixFloat(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
