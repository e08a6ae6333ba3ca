package octra

import (
	"sync"
	"time"

	"owt/internal/client"
	"owt/internal/common"
	"owt/internal/crypto"
	"owt/internal/model"

	"go.uber.org/zap"
)

const (
	stateTTL   = 30 * time.Second
	historyTTL = 60 * time.Second

	historyMaxEntries = 50
	historyMaxAge     = time.Hour
	historyFetchLimit = 20

	multiSendGroupSize = 5
)

// Session is one wallet's aggregate state: the identity, the cached
// nonce/balance pair, the reconciled transaction log and the ledger client
// used to talk to the RPC. A session is addressed by an opaque key owned by
// the HTTP layer; all of its mutating operations serialize on the session
// mutex, so at most one is in flight at a time.
type Session struct {
	mu     sync.Mutex
	ledger *client.LedgerClient
	logger *zap.Logger

	identity *crypto.Identity

	// cached ledger state; nil means unknown, which is distinct from zero
	nonce   *uint64
	balance *float64
	state   common.Freshness

	history   []model.HistoryEntry
	historyAt common.Freshness

	now func() time.Time
}

// NewSession creates an empty session bound to the given ledger client.
// No identity is loaded yet.
func NewSession(ledger *client.LedgerClient, logger *zap.Logger) *Session {
	return &Session{
		ledger:    ledger,
		logger:    logger,
		state:     common.NewFreshness(stateTTL),
		historyAt: common.NewFreshness(historyTTL),
		now:       time.Now,
	}
}

// Address returns the loaded wallet's address, or "" when no wallet is loaded
func (s *Session) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ""
	}
	return s.identity.Address
}
