package session

import (
	"context"
	"sync"

	"owt/octra"
)

// Store maps opaque session keys to wallet sessions. Key issuance belongs to
// the HTTP layer; the store only guarantees exactly one Session per key.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*octra.Session
	factory  func() *octra.Session
}

// NewStore creates a store that builds missing sessions with factory
func NewStore(factory func() *octra.Session) *Store {
	return &Store{
		sessions: make(map[string]*octra.Session),
		factory:  factory,
	}
}

// Get returns the session for key, creating it on first use
func (st *Store) Get(key string) *octra.Session {
	st.mu.RLock()
	s, ok := st.sessions[key]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[key]; ok {
		return s
	}
	s = st.factory()
	st.sessions[key] = s
	return s
}

// Delete drops the session for key, if any
func (st *Store) Delete(key string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, key)
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

type ctxKey struct{}

// NewContext attaches a session to ctx
func NewContext(ctx context.Context, s *octra.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached to ctx, or nil
func FromContext(ctx context.Context) *octra.Session {
	s, _ := ctx.Value(ctxKey{}).(*octra.Session)
	return s
}
