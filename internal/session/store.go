package session

import (
	"errors"
	"sync"

	"virtualdoctor/pkg"
)

// ErrSessionBusy is returned by BeginFlight when the session already has a
// request outstanding.
var ErrSessionBusy = errors.New("session busy")

// Store holds every conversation history in memory, keyed by SessionKey.
// Sessions are created lazily on first access and live for the process
// lifetime. Histories are append-only: nothing in the core ever edits or
// removes a message.
//
// The outer lock only guards the session map; each session carries its own
// lock, so concurrent work on different keys never contends.
type Store struct {
	mu       sync.RWMutex
	sessions map[pkg.SessionKey]*state
}

type state struct {
	mu       sync.Mutex
	history  []pkg.ChatMessage
	inFlight bool
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[pkg.SessionKey]*state)}
}

// get returns the session for key, creating it if needed. Idempotent.
func (s *Store) get(key pkg.SessionKey) *state {
	s.mu.RLock()
	st, ok := s.sessions[key]
	s.mu.RUnlock()
	if ok {
		return st
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok = s.sessions[key]; !ok {
		st = &state{}
		s.sessions[key] = st
	}
	return st
}

// Append adds a message to the end of the session's history. It has no
// capacity bound and preserves arrival order.
func (s *Store) Append(key pkg.SessionKey, msg pkg.ChatMessage) {
	st := s.get(key)
	st.mu.Lock()
	st.history = append(st.history, msg)
	st.mu.Unlock()
}

// History returns a snapshot copy of the session's history. Later appends
// to the session do not show through the returned slice.
func (s *Store) History(key pkg.SessionKey) []pkg.ChatMessage {
	st := s.get(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]pkg.ChatMessage, len(st.history))
	copy(out, st.history)
	return out
}

// Len reports the number of messages in the session.
func (s *Store) Len(key pkg.SessionKey) int {
	st := s.get(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.history)
}

// BeginFlight marks the session as having an outstanding request. It fails
// with ErrSessionBusy if one is already outstanding; this is the mechanism
// enforcing at-most-one-in-flight per session.
func (s *Store) BeginFlight(key pkg.SessionKey) error {
	st := s.get(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.inFlight {
		return ErrSessionBusy
	}
	st.inFlight = true
	return nil
}

// EndFlight clears the outstanding-request mark. Safe to call when no
// request is outstanding.
func (s *Store) EndFlight(key pkg.SessionKey) {
	st := s.get(key)
	st.mu.Lock()
	st.inFlight = false
	st.mu.Unlock()
}

// InFlight reports whether the session currently has a request outstanding.
func (s *Store) InFlight(key pkg.SessionKey) bool {
	st := s.get(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.inFlight
}

// Keys lists every session created so far, in no particular order.
func (s *Store) Keys() []pkg.SessionKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]pkg.SessionKey, 0, len(s.sessions))
	for k := range s.sessions {
		keys = append(keys, k)
	}
	return keys
}
