// Package session tracks which fields were filled across the steps of a
// multi-step autofill flow (username on one screen, password on the next).
package session

import "sync"

// FieldRef carries enough information about a recorded field to reconstruct
// it later: the session it was recorded under and the field's id.
type FieldRef struct {
	SessionID string `yaml:"session" json:"session"`
	FieldID   string `yaml:"field"   json:"field"`
}

// Record is the accumulated state of one session.
type Record struct {
	Username *FieldRef `yaml:"username,omitempty" json:"username,omitempty"`
	Password *FieldRef `yaml:"password,omitempty" json:"password,omitempty"`
}

// Store is a per-session accumulator keyed by an opaque session id. Writes
// are idempotent upserts. The store never expires entries on its own: the
// caller owns the lifecycle and clears a session when its flow concludes.
//
// The map is guarded so that distinct sessions may be driven from different
// goroutines. Operations for a single session id must be invoked
// sequentially; the store does not enforce that.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Record
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Record)}
}

func (s *Store) record(sessionID string) *Record {
	r, ok := s.sessions[sessionID]
	if !ok {
		r = &Record{}
		s.sessions[sessionID] = r
	}
	return r
}

// RecordUsername upserts the username field reference for the session.
func (s *Store) RecordUsername(sessionID string, ref FieldRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(sessionID).Username = &ref
}

// RecordPassword upserts the password field reference for the session.
func (s *Store) RecordPassword(sessionID string, ref FieldRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(sessionID).Password = &ref
}

// Username returns the username recorded for the session, if any.
func (s *Store) Username(sessionID string) (FieldRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.sessions[sessionID]; ok && r.Username != nil {
		return *r.Username, true
	}
	return FieldRef{}, false
}

// Password returns the password recorded for the session, if any.
func (s *Store) Password(sessionID string) (FieldRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.sessions[sessionID]; ok && r.Password != nil {
		return *r.Password, true
	}
	return FieldRef{}, false
}

// Clear drops all state for the session. Called by the lifecycle owner when
// the flow terminates (success, cancel, or timeout).
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Export copies the current state of all sessions, for callers that persist
// the caller-owned state between invocations (the CLI's --state file).
func (s *Store) Export() map[string]Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Record, len(s.sessions))
	for id, r := range s.sessions {
		out[id] = *r
	}
	return out
}

// Import replaces the store's state with the given sessions.
func (s *Store) Import(sessions map[string]Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*Record, len(sessions))
	for id, r := range sessions {
		rec := r
		s.sessions[id] = &rec
	}
}
