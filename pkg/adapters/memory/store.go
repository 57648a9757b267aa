// Package memory provides an in-memory SessionStore, suitable for tests
// and single-process use.
package memory

import (
	"context"
	"sync"

	"tapeline/pkg/domain"
)

// Store implements ports.SessionStore with a mutex-guarded map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.SessionState
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]domain.SessionState)}
}

// Save stores a copy of the snapshot.
func (s *Store) Save(_ context.Context, sessionID string, state *domain.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *state
	return nil
}

// Load returns a copy of the stored snapshot.
func (s *Store) Load(_ context.Context, sessionID string) (*domain.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &state, nil
}

// Delete removes the snapshot. Deleting a missing session is a no-op.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
