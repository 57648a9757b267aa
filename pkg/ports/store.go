// Package ports defines the interfaces between the tapeline core and its
// pluggable adapters.
package ports

import (
	"context"

	"tapeline/pkg/domain"
)

// SessionStore persists execution session snapshots, enabling durable
// step-at-a-time runs that survive process restarts.
type SessionStore interface {
	// Save persists the snapshot for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.SessionState) error

	// Load retrieves the snapshot for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.SessionState, error)

	// Delete removes the snapshot for a given session ID.
	Delete(ctx context.Context, sessionID string) error
}
