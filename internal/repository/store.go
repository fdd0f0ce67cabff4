package repository

import (
	"context"
	"time"

	"github.com/lazygeek007/connect-four/internal/domain"
)

// GameSnapshot is the persisted form of a single session.
type GameSnapshot struct {
	SessionID  string           `json:"session_id"`
	Game       domain.GameState `json:"game"`
	Difficulty string           `json:"difficulty"`
	Depth      int              `json:"depth"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// SessionStore persists session snapshots between requests.
type SessionStore interface {
	// Save writes the snapshot, replacing any previous one for the same session.
	Save(ctx context.Context, snapshot *GameSnapshot) error

	// Get returns the snapshot for a session, or domain.ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*GameSnapshot, error)

	// Delete removes a session's snapshot. Unknown sessions are not an error.
	Delete(ctx context.Context, sessionID string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
