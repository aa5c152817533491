package snapshot

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no snapshot exists for a session
var ErrNotFound = errors.New("snapshot not found")

// Store persists serialized session state (cart and order form) keyed
// by session id. Implementations must tolerate concurrent access from
// multiple requests of the same session.
type Store interface {
	// Load returns the raw snapshot for the session, or ErrNotFound
	Load(ctx context.Context, sessionID string) ([]byte, error)

	// Save writes the snapshot, resetting its expiration
	Save(ctx context.Context, sessionID string, data []byte) error

	// Delete removes the snapshot. Deleting an absent session is a no-op.
	Delete(ctx context.Context, sessionID string) error
}

// DefaultTTL is how long an untouched session snapshot survives
const DefaultTTL = 72 * time.Hour
