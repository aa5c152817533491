package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/saborfome/backend/internal/domain/order"
	"github.com/saborfome/backend/internal/domain/shared"
	"github.com/saborfome/backend/internal/infrastructure/snapshot"
)

// ErrMissingSession is returned when a request carries no session id
var ErrMissingSession = shared.NewDomainError("MISSING_SESSION", "Session ID is required")

// State is everything a shopping session accumulates: the cart and the
// order form. It is serialized as one snapshot so a session is always
// restored whole.
type State struct {
	Cart    *order.Cart    `json:"cart"`
	Details *order.Details `json:"details"`

	// LookupSeq counts postal lookups issued for this session. It is
	// bumped when a lookup starts, so a result can be recognized as
	// stale no matter how late it lands.
	LookupSeq int64 `json:"lookupSeq"`
}

func newState() *State {
	return &State{
		Cart:    order.NewCart(),
		Details: order.NewDetails(),
	}
}

// Sessions loads and saves session state through the snapshot store.
// An unknown session id yields a fresh state rather than an error, so
// first-time visitors need no explicit session creation step.
type Sessions struct {
	store  snapshot.Store
	logger *zap.Logger
}

// NewSessions creates a session manager
func NewSessions(store snapshot.Store, logger *zap.Logger) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sessions{store: store, logger: logger}
}

// Load restores the session state, or a fresh one if none exists yet.
// A snapshot that fails to decode is discarded the same way; losing a
// cart beats refusing every request of the session.
func (s *Sessions) Load(ctx context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	data, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return newState(), nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("discarding undecodable session snapshot",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return newState(), nil
	}
	if state.Cart == nil {
		state.Cart = order.NewCart()
	}
	if state.Details == nil {
		state.Details = order.NewDetails()
	}
	return &state, nil
}

// Save persists the session state
func (s *Sessions) Save(ctx context.Context, sessionID string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Save(ctx, sessionID, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
