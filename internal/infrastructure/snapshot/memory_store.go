package snapshot

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore implements Store with an in-process map. Suitable for
// single-instance deployments and tests; snapshots do not survive a
// restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a new in-memory snapshot store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Load returns the raw snapshot for the session, or ErrNotFound.
// Expired entries are reaped lazily.
func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	data := make([]byte, len(entry.data))
	copy(data, entry.data)
	return data, nil
}

// Save writes the snapshot, resetting its expiration
func (s *MemoryStore) Save(_ context.Context, sessionID string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.entries[sessionID] = memoryEntry{
		data:      stored,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

// Delete removes the snapshot
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored snapshots, expired entries included
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var _ Store = (*MemoryStore)(nil)
