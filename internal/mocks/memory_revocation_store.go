package mocks

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationStore is an in-process revocation list for tests. Expiry
// is honored on lookup; nothing is pruned eagerly.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		entries: make(map[string]time.Time),
	}
}

func (s *MemoryRevocationStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = time.Now().Add(ttl)

	return nil
}

func (s *MemoryRevocationStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiry, ok := s.entries[id]

	return ok && time.Now().Before(expiry), nil
}
