package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bellarosa/storefront/internal/session/domain"
)

// MemoryStore is an in-process SnapshotStore for tests and local
// development. Snapshots round-trip through JSON so it exercises the same
// serialization path as the Redis store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Write stores the snapshot under key.
func (s *MemoryStore) Write(ctx context.Context, key string, snapshot *domain.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = payload
	return nil
}

// Read returns the snapshot under key, or ErrNoSnapshot.
func (s *MemoryStore) Read(ctx context.Context, key string) (*domain.Snapshot, error) {
	s.mu.RLock()
	payload, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrNoSnapshot
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// WriteRaw stores arbitrary bytes under key. Tests use it to plant
// malformed snapshots.
func (s *MemoryStore) WriteRaw(key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = payload
}
