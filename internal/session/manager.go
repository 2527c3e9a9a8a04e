package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/bellarosa/storefront/internal/session/domain"
)

// Manager hands out one Container per session ID, creating and rehydrating
// containers lazily on first use. Each container's snapshot lives under the
// fixed namespace prefixed key.
type Manager struct {
	mu         sync.Mutex
	store      domain.SnapshotStore
	containers map[string]*Container
}

// NewManager creates a manager backed by the given snapshot store.
func NewManager(store domain.SnapshotStore) *Manager {
	return &Manager{
		store:      store,
		containers: make(map[string]*Container),
	}
}

// Key returns the snapshot key for a session ID.
func Key(sessionID string) string {
	return fmt.Sprintf("%s:%s", domain.Namespace, sessionID)
}

// Get returns the container for the session, constructing and rehydrating
// it on first access.
func (m *Manager) Get(ctx context.Context, sessionID string) *Container {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.containers[sessionID]; ok {
		return c
	}
	c := NewContainer(ctx, m.store, Key(sessionID))
	m.containers[sessionID] = c
	return c
}

// Drop forgets the in-memory container for a session. The persisted
// snapshot is left in place; a later Get rehydrates from it.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.containers, sessionID)
}
