// Package wiring assembles the session module for the application root.
// It lives outside package session so the injector can import the
// container and manager it provides.
package wiring

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/bellarosa/storefront/internal/session"
	"github.com/bellarosa/storefront/internal/session/domain"
	"github.com/bellarosa/storefront/internal/session/repository"
	"github.com/bellarosa/storefront/internal/session/usecase/command"
	"github.com/bellarosa/storefront/internal/session/usecase/query"
)

// ProvideSnapshotStore provides the Redis-backed snapshot store wrapped
// with tracing
func ProvideSnapshotStore(client *redis.Client) domain.SnapshotStore {
	return repository.NewTracingStore(repository.NewRedisStore(client))
}

// ProvideManager provides the session manager
func ProvideManager(store domain.SnapshotStore) *session.Manager {
	return session.NewManager(store)
}

// Wire sets
var StoreSet = wire.NewSet(
	ProvideSnapshotStore,
	ProvideManager,
)

var HandlerSet = wire.NewSet(
	command.NewHandlers,
	query.NewHandlers,
)
