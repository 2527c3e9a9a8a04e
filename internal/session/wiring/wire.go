//go:build wireinject
// +build wireinject

package wiring

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	catalog "github.com/bellarosa/storefront/internal/catalog/domain"
	httpDelivery "github.com/bellarosa/storefront/internal/session/delivery/http"
)

// InitializeHTTPHandler initializes the session HTTP handler with all
// dependencies
func InitializeHTTPHandler(client *redis.Client, repo catalog.CatalogRepository) (*httpDelivery.SessionHandler, error) {
	wire.Build(
		StoreSet,
		HandlerSet,
		httpDelivery.NewSessionHandlerWithDI,
	)
	return nil, nil
}
