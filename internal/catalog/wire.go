//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	httpDelivery "github.com/bellarosa/storefront/internal/catalog/delivery/http"
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all
// dependencies
func InitializeHTTPHandler() (*httpDelivery.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		QueryHandlerSet,
		httpDelivery.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
