// Package catalog wires the catalog module together for the application
// root: the static in-memory repository plus its query handlers.
package catalog

import (
	"github.com/google/wire"

	"github.com/bellarosa/storefront/internal/catalog/data"
	"github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/catalog/repository"
	"github.com/bellarosa/storefront/internal/catalog/usecase/query"
)

// ProvideCatalogRepository provides the static in-memory catalog
func ProvideCatalogRepository() domain.CatalogRepository {
	return repository.NewMemoryRepository(data.Products, data.Categories, data.Collections, data.Occasions)
}

// Query handler providers
func ProvideListProductsHandler(repo domain.CatalogRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideGetProductHandler(repo domain.CatalogRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideGetStatsHandler(repo domain.CatalogRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListProductsHandler,
	ProvideGetProductHandler,
	ProvideGetStatsHandler,
)
