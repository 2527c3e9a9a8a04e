package query

import (
	"github.com/bellarosa/storefront/internal/catalog/domain"
)

// ListProductsQuery represents the query to list catalog products
type ListProductsQuery struct {
	Criteria domain.FilterCriteria
	Sort     domain.SortKey
}

// ListProductsHandler handles the product listing query
type ListProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.CatalogRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the listing query: filter then sort, both preserving
// source order within groups. An empty result is not an error.
func (h *ListProductsHandler) Handle(q ListProductsQuery) []domain.Product {
	products := domain.Filter(h.repo.FindAll(), q.Criteria)

	if q.Sort == "" {
		q.Sort = domain.SortPopular
	}
	return domain.Sort(products, q.Sort)
}
