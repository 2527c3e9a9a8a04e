package query

import (
	"fmt"

	"github.com/bellarosa/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to fetch a single product
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles single product lookups
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	product, ok := h.repo.FindByID(q.ID)
	if !ok {
		return nil, fmt.Errorf("product %s not found", q.ID)
	}
	return product, nil
}
