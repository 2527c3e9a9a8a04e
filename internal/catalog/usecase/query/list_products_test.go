package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/catalog/repository"
)

func testRepo() domain.CatalogRepository {
	return repository.NewMemoryRepository([]domain.Product{
		{ID: "p1", Price: 189, Category: "Dresses", Sizes: []string{"S", "M"}},
		{ID: "p2", Price: 329, Category: "Evening Wear", Sizes: []string{"M"}, IsNew: true},
		{ID: "p3", Price: 89, Category: "Dresses", Sizes: []string{"L"}, IsBestseller: true, LowStock: true},
	}, nil, nil, nil)
}

func TestListProductsHandler_FilterAndSortCompose(t *testing.T) {
	h := NewListProductsHandler(testRepo())

	got := h.Handle(ListProductsQuery{
		Criteria: domain.FilterCriteria{Category: "dresses"},
		Sort:     domain.SortPriceLow,
	})

	require.Len(t, got, 2)
	assert.Equal(t, "p3", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
}

func TestListProductsHandler_DefaultSortIsPopular(t *testing.T) {
	h := NewListProductsHandler(testRepo())

	got := h.Handle(ListProductsQuery{})
	require.Len(t, got, 3)
	assert.Equal(t, "p3", got[0].ID, "bestseller partitions first")
}

func TestListProductsHandler_EmptyResultIsNotAnError(t *testing.T) {
	h := NewListProductsHandler(testRepo())

	got := h.Handle(ListProductsQuery{
		Criteria: domain.FilterCriteria{Category: "menswear"},
	})
	assert.Empty(t, got)
}

func TestGetProductHandler(t *testing.T) {
	h := NewGetProductHandler(testRepo())

	p, err := h.Handle(GetProductQuery{ID: "p2"})
	require.NoError(t, err)
	assert.Equal(t, "p2", p.ID)

	_, err = h.Handle(GetProductQuery{ID: "missing"})
	assert.Error(t, err)

	_, err = h.Handle(GetProductQuery{})
	assert.Error(t, err)
}

func TestGetStatsHandler(t *testing.T) {
	h := NewGetStatsHandler(testRepo())

	stats := h.Handle(GetStatsQuery{})
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 1, stats.NewArrivals)
	assert.Equal(t, 1, stats.Bestsellers)
	assert.InDelta(t, (189.0+329.0+89.0)/3.0, stats.AveragePrice, 1e-9)
}
