package query

import (
	"github.com/bellarosa/storefront/internal/catalog/domain"
)

// CatalogStats summarizes the catalog for the admin dashboard.
type CatalogStats struct {
	TotalProducts int     `json:"total_products"`
	LowStock      int     `json:"low_stock"`
	NewArrivals   int     `json:"new_arrivals"`
	Trending      int     `json:"trending"`
	Bestsellers   int     `json:"bestsellers"`
	OnSale        int     `json:"on_sale"`
	AveragePrice  float64 `json:"average_price"`
}

// GetStatsQuery represents the query to compute catalog statistics
type GetStatsQuery struct{}

// GetStatsHandler handles the catalog stats query
type GetStatsHandler struct {
	repo domain.CatalogRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(repo domain.CatalogRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(GetStatsQuery) CatalogStats {
	products := h.repo.FindAll()

	stats := CatalogStats{
		TotalProducts: len(products),
		LowStock:      h.repo.CountLowStock(),
	}

	var priceSum float64
	for i := range products {
		p := &products[i]
		if p.IsNew {
			stats.NewArrivals++
		}
		if p.IsTrending {
			stats.Trending++
		}
		if p.IsBestseller {
			stats.Bestsellers++
		}
		if p.IsOnSale() {
			stats.OnSale++
		}
		priceSum += p.Price
	}
	if len(products) > 0 {
		stats.AveragePrice = priceSum / float64(len(products))
	}

	return stats
}
