package domain

import "sort"

// SortKey selects the ordering applied to a product listing.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// PriceRange bounds the current price, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterCriteria describes a catalog filter. Zero-valued fields impose no
// constraint; provided fields combine with logical AND.
type FilterCriteria struct {
	Category   string      `json:"category"` // normalized slug
	Sizes      []string    `json:"sizes"`
	Colors     []string    `json:"colors"`
	PriceRange *PriceRange `json:"price_range"`
}

// Filter returns the products matching criteria, preserving source order.
// The input is never mutated. An unknown category simply matches nothing.
func Filter(products []Product, criteria FilterCriteria) []Product {
	filtered := make([]Product, 0, len(products))

	for _, p := range products {
		if criteria.Category != "" && Slugify(p.Category) != criteria.Category {
			continue
		}
		if len(criteria.Sizes) > 0 && !hasAnySize(&p, criteria.Sizes) {
			continue
		}
		if len(criteria.Colors) > 0 && !hasAnyColor(&p, criteria.Colors) {
			continue
		}
		if r := criteria.PriceRange; r != nil && (p.Price < r.Min || p.Price > r.Max) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// Sort returns a new slice ordered by key. Price sorts are stable numeric
// sorts on the current price. "newest" and "popular" are stable partitions:
// flagged products first, each group keeping its prior relative order.
func Sort(products []Product, key SortKey) []Product {
	switch key {
	case SortNewest:
		return stablePartition(products, func(p *Product) bool {
			return p.IsNew
		})
	case SortPriceLow:
		return stablePriceSort(products, true)
	case SortPriceHigh:
		return stablePriceSort(products, false)
	default:
		return stablePartition(products, func(p *Product) bool {
			return p.IsBestseller || p.IsTrending
		})
	}
}

func hasAnySize(p *Product, sizes []string) bool {
	for _, s := range sizes {
		if p.HasSize(s) {
			return true
		}
	}
	return false
}

func hasAnyColor(p *Product, colors []string) bool {
	for _, c := range colors {
		if p.HasColor(c) {
			return true
		}
	}
	return false
}

func stablePartition(products []Product, pred func(*Product) bool) []Product {
	out := make([]Product, 0, len(products))
	for i := range products {
		if pred(&products[i]) {
			out = append(out, products[i])
		}
	}
	for i := range products {
		if !pred(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}

func stablePriceSort(products []Product, ascending bool) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Price < out[j].Price
		}
		return out[i].Price > out[j].Price
	})
	return out
}
