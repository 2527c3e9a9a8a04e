package repository

import (
	"github.com/bellarosa/storefront/internal/catalog/domain"
)

// MemoryRepository serves the static catalog. Products are copied in once at
// construction and treated as immutable from then on, so reads need no
// locking.
type MemoryRepository struct {
	products    []domain.Product
	byID        map[string]*domain.Product
	categories  []domain.Category
	collections []domain.Collection
	occasions   []domain.Occasion
}

// NewMemoryRepository seeds a repository from the given catalog snapshot,
// preserving source order.
func NewMemoryRepository(
	products []domain.Product,
	categories []domain.Category,
	collections []domain.Collection,
	occasions []domain.Occasion,
) *MemoryRepository {
	owned := make([]domain.Product, len(products))
	copy(owned, products)

	byID := make(map[string]*domain.Product, len(owned))
	for i := range owned {
		byID[owned[i].ID] = &owned[i]
	}

	return &MemoryRepository{
		products:    owned,
		byID:        byID,
		categories:  categories,
		collections: collections,
		occasions:   occasions,
	}
}

// FindAll returns the full catalog in source order. Callers receive a fresh
// slice and may reorder it freely.
func (r *MemoryRepository) FindAll() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

// FindByID looks up a single product.
func (r *MemoryRepository) FindByID(id string) (*domain.Product, bool) {
	p, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// Count returns the catalog size.
func (r *MemoryRepository) Count() int {
	return len(r.products)
}

// CountLowStock returns how many products are flagged low stock.
func (r *MemoryRepository) CountLowStock() int {
	n := 0
	for i := range r.products {
		if r.products[i].LowStock {
			n++
		}
	}
	return n
}

// Categories returns the navigation category list.
func (r *MemoryRepository) Categories() []domain.Category {
	return r.categories
}

// Collections returns the curated collection list.
func (r *MemoryRepository) Collections() []domain.Collection {
	return r.collections
}

// Occasions returns the shop-by-occasion list.
func (r *MemoryRepository) Occasions() []domain.Occasion {
	return r.occasions
}
