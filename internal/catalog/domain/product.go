package domain

import "strings"

// Color is a named swatch on a product variant.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Product represents one catalog entry. Products are loaded once at startup
// from the static catalog and never mutated afterwards.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Occasion      []string `json:"occasion"`
	Sizes         []string `json:"sizes"`
	Colors        []Color  `json:"colors"`
	Description   string   `json:"description"`
	Fabric        string   `json:"fabric"`
	Fit           string   `json:"fit"`
	ModelInfo     string   `json:"model_info"`
	IsNew         bool     `json:"is_new,omitempty"`
	IsTrending    bool     `json:"is_trending,omitempty"`
	IsBestseller  bool     `json:"is_bestseller,omitempty"`
	LowStock      bool     `json:"low_stock,omitempty"`
	Stock         int      `json:"stock"`
}

// HasSize reports whether the product declares the given size label.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the product declares a color variant with the
// given name.
func (p *Product) HasColor(name string) bool {
	for _, c := range p.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

// IsOnSale reports whether the product carries a markdown.
func (p *Product) IsOnSale() bool {
	return p.OriginalPrice > p.Price
}

// Slugify normalizes a category label to its URL slug: lower-case with
// whitespace runs replaced by hyphens.
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}

// CatalogRepository defines the contract for catalog data access.
type CatalogRepository interface {
	FindAll() []Product
	FindByID(id string) (*Product, bool)
	Count() int
	CountLowStock() int
	Categories() []Category
	Collections() []Collection
	Occasions() []Occasion
}

// Category is an auxiliary catalog list entry used for navigation.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// Collection is a curated grouping shown on the home page.
type Collection struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Occasion tags products for occasion-based browsing.
type Occasion struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
