// Package data holds the static Bella Rosa catalog. It is the storefront's
// only product source: the in-memory repository seeds from these slices at
// startup and the running service never writes back.
package data

import "github.com/bellarosa/storefront/internal/catalog/domain"

// Products is the full catalog in display order. Listing endpoints fall back
// to this order as the tie-break for products without featured flags.
var Products = []domain.Product{
	{
		ID:            "p1",
		Name:          "Rosewater Silk Midi Dress",
		Price:         189,
		OriginalPrice: 240,
		Images:        []string{"/images/products/rosewater-midi-1.jpg", "/images/products/rosewater-midi-2.jpg"},
		Category:      "Dresses",
		Occasion:      []string{"date-night", "wedding-guest"},
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []domain.Color{{Name: "Rose", Hex: "#E8B4B8"}, {Name: "White", Hex: "#FFFFFF"}},
		Description:   "A fluid silk midi with a bias cut that moves with you.",
		Fabric:        "100% mulberry silk",
		Fit:           "True to size, bias cut",
		ModelInfo:     "Model is 5'9\" and wears size S",
		IsBestseller:  true,
		Stock:         24,
	},
	{
		ID:          "p2",
		Name:        "Midnight Velvet Gown",
		Price:       329,
		Images:      []string{"/images/products/midnight-gown-1.jpg"},
		Category:    "Evening Wear",
		Occasion:    []string{"party", "gala"},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []domain.Color{{Name: "Black", Hex: "#1a1a2e"}, {Name: "Purple", Hex: "#8B5CF6"}},
		Description: "Floor-length crushed velvet with a sweeping open back.",
		Fabric:      "92% polyester, 8% elastane velvet",
		Fit:         "Fitted through the bodice",
		ModelInfo:   "Model is 5'10\" and wears size M",
		IsTrending:  true,
		Stock:       12,
	},
	{
		ID:          "p3",
		Name:        "Ivory Lace Bridal Slip",
		Price:       289,
		Images:      []string{"/images/products/ivory-slip-1.jpg", "/images/products/ivory-slip-2.jpg"},
		Category:    "Bridal",
		Occasion:    []string{"bridal"},
		Sizes:       []string{"XS", "S", "M"},
		Colors:      []domain.Color{{Name: "White", Hex: "#FFFFFF"}},
		Description: "Chantilly lace over a satin slip, made for intimate ceremonies.",
		Fabric:      "Chantilly lace, satin lining",
		Fit:         "Slim, lightly stretchy",
		ModelInfo:   "Model is 5'8\" and wears size XS",
		IsNew:       true,
		LowStock:    true,
		Stock:       3,
	},
	{
		ID:          "p4",
		Name:        "Garden Party Wrap Dress",
		Price:       129,
		Images:      []string{"/images/products/garden-wrap-1.jpg"},
		Category:    "Dresses",
		Occasion:    []string{"brunch", "vacation"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []domain.Color{{Name: "Rose", Hex: "#E8B4B8"}, {Name: "Blue", Hex: "#4A90A4"}},
		Description: "A breezy floral wrap with fluttered sleeves.",
		Fabric:      "Viscose crepe",
		Fit:         "Relaxed, adjustable waist tie",
		ModelInfo:   "Model is 5'7\" and wears size S",
		IsNew:       true,
		IsTrending:  true,
		Stock:       40,
	},
	{
		ID:            "p5",
		Name:          "Sculpted Satin Corset Top",
		Price:         89,
		OriginalPrice: 110,
		Images:        []string{"/images/products/corset-top-1.jpg"},
		Category:      "Tops",
		Occasion:      []string{"party", "date-night"},
		Sizes:         []string{"XS", "S", "M", "L"},
		Colors:        []domain.Color{{Name: "Black", Hex: "#1a1a2e"}, {Name: "White", Hex: "#FFFFFF"}, {Name: "Rose", Hex: "#E8B4B8"}},
		Description:   "Structured satin corsetry with flexible boning.",
		Fabric:        "Duchess satin",
		Fit:           "Fitted, runs small",
		ModelInfo:     "Model is 5'9\" and wears size S",
		IsBestseller:  true,
		Stock:         31,
	},
	{
		ID:          "p6",
		Name:        "Amalfi Linen Two-Piece",
		Price:       159,
		Images:      []string{"/images/products/amalfi-set-1.jpg", "/images/products/amalfi-set-2.jpg"},
		Category:    "Sets",
		Occasion:    []string{"vacation", "brunch"},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []domain.Color{{Name: "White", Hex: "#FFFFFF"}, {Name: "Blue", Hex: "#4A90A4"}},
		Description: "Crop top and wide-leg trouser in washed linen.",
		Fabric:      "100% European linen",
		Fit:         "Relaxed",
		ModelInfo:   "Model is 5'8\" and wears size M",
		IsNew:       true,
		Stock:       18,
	},
	{
		ID:          "p7",
		Name:        "Celeste Beaded Evening Gown",
		Price:       420,
		Images:      []string{"/images/products/celeste-gown-1.jpg"},
		Category:    "Evening Wear",
		Occasion:    []string{"gala", "party"},
		Sizes:       []string{"S", "M"},
		Colors:      []domain.Color{{Name: "Purple", Hex: "#8B5CF6"}},
		Description: "Hand-beaded bodice over a cascading chiffon skirt.",
		Fabric:      "Silk chiffon, glass beading",
		Fit:         "Fitted bodice, flowing skirt",
		ModelInfo:   "Model is 5'10\" and wears size S",
		LowStock:    true,
		Stock:       2,
	},
	{
		ID:            "p8",
		Name:          "Everyday Ribbed Knit Dress",
		Price:         79,
		OriginalPrice: 95,
		Images:        []string{"/images/products/ribbed-knit-1.jpg"},
		Category:      "Dresses",
		Occasion:      []string{"office", "brunch"},
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []domain.Color{{Name: "Black", Hex: "#1a1a2e"}, {Name: "Rose", Hex: "#E8B4B8"}},
		Description:   "A soft ribbed column dress you can dress up or down.",
		Fabric:        "Cotton-modal rib",
		Fit:           "Bodycon, very stretchy",
		ModelInfo:     "Model is 5'6\" and wears size S",
		IsBestseller:  true,
		IsTrending:    true,
		Stock:         52,
	},
	{
		ID:          "p9",
		Name:        "Pearl Trim Cardigan",
		Price:       99,
		Images:      []string{"/images/products/pearl-cardigan-1.jpg"},
		Category:    "Knitwear",
		Occasion:    []string{"office"},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []domain.Color{{Name: "White", Hex: "#FFFFFF"}, {Name: "Rose", Hex: "#E8B4B8"}},
		Description: "A fine-gauge cardigan finished with pearl buttons.",
		Fabric:      "Merino blend",
		Fit:         "True to size",
		ModelInfo:   "Model is 5'7\" and wears size M",
		Stock:       27,
	},
	{
		ID:          "p10",
		Name:        "Aurelia Tulle Bridal Gown",
		Price:       680,
		Images:      []string{"/images/products/aurelia-gown-1.jpg", "/images/products/aurelia-gown-2.jpg"},
		Category:    "Bridal",
		Occasion:    []string{"bridal"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []domain.Color{{Name: "White", Hex: "#FFFFFF"}},
		Description: "Layered tulle with a corseted bodice and cathedral train.",
		Fabric:      "Silk tulle, duchess satin bodice",
		Fit:         "Made-to-measure bodice",
		ModelInfo:   "Model is 5'9\" and wears size S",
		IsNew:       true,
		Stock:       5,
	},
}

// Categories drive the shop sidebar and navigation.
var Categories = []domain.Category{
	{Name: "Dresses", Slug: "dresses", Image: "/images/categories/dresses.jpg"},
	{Name: "Evening Wear", Slug: "evening-wear", Image: "/images/categories/evening.jpg"},
	{Name: "Bridal", Slug: "bridal", Image: "/images/categories/bridal.jpg"},
	{Name: "Tops", Slug: "tops", Image: "/images/categories/tops.jpg"},
	{Name: "Sets", Slug: "sets", Image: "/images/categories/sets.jpg"},
	{Name: "Knitwear", Slug: "knitwear", Image: "/images/categories/knitwear.jpg"},
}

// Collections are the curated edits featured on the home page.
var Collections = []domain.Collection{
	{Name: "The Bridal Edit", Slug: "bridal-edit", Description: "Gowns and slips for every ceremony", Image: "/images/collections/bridal.jpg"},
	{Name: "Riviera Summer", Slug: "riviera-summer", Description: "Linen and light silk for warm evenings", Image: "/images/collections/riviera.jpg"},
	{Name: "After Dark", Slug: "after-dark", Description: "Velvet, beading and open backs", Image: "/images/collections/after-dark.jpg"},
}

// Occasions power the shop-by-occasion row.
var Occasions = []domain.Occasion{
	{Name: "Wedding Guest", Slug: "wedding-guest"},
	{Name: "Date Night", Slug: "date-night"},
	{Name: "Office", Slug: "office"},
	{Name: "Vacation", Slug: "vacation"},
	{Name: "Party", Slug: "party"},
	{Name: "Bridal", Slug: "bridal"},
}
