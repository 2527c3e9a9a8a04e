package domain

import (
	"context"
	"errors"
	"time"
)

// SnapshotVersion tags the persisted snapshot shape. A stored snapshot with
// a different version rehydrates to defaults instead of being reinterpreted.
const SnapshotVersion = 1

// Namespace prefixes every snapshot key in the store.
const Namespace = "bella-rosa-store"

// AuthModalMode selects which pane of the auth modal is shown.
type AuthModalMode string

const (
	AuthModalLogin  AuthModalMode = "login"
	AuthModalSignup AuthModalMode = "signup"
)

var (
	// ErrInvalidSelection means the requested size or color is not one the
	// product declares.
	ErrInvalidSelection = errors.New("size or color not available for this product")

	// ErrInvalidQuantity means a non-positive quantity was passed to an add.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrNoSnapshot means the store holds no snapshot for the key.
	ErrNoSnapshot = errors.New("no snapshot for key")
)

// CartItem is one line in the cart. Lines are unique by
// (ProductID, Size, Color); adding a matching triple merges quantities.
type CartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Quantity    int     `json:"quantity"`
}

// Matches reports whether the line carries the given identity triple.
func (i *CartItem) Matches(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// WishlistItem is a saved product reference. At most one entry per product.
type WishlistItem struct {
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// User is the authenticated-user slot. The storefront is demo-mode: no
// credentials back this value.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Snapshot is the persisted subset of session state. UI visibility flags are
// deliberately absent: they reset on every fresh session.
type Snapshot struct {
	Version         int            `json:"version"`
	Cart            []CartItem     `json:"cart"`
	Wishlist        []WishlistItem `json:"wishlist"`
	User            *User          `json:"user"`
	IsAuthenticated bool           `json:"is_authenticated"`
}

// SnapshotStore defines the contract for the durable key/value slot backing
// session state. Read returns ErrNoSnapshot when the key holds nothing.
type SnapshotStore interface {
	Write(ctx context.Context, key string, snapshot *Snapshot) error
	Read(ctx context.Context, key string) (*Snapshot, error)
}
