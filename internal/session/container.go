// Package session owns the per-visitor storefront state: cart, wishlist,
// authenticated-user slot and transient UI visibility flags. The Container
// is the single writer of that state; everything else reads through its
// getters or mutates through its methods.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	catalog "github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/session/domain"
	"github.com/bellarosa/storefront/pkg/logger"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// Container holds one session's state. It is constructor-injected rather
// than a package-level singleton so tests get fresh state and multiple
// sessions can coexist in one process.
//
// Every mutation writes a full versioned snapshot of the persisted subset
// (cart, wishlist, user) to the backing store under the container's key.
// A failed write is logged and otherwise ignored: from the caller's view
// mutations always succeed, and the in-memory state stays authoritative.
type Container struct {
	mu sync.RWMutex

	cart            []domain.CartItem
	wishlist        []domain.WishlistItem
	user            *domain.User
	isAuthenticated bool

	isCartOpen      bool
	isAuthModalOpen bool
	authModalMode   domain.AuthModalMode

	store domain.SnapshotStore
	key   string
}

// NewContainer creates a container bound to the given snapshot key and
// rehydrates the persisted subset from the store. Absent, malformed or
// version-mismatched snapshots seed default empty state. UI flags always
// start closed with the auth modal in login mode, whatever was persisted.
func NewContainer(ctx context.Context, store domain.SnapshotStore, key string) *Container {
	c := &Container{
		store:         store,
		key:           key,
		authModalMode: domain.AuthModalLogin,
	}

	snap, err := store.Read(ctx, key)
	switch {
	case err == nil && snap.Version == domain.SnapshotVersion:
		c.cart = snap.Cart
		c.wishlist = snap.Wishlist
		c.user = snap.User
		c.isAuthenticated = snap.IsAuthenticated
	case err == nil:
		logger.Warn(ctx).
			Str("key", key).
			Int("stored_version", snap.Version).
			Int("expected_version", domain.SnapshotVersion).
			Msg("Discarding snapshot with mismatched version")
	case !errors.Is(err, domain.ErrNoSnapshot):
		// Malformed content or an unavailable store both rehydrate as a
		// fresh session.
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to rehydrate session, starting fresh")
	}

	return c
}

// persist writes the current persisted subset. Callers must hold c.mu.
func (c *Container) persist(ctx context.Context) {
	snap := &domain.Snapshot{
		Version:         domain.SnapshotVersion,
		Cart:            append([]domain.CartItem(nil), c.cart...),
		Wishlist:        append([]domain.WishlistItem(nil), c.wishlist...),
		User:            c.user,
		IsAuthenticated: c.isAuthenticated,
	}
	if err := c.store.Write(ctx, c.key, snap); err != nil {
		logger.Error(ctx).Err(err).Str("key", c.key).Msg("Failed to persist session snapshot")
	}
}

// AddToCart merges the item into the cart: a line with the same
// (productID, size, color) gains quantity, otherwise a new line is appended.
// The selection must be one the product declares and quantity must be
// positive.
func (c *Container) AddToCart(ctx context.Context, product *catalog.Product, size, color string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if !product.HasSize(size) || !product.HasColor(color) {
		return domain.ErrInvalidSelection
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if c.cart[i].Matches(product.ID, size, color) {
			c.cart[i].Quantity += quantity
			c.persist(ctx)
			return nil
		}
	}

	c.cart = append(c.cart, domain.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Size:        size,
		Color:       color,
		Quantity:    quantity,
	})
	c.persist(ctx)
	return nil
}

// RemoveFromCart deletes the matching line. Removing an absent line is a
// silent no-op.
func (c *Container) RemoveFromCart(ctx context.Context, productID, size, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if c.cart[i].Matches(productID, size, color) {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
			break
		}
	}
	c.persist(ctx)
}

// UpdateCartQuantity sets the matching line's quantity. A quantity of zero
// or below removes the line, so no zero-quantity record can exist. Updating
// an absent line is a no-op.
func (c *Container) UpdateCartQuantity(ctx context.Context, productID, size, color string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if !c.cart[i].Matches(productID, size, color) {
			continue
		}
		if quantity <= 0 {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
		} else {
			c.cart[i].Quantity = quantity
		}
		break
	}
	c.persist(ctx)
}

// ClearCart empties the cart unconditionally.
func (c *Container) ClearCart(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cart = nil
	c.persist(ctx)
}

// Cart returns a copy of the current cart lines.
func (c *Container) Cart() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]domain.CartItem(nil), c.cart...)
}

// CartTotal sums price × quantity over all lines. Accumulation runs in
// decimal so float unit prices cannot drift across many lines.
func (c *Container) CartTotal() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for i := range c.cart {
		line := decimal.NewFromFloat(c.cart[i].Price).
			Mul(decimal.NewFromInt(int64(c.cart[i].Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}

// CartCount sums quantities over all lines.
func (c *Container) CartCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for i := range c.cart {
		count += c.cart[i].Quantity
	}
	return count
}

// AddToWishlist records the product at the current time. Adding a product
// already on the wishlist is a no-op, keeping entries unique per product.
func (c *Container) AddToWishlist(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.wishlist {
		if c.wishlist[i].ProductID == productID {
			return
		}
	}
	c.wishlist = append(c.wishlist, domain.WishlistItem{
		ProductID: productID,
		AddedAt:   timeNow(),
	})
	c.persist(ctx)
}

// RemoveFromWishlist drops the product. Removing an absent product is a
// silent no-op.
func (c *Container) RemoveFromWishlist(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.wishlist {
		if c.wishlist[i].ProductID == productID {
			c.wishlist = append(c.wishlist[:i], c.wishlist[i+1:]...)
			break
		}
	}
	c.persist(ctx)
}

// IsInWishlist reports wishlist membership.
func (c *Container) IsInWishlist(productID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.wishlist {
		if c.wishlist[i].ProductID == productID {
			return true
		}
	}
	return false
}

// Wishlist returns a copy of the wishlist entries in added order.
func (c *Container) Wishlist() []domain.WishlistItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]domain.WishlistItem(nil), c.wishlist...)
}

// Login replaces the user slot unconditionally. No credential verification
// happens here; the storefront auth flow is demo-only.
func (c *Container) Login(ctx context.Context, user *domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = user
	c.isAuthenticated = true
	c.persist(ctx)
}

// Logout clears the user slot.
func (c *Container) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = nil
	c.isAuthenticated = false
	c.persist(ctx)
}

// User returns the current user, or nil when anonymous.
func (c *Container) User() *domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// IsAuthenticated reports whether a user occupies the slot.
func (c *Container) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.isAuthenticated
}

// SetCartOpen sets the cart drawer flag. UI flags are transient and never
// persisted.
func (c *Container) SetCartOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isCartOpen = open
}

// SetAuthModalOpen sets the auth modal flag.
func (c *Container) SetAuthModalOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isAuthModalOpen = open
}

// SetAuthModalMode switches the auth modal between login and signup.
func (c *Container) SetAuthModalMode(mode domain.AuthModalMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authModalMode = mode
}

// UIState returns the transient visibility flags.
func (c *Container) UIState() (cartOpen, authModalOpen bool, mode domain.AuthModalMode) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.isCartOpen, c.isAuthModalOpen, c.authModalMode
}
