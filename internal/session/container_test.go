package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/session/domain"
	"github.com/bellarosa/storefront/internal/session/repository"
	"github.com/bellarosa/storefront/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func testProduct() *catalog.Product {
	return &catalog.Product{
		ID:    "p1",
		Name:  "Rosewater Silk Midi Dress",
		Price: 100,
		Sizes: []string{"S", "M", "L"},
		Colors: []catalog.Color{
			{Name: "Rose", Hex: "#E8B4B8"},
			{Name: "White", Hex: "#FFFFFF"},
		},
	}
}

func secondProduct() *catalog.Product {
	return &catalog.Product{
		ID:    "p2",
		Name:  "Sculpted Satin Corset Top",
		Price: 50,
		Sizes: []string{"S", "M"},
		Colors: []catalog.Color{
			{Name: "Black", Hex: "#1a1a2e"},
		},
	}
}

func newTestContainer(t *testing.T) (*Container, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewContainer(context.Background(), store, Key("test-session")), store
}

func TestContainer_AddToCart_MergesMatchingTriple(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()
	p := testProduct()

	require.NoError(t, c.AddToCart(ctx, p, "M", "Rose", 1))
	require.NoError(t, c.AddToCart(ctx, p, "M", "Rose", 2))

	cart := c.Cart()
	require.Len(t, cart, 1, "matching triples must merge into one line")
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestContainer_AddToCart_DistinctTriplesStaySeparate(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()
	p := testProduct()

	require.NoError(t, c.AddToCart(ctx, p, "M", "Rose", 1))
	require.NoError(t, c.AddToCart(ctx, p, "L", "Rose", 1))
	require.NoError(t, c.AddToCart(ctx, p, "M", "White", 1))

	cart := c.Cart()
	require.Len(t, cart, 3)

	// No two lines share the identity triple
	seen := make(map[[3]string]bool)
	for _, item := range cart {
		key := [3]string{item.ProductID, item.Size, item.Color}
		assert.False(t, seen[key], "duplicate triple %v", key)
		seen[key] = true
	}
}

func TestContainer_AddToCart_RejectsInvalidSelection(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()
	p := testProduct()

	err := c.AddToCart(ctx, p, "XXL", "Rose", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	err = c.AddToCart(ctx, p, "M", "Chartreuse", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	assert.Empty(t, c.Cart())
}

func TestContainer_AddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	err := c.AddToCart(ctx, testProduct(), "M", "Rose", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	err = c.AddToCart(ctx, testProduct(), "M", "Rose", -2)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestContainer_CartTotalAndCount(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	// 100 x 2 + 50 x 1
	require.NoError(t, c.AddToCart(ctx, testProduct(), "M", "Rose", 2))
	require.NoError(t, c.AddToCart(ctx, secondProduct(), "S", "Black", 1))

	assert.Equal(t, 250.0, c.CartTotal())
	assert.Equal(t, 3, c.CartCount())
}

func TestContainer_CartTotal_RecomputedAfterMutation(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, testProduct(), "M", "Rose", 2))
	c.UpdateCartQuantity(ctx, "p1", "M", "Rose", 5)
	assert.Equal(t, 500.0, c.CartTotal())
	assert.Equal(t, 5, c.CartCount())

	c.RemoveFromCart(ctx, "p1", "M", "Rose")
	assert.Equal(t, 0.0, c.CartTotal())
	assert.Equal(t, 0, c.CartCount())
}

func TestContainer_RemoveFromCart_AbsentLineIsNoOp(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, testProduct(), "M", "Rose", 1))
	c.RemoveFromCart(ctx, "p1", "L", "Rose")
	c.RemoveFromCart(ctx, "nope", "M", "Rose")

	assert.Len(t, c.Cart(), 1)
}

func TestContainer_UpdateCartQuantity_ZeroRemovesLine(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, testProduct(), "M", "Rose", 3))

	c.UpdateCartQuantity(ctx, "p1", "M", "Rose", 0)
	assert.Empty(t, c.Cart(), "zero quantity must remove the line, not store it")

	require.NoError(t, c.AddToCart(ctx, testProduct(), "M", "Rose", 3))
	c.UpdateCartQuantity(ctx, "p1", "M", "Rose", -1)
	assert.Empty(t, c.Cart())
}

func TestContainer_ClearCart(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, testProduct(), "M", "Rose", 1))
	require.NoError(t, c.AddToCart(ctx, secondProduct(), "S", "Black", 4))

	c.ClearCart(ctx)
	assert.Empty(t, c.Cart())
	assert.Equal(t, 0, c.CartCount())
}

func TestContainer_Wishlist_MembershipLifecycle(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	assert.False(t, c.IsInWishlist("p1"))

	c.AddToWishlist(ctx, "p1")
	assert.True(t, c.IsInWishlist("p1"))

	c.RemoveFromWishlist(ctx, "p1")
	assert.False(t, c.IsInWishlist("p1"))
}

func TestContainer_Wishlist_AddIsIdempotent(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	c.AddToWishlist(ctx, "p1")
	c.AddToWishlist(ctx, "p1")
	c.AddToWishlist(ctx, "p1")

	assert.Len(t, c.Wishlist(), 1)
}

func TestContainer_Wishlist_RemoveAbsentIsNoOp(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	c.AddToWishlist(ctx, "p1")
	c.RemoveFromWishlist(ctx, "p2")

	entries := c.Wishlist()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)
}

func TestContainer_Wishlist_RecordsAddedAt(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = orig }()

	c, _ := newTestContainer(t)
	c.AddToWishlist(context.Background(), "p1")

	entries := c.Wishlist()
	require.Len(t, entries, 1)
	assert.Equal(t, fixed, entries[0].AddedAt)
}

func TestContainer_LoginLogout(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.User())

	c.Login(ctx, &domain.User{ID: "u1", Email: "rosa@example.com", Name: "Rosa"})
	assert.True(t, c.IsAuthenticated())
	require.NotNil(t, c.User())
	assert.Equal(t, "rosa@example.com", c.User().Email)

	// A second login replaces the slot unconditionally
	c.Login(ctx, &domain.User{ID: "u2", Email: "bella@example.com", Name: "Bella"})
	assert.Equal(t, "u2", c.User().ID)

	c.Logout(ctx)
	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.User())
}

func TestContainer_UIFlags(t *testing.T) {
	c, _ := newTestContainer(t)

	cartOpen, authOpen, mode := c.UIState()
	assert.False(t, cartOpen)
	assert.False(t, authOpen)
	assert.Equal(t, domain.AuthModalLogin, mode)

	c.SetCartOpen(true)
	c.SetAuthModalOpen(true)
	c.SetAuthModalMode(domain.AuthModalSignup)

	cartOpen, authOpen, mode = c.UIState()
	assert.True(t, cartOpen)
	assert.True(t, authOpen)
	assert.Equal(t, domain.AuthModalSignup, mode)
}

func TestContainer_RoundTripPersistence(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	key := Key("round-trip")

	first := NewContainer(ctx, store, key)
	require.NoError(t, first.AddToCart(ctx, testProduct(), "M", "Rose", 2))
	first.AddToWishlist(ctx, "p2")
	first.Login(ctx, &domain.User{ID: "u1", Email: "rosa@example.com", Name: "Rosa"})
	first.SetCartOpen(true)
	first.SetAuthModalOpen(true)
	first.SetAuthModalMode(domain.AuthModalSignup)

	// A fresh container over the same key sees the persisted subset
	second := NewContainer(ctx, store, key)

	cart := second.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ProductID)
	assert.Equal(t, 2, cart[0].Quantity)

	assert.True(t, second.IsInWishlist("p2"))
	assert.True(t, second.IsAuthenticated())
	require.NotNil(t, second.User())
	assert.Equal(t, "u1", second.User().ID)

	// UI flags reset regardless of what the first container showed
	cartOpen, authOpen, mode := second.UIState()
	assert.False(t, cartOpen)
	assert.False(t, authOpen)
	assert.Equal(t, domain.AuthModalLogin, mode)
}

func TestContainer_RehydrateMalformedSnapshotFallsBack(t *testing.T) {
	store := repository.NewMemoryStore()
	key := Key("mangled")
	store.WriteRaw(key, []byte(`{"version": not json`))

	c := NewContainer(context.Background(), store, key)

	assert.Empty(t, c.Cart())
	assert.Empty(t, c.Wishlist())
	assert.False(t, c.IsAuthenticated())
}

func TestContainer_RehydrateVersionMismatchFallsBack(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	key := Key("old-shape")

	require.NoError(t, store.Write(ctx, key, &domain.Snapshot{
		Version: domain.SnapshotVersion + 1,
		Cart:    []domain.CartItem{{ProductID: "p1", Quantity: 2}},
	}))

	c := NewContainer(ctx, store, key)
	assert.Empty(t, c.Cart(), "mismatched snapshot version must seed defaults")
}

func TestContainer_PersistsAfterEveryMutation(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	key := Key("write-through")

	c := NewContainer(ctx, store, key)
	require.NoError(t, c.AddToCart(ctx, testProduct(), "M", "Rose", 1))

	snap, err := store.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.SnapshotVersion, snap.Version)
	require.Len(t, snap.Cart, 1)
	assert.Equal(t, 1, snap.Cart[0].Quantity)

	c.ClearCart(ctx)
	snap, err = store.Read(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, snap.Cart)
}
