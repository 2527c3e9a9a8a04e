package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToWishlistHandler_SavesKnownProduct(t *testing.T) {
	sessions, repo := testFixtures()
	h := NewAddToWishlistHandler(sessions, repo)
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, AddToWishlistCommand{SessionID: "s1", ProductID: "p1"}))
	assert.True(t, sessions.Get(ctx, "s1").IsInWishlist("p1"))
}

func TestAddToWishlistHandler_RejectsUnknownProduct(t *testing.T) {
	sessions, repo := testFixtures()
	h := NewAddToWishlistHandler(sessions, repo)

	err := h.Handle(context.Background(), AddToWishlistCommand{SessionID: "s1", ProductID: "ghost"})
	assert.Error(t, err)
}

func TestRemoveFromWishlistHandler_AbsentProductSucceeds(t *testing.T) {
	sessions, _ := testFixtures()
	h := NewRemoveFromWishlistHandler(sessions)

	err := h.Handle(context.Background(), RemoveFromWishlistCommand{SessionID: "s1", ProductID: "p1"})
	assert.NoError(t, err)
}

func TestUpdateQuantityHandler_ZeroRemoves(t *testing.T) {
	sessions, repo := testFixtures()
	ctx := context.Background()

	add := NewAddToCartHandler(sessions, repo)
	require.NoError(t, add.Handle(ctx, AddToCartCommand{
		SessionID: "s1", ProductID: "p1", Size: "M", Color: "Rose", Quantity: 2,
	}))

	upd := NewUpdateQuantityHandler(sessions)
	require.NoError(t, upd.Handle(ctx, UpdateQuantityCommand{
		SessionID: "s1", ProductID: "p1", Size: "M", Color: "Rose", Quantity: 0,
	}))

	assert.Empty(t, sessions.Get(ctx, "s1").Cart())
}

func TestClearCartHandler(t *testing.T) {
	sessions, repo := testFixtures()
	ctx := context.Background()

	add := NewAddToCartHandler(sessions, repo)
	require.NoError(t, add.Handle(ctx, AddToCartCommand{
		SessionID: "s1", ProductID: "p1", Size: "S", Color: "Rose", Quantity: 1,
	}))

	require.NoError(t, NewClearCartHandler(sessions).Handle(ctx, ClearCartCommand{SessionID: "s1"}))
	assert.Empty(t, sessions.Get(ctx, "s1").Cart())
}
