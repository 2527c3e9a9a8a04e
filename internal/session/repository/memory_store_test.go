package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellarosa/storefront/internal/session/domain"
)

func TestMemoryStore_ReadMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Read(context.Background(), "bella-rosa-store:none")
	assert.ErrorIs(t, err, domain.ErrNoSnapshot)
}

func TestMemoryStore_WriteReadRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := &domain.Snapshot{
		Version: domain.SnapshotVersion,
		Cart: []domain.CartItem{
			{ProductID: "p1", ProductName: "Silk Midi", Price: 189, Size: "M", Color: "Rose", Quantity: 2},
		},
		Wishlist:        []domain.WishlistItem{{ProductID: "p3"}},
		User:            &domain.User{ID: "u1", Email: "rosa@example.com", Name: "Rosa"},
		IsAuthenticated: true,
	}

	require.NoError(t, store.Write(ctx, "bella-rosa-store:s1", in))

	out, err := store.Read(ctx, "bella-rosa-store:s1")
	require.NoError(t, err)
	assert.Equal(t, in.Version, out.Version)
	assert.Equal(t, in.Cart, out.Cart)
	assert.Equal(t, in.Wishlist, out.Wishlist)
	assert.Equal(t, in.User, out.User)
	assert.True(t, out.IsAuthenticated)
}

func TestMemoryStore_LastWriterWins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "k", &domain.Snapshot{Version: 1, Cart: []domain.CartItem{{ProductID: "p1", Quantity: 1}}}))
	require.NoError(t, store.Write(ctx, "k", &domain.Snapshot{Version: 1}))

	out, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, out.Cart)
}

func TestMemoryStore_MalformedPayloadFailsRead(t *testing.T) {
	store := NewMemoryStore()
	store.WriteRaw("k", []byte("{broken"))

	_, err := store.Read(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSnapshot)
}
