package query

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/session"
	"github.com/bellarosa/storefront/internal/session/domain"
	"github.com/bellarosa/storefront/internal/session/repository"
	"github.com/bellarosa/storefront/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func seededSessions(t *testing.T) *session.Manager {
	t.Helper()
	sessions := session.NewManager(repository.NewMemoryStore())
	ctx := context.Background()

	p := &catalog.Product{
		ID: "p1", Name: "Silk Midi", Price: 100,
		Sizes:  []string{"M"},
		Colors: []catalog.Color{{Name: "Rose"}},
	}
	require.NoError(t, sessions.Get(ctx, "s1").AddToCart(ctx, p, "M", "Rose", 2))
	sessions.Get(ctx, "s1").AddToWishlist(ctx, "p2")
	return sessions
}

func TestGetCartHandler(t *testing.T) {
	h := NewGetCartHandler(seededSessions(t))

	view, err := h.Handle(context.Background(), GetCartQuery{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 200.0, view.Total)
	assert.Equal(t, 2, view.Count)
}

func TestGetCartHandler_RequiresSessionID(t *testing.T) {
	h := NewGetCartHandler(seededSessions(t))

	_, err := h.Handle(context.Background(), GetCartQuery{})
	assert.Error(t, err)
}

func TestGetWishlistHandler(t *testing.T) {
	sessions := seededSessions(t)

	items, err := NewGetWishlistHandler(sessions).Handle(context.Background(), GetWishlistQuery{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	saved, err := NewIsInWishlistHandler(sessions).Handle(context.Background(), IsInWishlistQuery{SessionID: "s1", ProductID: "p2"})
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestGetSessionHandler_FreshSessionDefaults(t *testing.T) {
	h := NewGetSessionHandler(seededSessions(t))

	view, err := h.Handle(context.Background(), GetSessionQuery{SessionID: "brand-new"})
	require.NoError(t, err)
	assert.Nil(t, view.User)
	assert.False(t, view.IsAuthenticated)
	assert.Equal(t, 0, view.CartCount)
	assert.False(t, view.IsCartOpen)
	assert.False(t, view.IsAuthModalOpen)
	assert.Equal(t, domain.AuthModalLogin, view.AuthModalMode)
}
