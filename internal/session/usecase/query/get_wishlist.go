package query

import (
	"context"
	"fmt"

	"github.com/bellarosa/storefront/internal/session"
	"github.com/bellarosa/storefront/internal/session/domain"
)

// GetWishlistQuery represents the query to read the wishlist
type GetWishlistQuery struct {
	SessionID string
}

// GetWishlistHandler handles the wishlist read query
type GetWishlistHandler struct {
	sessions *session.Manager
}

// NewGetWishlistHandler creates a new get wishlist handler
func NewGetWishlistHandler(sessions *session.Manager) *GetWishlistHandler {
	return &GetWishlistHandler{sessions: sessions}
}

// Handle executes the wishlist query
func (h *GetWishlistHandler) Handle(ctx context.Context, q GetWishlistQuery) ([]domain.WishlistItem, error) {
	if q.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	return h.sessions.Get(ctx, q.SessionID).Wishlist(), nil
}

// IsInWishlistQuery represents the membership test query
type IsInWishlistQuery struct {
	SessionID string
	ProductID string
}

// IsInWishlistHandler handles the membership test
type IsInWishlistHandler struct {
	sessions *session.Manager
}

// NewIsInWishlistHandler creates a new membership test handler
func NewIsInWishlistHandler(sessions *session.Manager) *IsInWishlistHandler {
	return &IsInWishlistHandler{sessions: sessions}
}

// Handle executes the membership test
func (h *IsInWishlistHandler) Handle(ctx context.Context, q IsInWishlistQuery) (bool, error) {
	if q.SessionID == "" {
		return false, fmt.Errorf("session id is required")
	}

	return h.sessions.Get(ctx, q.SessionID).IsInWishlist(q.ProductID), nil
}
