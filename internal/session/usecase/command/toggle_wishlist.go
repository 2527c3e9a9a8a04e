package command

import (
	"context"
	"fmt"

	catalog "github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/session"
)

// AddToWishlistCommand represents the command to save a product
type AddToWishlistCommand struct {
	SessionID string
	ProductID string
}

// AddToWishlistHandler handles the add to wishlist command
type AddToWishlistHandler struct {
	sessions *session.Manager
	catalog  catalog.CatalogRepository
}

// NewAddToWishlistHandler creates a new add to wishlist handler
func NewAddToWishlistHandler(sessions *session.Manager, repo catalog.CatalogRepository) *AddToWishlistHandler {
	return &AddToWishlistHandler{sessions: sessions, catalog: repo}
}

// Handle executes the add. Re-adding a saved product is a no-op.
func (h *AddToWishlistHandler) Handle(ctx context.Context, cmd AddToWishlistCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if _, ok := h.catalog.FindByID(cmd.ProductID); !ok {
		return fmt.Errorf("product %s not found", cmd.ProductID)
	}

	h.sessions.Get(ctx, cmd.SessionID).AddToWishlist(ctx, cmd.ProductID)
	return nil
}

// RemoveFromWishlistCommand represents the command to unsave a product
type RemoveFromWishlistCommand struct {
	SessionID string
	ProductID string
}

// RemoveFromWishlistHandler handles the remove from wishlist command
type RemoveFromWishlistHandler struct {
	sessions *session.Manager
}

// NewRemoveFromWishlistHandler creates a new remove from wishlist handler
func NewRemoveFromWishlistHandler(sessions *session.Manager) *RemoveFromWishlistHandler {
	return &RemoveFromWishlistHandler{sessions: sessions}
}

// Handle executes the remove. Removing an absent product succeeds.
func (h *RemoveFromWishlistHandler) Handle(ctx context.Context, cmd RemoveFromWishlistCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}

	h.sessions.Get(ctx, cmd.SessionID).RemoveFromWishlist(ctx, cmd.ProductID)
	return nil
}
