package command

import (
	"context"
	"fmt"

	catalog "github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/session"
)

// AddToCartCommand represents the command to add a product to the cart
type AddToCartCommand struct {
	SessionID string
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

// AddToCartHandler handles the add to cart command
type AddToCartHandler struct {
	sessions *session.Manager
	catalog  catalog.CatalogRepository
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(sessions *session.Manager, repo catalog.CatalogRepository) *AddToCartHandler {
	return &AddToCartHandler{sessions: sessions, catalog: repo}
}

// Handle executes the add to cart command. The product must exist in the
// catalog and the selection must be one it declares.
func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}

	product, ok := h.catalog.FindByID(cmd.ProductID)
	if !ok {
		return fmt.Errorf("product %s not found", cmd.ProductID)
	}

	container := h.sessions.Get(ctx, cmd.SessionID)
	return container.AddToCart(ctx, product, cmd.Size, cmd.Color, cmd.Quantity)
}
