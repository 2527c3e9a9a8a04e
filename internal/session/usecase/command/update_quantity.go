package command

import (
	"context"
	"fmt"

	"github.com/bellarosa/storefront/internal/session"
)

// UpdateQuantityCommand represents the command to set a cart line's quantity
type UpdateQuantityCommand struct {
	SessionID string
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

// UpdateQuantityHandler handles the quantity update command
type UpdateQuantityHandler struct {
	sessions *session.Manager
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(sessions *session.Manager) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{sessions: sessions}
}

// Handle executes the update. A quantity of zero or below removes the line.
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}

	container := h.sessions.Get(ctx, cmd.SessionID)
	container.UpdateCartQuantity(ctx, cmd.ProductID, cmd.Size, cmd.Color, cmd.Quantity)
	return nil
}
