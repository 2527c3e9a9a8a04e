package command

import (
	"context"
	"fmt"

	"github.com/bellarosa/storefront/internal/session"
)

// RemoveFromCartCommand represents the command to delete a cart line
type RemoveFromCartCommand struct {
	SessionID string
	ProductID string
	Size      string
	Color     string
}

// RemoveFromCartHandler handles the remove from cart command
type RemoveFromCartHandler struct {
	sessions *session.Manager
}

// NewRemoveFromCartHandler creates a new remove from cart handler
func NewRemoveFromCartHandler(sessions *session.Manager) *RemoveFromCartHandler {
	return &RemoveFromCartHandler{sessions: sessions}
}

// Handle executes the remove command. Removing an absent line succeeds.
func (h *RemoveFromCartHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}

	container := h.sessions.Get(ctx, cmd.SessionID)
	container.RemoveFromCart(ctx, cmd.ProductID, cmd.Size, cmd.Color)
	return nil
}
