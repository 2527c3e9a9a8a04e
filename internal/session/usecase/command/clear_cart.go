package command

import (
	"context"
	"fmt"

	"github.com/bellarosa/storefront/internal/session"
)

// ClearCartCommand represents the command to empty the cart
type ClearCartCommand struct {
	SessionID string
}

// ClearCartHandler handles the clear cart command
type ClearCartHandler struct {
	sessions *session.Manager
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(sessions *session.Manager) *ClearCartHandler {
	return &ClearCartHandler{sessions: sessions}
}

// Handle executes the clear command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}

	h.sessions.Get(ctx, cmd.SessionID).ClearCart(ctx)
	return nil
}
