package command

import (
	"context"
	"fmt"

	"github.com/bellarosa/storefront/internal/session"
	"github.com/bellarosa/storefront/internal/session/domain"
)

// SetUIStateCommand updates the transient visibility flags. Nil fields are
// left untouched so a caller can set one flag at a time.
type SetUIStateCommand struct {
	SessionID     string
	CartOpen      *bool
	AuthModalOpen *bool
	AuthModalMode *domain.AuthModalMode
}

// SetUIStateHandler handles UI flag updates
type SetUIStateHandler struct {
	sessions *session.Manager
}

// NewSetUIStateHandler creates a new UI state handler
func NewSetUIStateHandler(sessions *session.Manager) *SetUIStateHandler {
	return &SetUIStateHandler{sessions: sessions}
}

// Handle applies the provided flags. UI flags never persist.
func (h *SetUIStateHandler) Handle(ctx context.Context, cmd SetUIStateCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if cmd.AuthModalMode != nil &&
		*cmd.AuthModalMode != domain.AuthModalLogin && *cmd.AuthModalMode != domain.AuthModalSignup {
		return fmt.Errorf("invalid auth modal mode: %s", *cmd.AuthModalMode)
	}

	container := h.sessions.Get(ctx, cmd.SessionID)
	if cmd.CartOpen != nil {
		container.SetCartOpen(*cmd.CartOpen)
	}
	if cmd.AuthModalOpen != nil {
		container.SetAuthModalOpen(*cmd.AuthModalOpen)
	}
	if cmd.AuthModalMode != nil {
		container.SetAuthModalMode(*cmd.AuthModalMode)
	}
	return nil
}
