package query

import (
	"context"
	"fmt"

	"github.com/bellarosa/storefront/internal/session"
	"github.com/bellarosa/storefront/internal/session/domain"
)

// SessionView is the full session read model handed to the UI layer.
type SessionView struct {
	User            *domain.User         `json:"user"`
	IsAuthenticated bool                 `json:"is_authenticated"`
	CartCount       int                  `json:"cart_count"`
	IsCartOpen      bool                 `json:"is_cart_open"`
	IsAuthModalOpen bool                 `json:"is_auth_modal_open"`
	AuthModalMode   domain.AuthModalMode `json:"auth_modal_mode"`
}

// GetSessionQuery represents the query to read session state
type GetSessionQuery struct {
	SessionID string
}

// GetSessionHandler handles the session read query
type GetSessionHandler struct {
	sessions *session.Manager
}

// NewGetSessionHandler creates a new get session handler
func NewGetSessionHandler(sessions *session.Manager) *GetSessionHandler {
	return &GetSessionHandler{sessions: sessions}
}

// Handle executes the session query
func (h *GetSessionHandler) Handle(ctx context.Context, q GetSessionQuery) (*SessionView, error) {
	if q.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	container := h.sessions.Get(ctx, q.SessionID)
	cartOpen, authModalOpen, mode := container.UIState()

	return &SessionView{
		User:            container.User(),
		IsAuthenticated: container.IsAuthenticated(),
		CartCount:       container.CartCount(),
		IsCartOpen:      cartOpen,
		IsAuthModalOpen: authModalOpen,
		AuthModalMode:   mode,
	}, nil
}
