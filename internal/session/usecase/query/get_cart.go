package query

import (
	"context"
	"fmt"

	"github.com/bellarosa/storefront/internal/session"
	"github.com/bellarosa/storefront/internal/session/domain"
)

// CartView is the derived cart read model: lines plus totals.
type CartView struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

// GetCartQuery represents the query to read the cart
type GetCartQuery struct {
	SessionID string
}

// GetCartHandler handles the cart read query
type GetCartHandler struct {
	sessions *session.Manager
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(sessions *session.Manager) *GetCartHandler {
	return &GetCartHandler{sessions: sessions}
}

// Handle executes the cart query
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*CartView, error) {
	if q.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	container := h.sessions.Get(ctx, q.SessionID)
	return &CartView{
		Items: container.Cart(),
		Total: container.CartTotal(),
		Count: container.CartCount(),
	}, nil
}
