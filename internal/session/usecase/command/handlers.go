package command

import (
	catalog "github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/session"
)

// Handlers bundles all session command handlers for injection into the
// delivery layer.
type Handlers struct {
	AddToCart          *AddToCartHandler
	RemoveFromCart     *RemoveFromCartHandler
	UpdateQuantity     *UpdateQuantityHandler
	ClearCart          *ClearCartHandler
	AddToWishlist      *AddToWishlistHandler
	RemoveFromWishlist *RemoveFromWishlistHandler
	Login              *LoginHandler
	Logout             *LogoutHandler
	SetUIState         *SetUIStateHandler
}

// NewHandlers constructs the full command handler set.
func NewHandlers(sessions *session.Manager, repo catalog.CatalogRepository) *Handlers {
	return &Handlers{
		AddToCart:          NewAddToCartHandler(sessions, repo),
		RemoveFromCart:     NewRemoveFromCartHandler(sessions),
		UpdateQuantity:     NewUpdateQuantityHandler(sessions),
		ClearCart:          NewClearCartHandler(sessions),
		AddToWishlist:      NewAddToWishlistHandler(sessions, repo),
		RemoveFromWishlist: NewRemoveFromWishlistHandler(sessions),
		Login:              NewLoginHandler(sessions),
		Logout:             NewLogoutHandler(sessions),
		SetUIState:         NewSetUIStateHandler(sessions),
	}
}
