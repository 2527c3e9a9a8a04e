package query

import (
	"github.com/bellarosa/storefront/internal/session"
)

// Handlers bundles all session query handlers for injection into the
// delivery layer.
type Handlers struct {
	GetCart      *GetCartHandler
	GetWishlist  *GetWishlistHandler
	IsInWishlist *IsInWishlistHandler
	GetSession   *GetSessionHandler
}

// NewHandlers constructs the full query handler set.
func NewHandlers(sessions *session.Manager) *Handlers {
	return &Handlers{
		GetCart:      NewGetCartHandler(sessions),
		GetWishlist:  NewGetWishlistHandler(sessions),
		IsInWishlist: NewIsInWishlistHandler(sessions),
		GetSession:   NewGetSessionHandler(sessions),
	}
}
