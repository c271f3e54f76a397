package query

import (
	"context"

	"github.com/tair/wastesmart-storefront/internal/cart/domain"
)

type GetCartQuery struct {
	SessionID string
}

type GetCartHandler struct {
	carts *domain.Registry
}

func NewGetCartHandler(carts *domain.Registry) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle never creates a cart; an unknown session reads as empty
func (h *GetCartHandler) Handle(_ context.Context, q GetCartQuery) domain.Snapshot {
	cart, ok := h.carts.Peek(q.SessionID)
	if !ok {
		return domain.Snapshot{Items: []domain.Entry{}}
	}
	return cart.Snapshot()
}
