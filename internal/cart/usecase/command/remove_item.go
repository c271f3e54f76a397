package command

import (
	"context"

	"github.com/tair/wastesmart-storefront/internal/cart/domain"
)

type RemoveItemCommand struct {
	SessionID string
	Index     int
}

type RemoveItemResult struct {
	Removed bool `json:"removed"`
	Count   int  `json:"count"`
}

type RemoveItemHandler struct {
	carts *domain.Registry
}

func NewRemoveItemHandler(carts *domain.Registry) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle removes the entry at Index. A stale index is not an error.
func (h *RemoveItemHandler) Handle(_ context.Context, cmd RemoveItemCommand) RemoveItemResult {
	cart, ok := h.carts.Peek(cmd.SessionID)
	if !ok {
		return RemoveItemResult{}
	}
	removed := cart.RemoveAt(cmd.Index)
	return RemoveItemResult{Removed: removed, Count: cart.Count()}
}
