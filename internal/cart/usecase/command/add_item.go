package command

import (
	"context"
	"fmt"

	"github.com/tair/wastesmart-storefront/internal/cart/domain"
)

// AddItemCommand puts one unit of a product into a session's cart
type AddItemCommand struct {
	SessionID string
	ProductID int64
}

// AddItemResult echoes the stored snapshot and the new cart size
type AddItemResult struct {
	Entry domain.Entry `json:"entry"`
	Count int          `json:"count"`
}

type AddItemHandler struct {
	carts    *domain.Registry
	products domain.ProductSource
}

func NewAddItemHandler(carts *domain.Registry, products domain.ProductSource) *AddItemHandler {
	return &AddItemHandler{carts: carts, products: products}
}

func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*AddItemResult, error) {
	if cmd.ProductID <= 0 {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrInvalidItem)
	}

	product, err := h.products.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", cmd.ProductID, err)
	}

	cart := h.carts.Get(cmd.SessionID)
	entry, count := cart.Add(*product)

	return &AddItemResult{Entry: entry, Count: count}, nil
}
