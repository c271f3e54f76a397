package backend

import (
	"context"
	"net/http"

	cart "github.com/tair/wastesmart-storefront/internal/cart/domain"
)

// CreateOrder calls POST /orders
func (c *Client) CreateOrder(ctx context.Context, in cart.OrderRequest) (*cart.Order, error) {
	req, err := jsonRequest("CreateOrder", http.MethodPost, "/orders/", in)
	if err != nil {
		return nil, err
	}
	var order cart.Order
	if err := c.call(ctx, req, &order); err != nil {
		return nil, err
	}
	if order.ID <= 0 {
		return nil, wrap(req.op, missing("order", "id"))
	}
	return &order, nil
}
