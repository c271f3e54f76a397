package domain

import (
	"context"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

// OrderRequest is the body of POST /orders
type OrderRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Order is the backend's view of a placed order
type Order struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// Line is one product of a checkout with its repeat count
type Line struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// GroupLines collapses duplicate entries into one line per product, in the
// order each product first appears
func GroupLines(entries []Entry) []Line {
	index := make(map[int64]int, len(entries))
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.ID]; ok {
			lines[i].Quantity++
			continue
		}
		index[e.ID] = len(lines)
		lines = append(lines, Line{ProductID: e.ID, Name: e.Name, Quantity: 1, UnitPrice: e.Price})
	}
	return lines
}

// OrderIDs lists the ids of orders in order
func OrderIDs(orders []Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

// WithoutProducts returns the entries whose product is not in placed
func WithoutProducts(entries []Entry, placed map[int64]bool) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !placed[e.ID] {
			kept = append(kept, e)
		}
	}
	return kept
}

// ProductSource looks up a single product for add-to-cart
type ProductSource interface {
	GetProduct(ctx context.Context, id int64) (*catalog.Product, error)
}

// OrderService places orders with the backend
type OrderService interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}

// CheckoutEvent is published once a checkout has placed all its orders
type CheckoutEvent struct {
	SessionID string  `json:"session_id"`
	UserID    int64   `json:"user_id"`
	OrderIDs  []int64 `json:"order_ids"`
	Lines     []Line  `json:"lines"`
	Total     float64 `json:"total"`
}

// EventPublisher announces completed checkouts
type EventPublisher interface {
	PublishCheckoutCompleted(ctx context.Context, event CheckoutEvent) error
}
