package command

import (
	"context"

	"github.com/tair/wastesmart-storefront/internal/cart/domain"
	session "github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/pkg/logger"
)

// CheckoutCommand turns a shopper's cart into backend orders
type CheckoutCommand struct {
	Session *session.Context
}

type CheckoutResult struct {
	Orders []domain.Order `json:"orders"`
	Lines  []domain.Line  `json:"lines"`
	Items  int            `json:"items"`
	Total  float64        `json:"total"`
}

type CheckoutHandler struct {
	carts     *domain.Registry
	orders    domain.OrderService
	publisher domain.EventPublisher
}

func NewCheckoutHandler(carts *domain.Registry, orders domain.OrderService, publisher domain.EventPublisher) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, orders: orders, publisher: publisher}
}

// Handle places one order per distinct product. The first failing order
// aborts the checkout. Entries of products already ordered stay out of the
// cart so a retry does not order them again; the rest are put back.
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error) {
	s := cmd.Session
	if !s.IsShopper() || s.User.UID <= 0 {
		return nil, session.ErrUnauthenticated
	}

	cart, ok := h.carts.Peek(s.SessionID)
	if !ok || cart.Count() == 0 {
		return nil, domain.ErrEmptyCart
	}

	entries := cart.Drain()
	if len(entries) == 0 {
		return nil, domain.ErrEmptyCart
	}

	lines := domain.GroupLines(entries)
	orders := make([]domain.Order, 0, len(lines))
	placed := make(map[int64]bool, len(lines))
	for _, line := range lines {
		order, err := h.orders.CreateOrder(ctx, domain.OrderRequest{
			UserID:    s.User.UID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
		if err != nil {
			cart.Restore(domain.WithoutProducts(entries, placed))
			logger.Warn(ctx).Err(err).
				Int64("product_id", line.ProductID).
				Ints64("placed_order_ids", domain.OrderIDs(orders)).
				Msg("Checkout aborted")
			return nil, &domain.CheckoutError{ProductID: line.ProductID, Placed: orders, Err: err}
		}
		orders = append(orders, *order)
		placed[line.ProductID] = true
	}

	result := &CheckoutResult{Orders: orders, Lines: lines, Items: len(entries)}
	ids := domain.OrderIDs(orders)
	for _, e := range entries {
		result.Total += e.Price
	}

	event := domain.CheckoutEvent{
		SessionID: s.SessionID,
		UserID:    s.User.UID,
		OrderIDs:  ids,
		Lines:     lines,
		Total:     result.Total,
	}
	if err := h.publisher.PublishCheckoutCompleted(ctx, event); err != nil {
		// orders are already placed
		logger.Error(ctx).Err(err).Ints64("order_ids", ids).Msg("Failed to publish checkout event")
	}

	logger.Info(ctx).
		Int64("user_id", s.User.UID).
		Int("orders", len(orders)).
		Float64("total", result.Total).
		Msg("Checkout completed")

	return result, nil
}
