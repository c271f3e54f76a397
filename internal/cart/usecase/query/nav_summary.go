package query

import (
	"context"

	"github.com/tair/wastesmart-storefront/internal/cart/domain"
	session "github.com/tair/wastesmart-storefront/internal/session/domain"
)

// NavSummary is what the navigation bar needs on every page
type NavSummary struct {
	CartCount    int          `json:"cart_count"`
	ShowBadge    bool         `json:"show_badge"`
	ShowCheckout bool         `json:"show_checkout"`
	DisplayName  string       `json:"display_name,omitempty"`
	Kind         session.Kind `json:"kind"`
}

type NavSummaryQuery struct {
	Session *session.Context
}

type NavSummaryHandler struct {
	carts *domain.Registry
}

func NewNavSummaryHandler(carts *domain.Registry) *NavSummaryHandler {
	return &NavSummaryHandler{carts: carts}
}

func (h *NavSummaryHandler) Handle(_ context.Context, q NavSummaryQuery) NavSummary {
	count := 0
	if q.Session != nil {
		if cart, ok := h.carts.Peek(q.Session.SessionID); ok {
			count = cart.Count()
		}
	}
	return NavSummary{
		CartCount:    count,
		ShowBadge:    count > 0,
		ShowCheckout: count > 0,
		DisplayName:  q.Session.DisplayName(),
		Kind:         q.Session.Kind(),
	}
}
