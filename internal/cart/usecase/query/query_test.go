package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/wastesmart-storefront/internal/cart/domain"
	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
	session "github.com/tair/wastesmart-storefront/internal/session/domain"
)

func TestGetCart(t *testing.T) {
	carts := domain.NewRegistry()
	carts.Get("s1").Add(catalog.Product{ID: 1, Price: 2})
	carts.Get("s1").Add(catalog.Product{ID: 1, Price: 2})
	h := NewGetCartHandler(carts)

	snap := h.Handle(context.Background(), GetCartQuery{SessionID: "s1"})
	assert.Equal(t, 2, snap.Count)
	assert.InDelta(t, 4.0, snap.Total, 1e-9)

	empty := h.Handle(context.Background(), GetCartQuery{SessionID: "other"})
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 1, carts.Len())
}

func TestNavSummary(t *testing.T) {
	carts := domain.NewRegistry()
	h := NewNavSummaryHandler(carts)

	anon := h.Handle(context.Background(), NavSummaryQuery{Session: &session.Context{SessionID: "s1"}})
	assert.Equal(t, NavSummary{Kind: session.KindAnonymous}, anon)

	carts.Get("s1").Add(catalog.Product{ID: 1, Price: 2})
	vendor := &session.Context{SessionID: "s1", Vendor: &session.VendorRecord{VendorID: 3, VendorName: "Farm"}}
	got := h.Handle(context.Background(), NavSummaryQuery{Session: vendor})
	assert.Equal(t, NavSummary{CartCount: 1, ShowBadge: true, ShowCheckout: true, DisplayName: "Farm", Kind: session.KindVendor}, got)

	assert.Equal(t, session.KindAnonymous, h.Handle(context.Background(), NavSummaryQuery{}).Kind)
}
