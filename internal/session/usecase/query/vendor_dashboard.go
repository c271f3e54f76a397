package query

import (
	"context"
	"fmt"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
	"github.com/tair/wastesmart-storefront/internal/session/domain"
)

type VendorDashboardQuery struct {
	Session *domain.Context
}

// DashboardStats counts the vendor's listings by state
type DashboardStats struct {
	Listings     int `json:"listings"`
	OutOfStock   int `json:"out_of_stock"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

type VendorDashboard struct {
	Vendor   domain.VendorRecord   `json:"vendor"`
	Products []catalog.ProductView `json:"products"`
	Stats    DashboardStats        `json:"stats"`
}

type VendorDashboardHandler struct {
	vendors catalog.VendorRepository
	clock   catalog.Clock
}

func NewVendorDashboardHandler(vendors catalog.VendorRepository, clock catalog.Clock) *VendorDashboardHandler {
	return &VendorDashboardHandler{vendors: vendors, clock: clock}
}

func (h *VendorDashboardHandler) Handle(ctx context.Context, q VendorDashboardQuery) (*VendorDashboard, error) {
	if !q.Session.IsVendor() {
		return nil, domain.ErrUnauthenticated
	}
	vendor := *q.Session.Vendor

	products, err := h.vendors.ListVendorProducts(ctx, vendor.VendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products of vendor %d: %w", vendor.VendorID, err)
	}

	views := catalog.NewProductViews(products, h.clock())
	stats := DashboardStats{Listings: len(views)}
	for _, v := range views {
		if !v.InStock() {
			stats.OutOfStock++
		}
		switch v.Status {
		case catalog.StatusExpiringSoon:
			stats.ExpiringSoon++
		case catalog.StatusExpired:
			stats.Expired++
		}
	}

	// never hand the bearer token back to the browser
	vendor.AccessToken = ""
	return &VendorDashboard{Vendor: vendor, Products: views, Stats: stats}, nil
}
