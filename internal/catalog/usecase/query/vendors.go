package query

import (
	"context"
	"fmt"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

type ListVendorsQuery struct{}

type ListVendorsHandler struct {
	repo domain.VendorRepository
}

func NewListVendorsHandler(repo domain.VendorRepository) *ListVendorsHandler {
	return &ListVendorsHandler{repo: repo}
}

func (h *ListVendorsHandler) Handle(ctx context.Context, _ ListVendorsQuery) ([]domain.Vendor, error) {
	vendors, err := h.repo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

type GetVendorQuery struct {
	ID int64
}

// VendorDetails is a vendor page: the vendor and what it sells
type VendorDetails struct {
	Vendor   domain.Vendor        `json:"vendor"`
	Products []domain.ProductView `json:"products"`
}

type GetVendorHandler struct {
	repo  domain.VendorRepository
	clock domain.Clock
}

func NewGetVendorHandler(repo domain.VendorRepository, clock domain.Clock) *GetVendorHandler {
	return &GetVendorHandler{repo: repo, clock: clock}
}

// Handle fetches the vendor first; its products are only requested once the
// vendor is known to exist
func (h *GetVendorHandler) Handle(ctx context.Context, q GetVendorQuery) (*VendorDetails, error) {
	vendor, err := h.repo.GetVendor(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor %d: %w", q.ID, err)
	}

	products, err := h.repo.ListVendorProducts(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products of vendor %d: %w", q.ID, err)
	}

	return &VendorDetails{
		Vendor:   *vendor,
		Products: domain.NewProductViews(products, h.clock()),
	}, nil
}

type ListVendorProductsQuery struct {
	VendorID int64
}

type ListVendorProductsHandler struct {
	repo  domain.VendorRepository
	clock domain.Clock
}

func NewListVendorProductsHandler(repo domain.VendorRepository, clock domain.Clock) *ListVendorProductsHandler {
	return &ListVendorProductsHandler{repo: repo, clock: clock}
}

func (h *ListVendorProductsHandler) Handle(ctx context.Context, q ListVendorProductsQuery) ([]domain.ProductView, error) {
	products, err := h.repo.ListVendorProducts(ctx, q.VendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products of vendor %d: %w", q.VendorID, err)
	}
	return domain.NewProductViews(products, h.clock()), nil
}
