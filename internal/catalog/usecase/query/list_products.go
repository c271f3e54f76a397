package query

import (
	"context"
	"fmt"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

// ListProductsQuery lists the marketplace. A nil Criteria returns the
// full listing unfiltered, as the product page does on first load.
type ListProductsQuery struct {
	Criteria *domain.FilterCriteria
}

// ListProductsResult carries the displayed products and the total fetched
type ListProductsResult struct {
	Products []domain.ProductView `json:"products"`
	Total    int                  `json:"total"`
	Shown    int                  `json:"shown"`
}

type ListProductsHandler struct {
	repo  domain.ProductRepository
	clock domain.Clock
}

func NewListProductsHandler(repo domain.ProductRepository, clock domain.Clock) *ListProductsHandler {
	return &ListProductsHandler{repo: repo, clock: clock}
}

func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) (*ListProductsResult, error) {
	products, err := h.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	now := h.clock()
	shown := products
	if q.Criteria != nil {
		shown = domain.Apply(products, *q.Criteria, now)
	}

	return &ListProductsResult{
		Products: domain.NewProductViews(shown, now),
		Total:    len(products),
		Shown:    len(shown),
	}, nil
}
