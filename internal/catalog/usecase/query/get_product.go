package query

import (
	"context"
	"fmt"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

type GetProductQuery struct {
	ID int64
}

type GetProductHandler struct {
	repo  domain.ProductRepository
	clock domain.Clock
}

func NewGetProductHandler(repo domain.ProductRepository, clock domain.Clock) *GetProductHandler {
	return &GetProductHandler{repo: repo, clock: clock}
}

func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.ProductView, error) {
	if q.ID <= 0 {
		return nil, fmt.Errorf("%w: product id must be positive", domain.ErrInvalidProduct)
	}

	product, err := h.repo.GetProduct(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", q.ID, err)
	}

	view := domain.NewProductView(*product, h.clock())
	return &view, nil
}
