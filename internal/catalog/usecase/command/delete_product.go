package command

import (
	"context"
	"fmt"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

type DeleteProductCommand struct {
	VendorID  int64
	ProductID int64
}

type DeleteProductHandler struct {
	repo domain.ProductRepository
}

func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if _, err := ownedProduct(ctx, h.repo, cmd.VendorID, cmd.ProductID); err != nil {
		return err
	}
	if err := h.repo.DeleteProduct(ctx, cmd.ProductID); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", cmd.ProductID, err)
	}
	return nil
}
