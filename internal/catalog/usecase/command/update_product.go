package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

// UpdateProductCommand edits one of the signed-in vendor's products
type UpdateProductCommand struct {
	VendorID    int64
	ProductID   int64
	Name        string
	Description string
	Price       float64
	Quantity    int
	ExpiryDate  domain.Date
	ImageURL    string
}

type UpdateProductHandler struct {
	repo domain.ProductRepository
}

func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrInvalidProduct)
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidProduct)
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidProduct)
	}

	existing, err := ownedProduct(ctx, h.repo, cmd.VendorID, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	expiry := cmd.ExpiryDate
	if expiry.IsZero() {
		expiry = existing.ExpiryDate
	}

	product, err := h.repo.UpdateProduct(ctx, cmd.ProductID, domain.ProductInput{
		Name:        strings.TrimSpace(cmd.Name),
		Description: cmd.Description,
		Price:       cmd.Price,
		Quantity:    cmd.Quantity,
		ExpiryDate:  expiry,
		VendorID:    cmd.VendorID,
		ImageURL:    cmd.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", cmd.ProductID, err)
	}
	return product, nil
}

// ownedProduct fetches a product and checks it belongs to vendorID
func ownedProduct(ctx context.Context, repo domain.ProductRepository, vendorID, productID int64) (*domain.Product, error) {
	if vendorID <= 0 {
		return nil, fmt.Errorf("%w: vendor information missing, please log in again", domain.ErrInvalidProduct)
	}
	existing, err := repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	if existing.VendorID != vendorID {
		return nil, domain.ErrNotOwner
	}
	return existing, nil
}
