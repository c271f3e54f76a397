package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

// CreateProductCommand lists a new product for the signed-in vendor
type CreateProductCommand struct {
	VendorID    int64
	Name        string
	Description string
	Price       float64
	Quantity    int
	ExpiryDate  domain.Date
	ImageURL    string
}

type CreateProductHandler struct {
	repo  domain.ProductRepository
	clock domain.Clock
}

func NewCreateProductHandler(repo domain.ProductRepository, clock domain.Clock) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, clock: clock}
}

func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.VendorID <= 0 {
		return nil, fmt.Errorf("%w: vendor information missing, please log in again", domain.ErrInvalidProduct)
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrInvalidProduct)
	}
	if cmd.Price <= 0 || cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: price and quantity must be greater than zero", domain.ErrInvalidProduct)
	}
	if cmd.ExpiryDate.IsZero() {
		return nil, fmt.Errorf("%w: expiry date is required", domain.ErrInvalidProduct)
	}
	if cmd.ExpiryDate.Time().Before(h.clock()) {
		return nil, fmt.Errorf("%w: expiry date cannot be in the past", domain.ErrInvalidProduct)
	}

	product, err := h.repo.CreateProduct(ctx, domain.ProductInput{
		Name:        strings.TrimSpace(cmd.Name),
		Description: cmd.Description,
		Price:       cmd.Price,
		Quantity:    cmd.Quantity,
		ExpiryDate:  cmd.ExpiryDate,
		VendorID:    cmd.VendorID,
		ImageURL:    cmd.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}
