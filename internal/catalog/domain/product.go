package domain

import "context"

// Product is a listing as returned by the backend. The storefront never
// mutates one in place; filters and carts select or copy.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ExpiryDate  Date    `json:"expiry_date"`
	VendorID    int64   `json:"vendor_id"`
	ImageURL    string  `json:"image_url,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

func (p Product) InStock() bool {
	return p.Quantity > 0
}

// ProductInput is the writable subset of a product sent on create and update
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ExpiryDate  Date    `json:"expiry_date"`
	VendorID    int64   `json:"vendor_id"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ProductRepository is the product half of the backend API
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
