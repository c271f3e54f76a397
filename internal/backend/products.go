package backend

import (
	"context"
	"fmt"
	"net/http"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

func checkProduct(p *catalog.Product) error {
	var fields []string
	if p.ID <= 0 {
		fields = append(fields, "id")
	}
	if p.Name == "" {
		fields = append(fields, "name")
	}
	if len(fields) > 0 {
		return missing("product", fields...)
	}
	return nil
}

func checkProducts(products []catalog.Product) error {
	for i := range products {
		if err := checkProduct(&products[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// ListProducts calls GET /products
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	req, _ := jsonRequest("ListProducts", http.MethodGet, "/products/", nil)
	var products []catalog.Product
	if err := c.call(ctx, req, &products); err != nil {
		return nil, err
	}
	if err := checkProducts(products); err != nil {
		return nil, wrap(req.op, err)
	}
	return products, nil
}

// GetProduct calls GET /products/{id}
func (c *Client) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	req, _ := jsonRequest("GetProduct", http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	var product catalog.Product
	if err := c.call(ctx, req, &product); err != nil {
		return nil, err
	}
	if err := checkProduct(&product); err != nil {
		return nil, wrap(req.op, err)
	}
	return &product, nil
}

// CreateProduct calls POST /products
func (c *Client) CreateProduct(ctx context.Context, in catalog.ProductInput) (*catalog.Product, error) {
	req, err := jsonRequest("CreateProduct", http.MethodPost, "/products/", in)
	if err != nil {
		return nil, err
	}
	var product catalog.Product
	if err := c.call(ctx, req, &product); err != nil {
		return nil, err
	}
	if err := checkProduct(&product); err != nil {
		return nil, wrap(req.op, err)
	}
	return &product, nil
}

// UpdateProduct calls PUT /products/{id}
func (c *Client) UpdateProduct(ctx context.Context, id int64, in catalog.ProductInput) (*catalog.Product, error) {
	req, err := jsonRequest("UpdateProduct", http.MethodPut, fmt.Sprintf("/products/%d", id), in)
	if err != nil {
		return nil, err
	}
	var product catalog.Product
	if err := c.call(ctx, req, &product); err != nil {
		return nil, err
	}
	if err := checkProduct(&product); err != nil {
		return nil, wrap(req.op, err)
	}
	return &product, nil
}

// DeleteProduct calls DELETE /products/{id}
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	req, _ := jsonRequest("DeleteProduct", http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
	return c.call(ctx, req, nil)
}
