package backend

import (
	"context"
	"fmt"
	"net/http"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
	session "github.com/tair/wastesmart-storefront/internal/session/domain"
)

func checkVendor(v *catalog.Vendor) error {
	var fields []string
	if v.ID <= 0 {
		fields = append(fields, "id")
	}
	if v.Name == "" {
		fields = append(fields, "name")
	}
	if len(fields) > 0 {
		return missing("vendor", fields...)
	}
	return nil
}

// ListVendors calls GET /vendors
func (c *Client) ListVendors(ctx context.Context) ([]catalog.Vendor, error) {
	req, _ := jsonRequest("ListVendors", http.MethodGet, "/vendors/", nil)
	var vendors []catalog.Vendor
	if err := c.call(ctx, req, &vendors); err != nil {
		return nil, err
	}
	for i := range vendors {
		if err := checkVendor(&vendors[i]); err != nil {
			return nil, wrap(req.op, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return vendors, nil
}

// GetVendor calls GET /vendors/{id}
func (c *Client) GetVendor(ctx context.Context, id int64) (*catalog.Vendor, error) {
	req, _ := jsonRequest("GetVendor", http.MethodGet, fmt.Sprintf("/vendors/%d", id), nil)
	var vendor catalog.Vendor
	if err := c.call(ctx, req, &vendor); err != nil {
		return nil, err
	}
	if err := checkVendor(&vendor); err != nil {
		return nil, wrap(req.op, err)
	}
	return &vendor, nil
}

// ListVendorProducts calls GET /vendors/{id}/products
func (c *Client) ListVendorProducts(ctx context.Context, vendorID int64) ([]catalog.Product, error) {
	req, _ := jsonRequest("ListVendorProducts", http.MethodGet, fmt.Sprintf("/vendors/%d/products", vendorID), nil)
	var products []catalog.Product
	if err := c.call(ctx, req, &products); err != nil {
		return nil, err
	}
	if err := checkProducts(products); err != nil {
		return nil, wrap(req.op, err)
	}
	return products, nil
}

// CreateVendor calls POST /vendors
func (c *Client) CreateVendor(ctx context.Context, in session.VendorSignup) (*catalog.Vendor, error) {
	req, err := jsonRequest("CreateVendor", http.MethodPost, "/vendors/", in)
	if err != nil {
		return nil, err
	}
	var vendor catalog.Vendor
	if err := c.call(ctx, req, &vendor); err != nil {
		return nil, err
	}
	if err := checkVendor(&vendor); err != nil {
		return nil, wrap(req.op, err)
	}
	return &vendor, nil
}

// LoginVendor calls POST /vendors/login
func (c *Client) LoginVendor(ctx context.Context, email, password string) (*session.VendorLogin, error) {
	body := map[string]string{"email": email, "password": password}
	req, err := jsonRequest("LoginVendor", http.MethodPost, "/vendors/login", body)
	if err != nil {
		return nil, err
	}
	var out session.VendorLogin
	if err := c.call(ctx, req, &out); err != nil {
		return nil, err
	}

	var fields []string
	if out.AccessToken == "" {
		fields = append(fields, "access_token")
	}
	if out.VendorID <= 0 {
		fields = append(fields, "vendor_id")
	}
	if out.VendorName == "" {
		fields = append(fields, "vendor_name")
	}
	if len(fields) > 0 {
		return nil, wrap(req.op, missing("vendor login", fields...))
	}
	return &out, nil
}
