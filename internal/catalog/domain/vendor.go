package domain

import "context"

// Vendor is a seller as returned by GET /vendors
type Vendor struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Contact             string `json:"contact"`
	Address             string `json:"address,omitempty"`
	Location            string `json:"location"`
	BusinessCategory    string `json:"business_category,omitempty"`
	BusinessDescription string `json:"business_description,omitempty"`
	BusinessLicense     string `json:"business_license,omitempty"`
	LogoURL             string `json:"logo_url,omitempty"`
	DiscountPolicy      string `json:"discount_policy,omitempty"`
	AcceptsDonations    bool   `json:"accepts_donations"`
	CreatedAt           string `json:"created_at,omitempty"`
}

// VendorRepository is the vendor half of the backend API
type VendorRepository interface {
	ListVendors(ctx context.Context) ([]Vendor, error)
	GetVendor(ctx context.Context, id int64) (*Vendor, error)
	ListVendorProducts(ctx context.Context, vendorID int64) ([]Product, error)
}
