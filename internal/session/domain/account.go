package domain

import (
	"context"
	"errors"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

// Account is a shopper account as the backend reports it
type Account struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserSignup is the body of POST /users
type UserSignup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Token is an OAuth2 bearer token from a login endpoint
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VendorSignup is the body of POST /vendors
type VendorSignup struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	Contact             string `json:"contact"`
	Address             string `json:"address"`
	Location            string `json:"location"`
	BusinessCategory    string `json:"business_category"`
	BusinessDescription string `json:"business_description,omitempty"`
	BusinessLicense     string `json:"business_license,omitempty"`
	LogoURL             string `json:"logo_url,omitempty"`
	DiscountPolicy      string `json:"discount_policy,omitempty"`
	AcceptsDonations    bool   `json:"accepts_donations"`
	BankAccount         string `json:"bank_account,omitempty"`
	UPIID               string `json:"upi_id,omitempty"`
}

// VendorLogin is the payload of POST /vendors/login
type VendorLogin struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	VendorID         int64  `json:"vendor_id"`
	VendorName       string `json:"vendor_name"`
	Email            string `json:"email"`
	Contact          string `json:"contact"`
	BusinessCategory string `json:"business_category"`
}

// AccountService is the account half of the backend API
type AccountService interface {
	CreateUser(ctx context.Context, in UserSignup) (*Account, error)
	LoginUser(ctx context.Context, email, password string) (*Token, error)
	ListUsers(ctx context.Context) ([]Account, error)
	CreateVendor(ctx context.Context, in VendorSignup) (*catalog.Vendor, error)
	LoginVendor(ctx context.Context, email, password string) (*VendorLogin, error)
}

// ErrInvalidInput marks a signup or login form rejected before any backend call
var ErrInvalidInput = errors.New("invalid input")
