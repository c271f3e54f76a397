package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/wastesmart-storefront/internal/backend"
	"github.com/tair/wastesmart-storefront/internal/session/domain"
)

// VendorSignupCommand registers a business and signs the browser in as it
type VendorSignupCommand struct {
	SessionID string
	domain.VendorSignup
}

type VendorSignupHandler struct {
	accounts domain.AccountService
	store    domain.Store
}

func NewVendorSignupHandler(accounts domain.AccountService, store domain.Store) *VendorSignupHandler {
	return &VendorSignupHandler{accounts: accounts, store: store}
}

func (h *VendorSignupHandler) Handle(ctx context.Context, cmd VendorSignupCommand) (*domain.VendorRecord, error) {
	in := cmd.VendorSignup
	if err := requireFields(map[string]string{
		"name":              in.Name,
		"contact":           in.Contact,
		"address":           in.Address,
		"location":          in.Location,
		"business_category": in.BusinessCategory,
		"business_license":  in.BusinessLicense,
	}); err != nil {
		return nil, err
	}
	if err := checkCredentials(in.Email, in.Password); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	vendor, err := h.accounts.CreateVendor(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to register vendor: %w", err)
	}

	rec := domain.VendorRecord{
		VendorID:         vendor.ID,
		VendorName:       vendor.Name,
		Email:            vendor.Email,
		Contact:          vendor.Contact,
		BusinessCategory: vendor.BusinessCategory,
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrMissingFields, err)
	}
	if err := saveRecord(ctx, h.store, domain.KindVendor, cmd.SessionID, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

type VendorLoginCommand struct {
	SessionID string
	Email     string
	Password  string
}

type VendorLoginHandler struct {
	accounts domain.AccountService
	store    domain.Store
}

func NewVendorLoginHandler(accounts domain.AccountService, store domain.Store) *VendorLoginHandler {
	return &VendorLoginHandler{accounts: accounts, store: store}
}

func (h *VendorLoginHandler) Handle(ctx context.Context, cmd VendorLoginCommand) (*domain.VendorRecord, error) {
	if err := checkCredentials(cmd.Email, cmd.Password); err != nil {
		return nil, err
	}

	login, err := h.accounts.LoginVendor(ctx, strings.TrimSpace(cmd.Email), cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	rec := domain.VendorRecord{
		VendorID:         login.VendorID,
		VendorName:       login.VendorName,
		Email:            login.Email,
		Contact:          login.Contact,
		BusinessCategory: login.BusinessCategory,
		AccessToken:      login.AccessToken,
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrMissingFields, err)
	}
	if err := saveRecord(ctx, h.store, domain.KindVendor, cmd.SessionID, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

type VendorLogoutHandler struct {
	store domain.Store
}

func NewVendorLogoutHandler(store domain.Store) *VendorLogoutHandler {
	return &VendorLogoutHandler{store: store}
}

func (h *VendorLogoutHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	return removeRecord(ctx, h.store, domain.KindVendor, cmd.SessionID)
}
