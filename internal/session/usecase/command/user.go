package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/wastesmart-storefront/internal/backend"
	"github.com/tair/wastesmart-storefront/internal/session/domain"
)

const customerRole = "customer"

// UserSignupCommand registers a shopper and signs the browser in
type UserSignupCommand struct {
	SessionID       string
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type UserSignupHandler struct {
	accounts domain.AccountService
	store    domain.Store
}

func NewUserSignupHandler(accounts domain.AccountService, store domain.Store) *UserSignupHandler {
	return &UserSignupHandler{accounts: accounts, store: store}
}

func (h *UserSignupHandler) Handle(ctx context.Context, cmd UserSignupCommand) (*domain.UserRecord, error) {
	if err := requireFields(map[string]string{"name": cmd.Name}); err != nil {
		return nil, err
	}
	if err := checkCredentials(cmd.Email, cmd.Password); err != nil {
		return nil, err
	}
	if cmd.ConfirmPassword != "" && cmd.ConfirmPassword != cmd.Password {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}

	account, err := h.accounts.CreateUser(ctx, domain.UserSignup{
		Name:     strings.TrimSpace(cmd.Name),
		Email:    strings.TrimSpace(cmd.Email),
		Password: cmd.Password,
		Role:     customerRole,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	rec := domain.UserRecord{UID: account.ID, Email: account.Email, Name: account.Name, Role: account.Role}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrMissingFields, err)
	}
	if err := saveRecord(ctx, h.store, domain.KindUser, cmd.SessionID, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

type UserLoginCommand struct {
	SessionID string
	Email     string
	Password  string
}

type UserLoginHandler struct {
	accounts domain.AccountService
	store    domain.Store
}

func NewUserLoginHandler(accounts domain.AccountService, store domain.Store) *UserLoginHandler {
	return &UserLoginHandler{accounts: accounts, store: store}
}

// Handle exchanges credentials for a token, then resolves the account
// profile by email since the token carries none
func (h *UserLoginHandler) Handle(ctx context.Context, cmd UserLoginCommand) (*domain.UserRecord, error) {
	if err := checkCredentials(cmd.Email, cmd.Password); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(cmd.Email)

	token, err := h.accounts.LoginUser(ctx, email, cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	accounts, err := h.accounts.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	var account *domain.Account
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return nil, fmt.Errorf("%w: no account for %s", backend.ErrMissingFields, email)
	}

	rec := domain.UserRecord{
		UID:         account.ID,
		Email:       account.Email,
		Name:        account.Name,
		Role:        account.Role,
		AccessToken: token.AccessToken,
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrMissingFields, err)
	}
	if err := saveRecord(ctx, h.store, domain.KindUser, cmd.SessionID, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

type LogoutCommand struct {
	SessionID string
}

type UserLogoutHandler struct {
	store domain.Store
}

func NewUserLogoutHandler(store domain.Store) *UserLogoutHandler {
	return &UserLogoutHandler{store: store}
}

func (h *UserLogoutHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	return removeRecord(ctx, h.store, domain.KindUser, cmd.SessionID)
}
