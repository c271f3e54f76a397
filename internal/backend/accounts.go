package backend

import (
	"context"
	"net/http"
	"net/url"

	session "github.com/tair/wastesmart-storefront/internal/session/domain"
)

// CreateUser calls POST /users
func (c *Client) CreateUser(ctx context.Context, in session.UserSignup) (*session.Account, error) {
	req, err := jsonRequest("CreateUser", http.MethodPost, "/users/", in)
	if err != nil {
		return nil, err
	}
	var account session.Account
	if err := c.call(ctx, req, &account); err != nil {
		return nil, err
	}
	if account.ID <= 0 || account.Email == "" {
		return nil, wrap(req.op, missing("user", "id", "email"))
	}
	return &account, nil
}

// ListUsers calls GET /users
func (c *Client) ListUsers(ctx context.Context) ([]session.Account, error) {
	req, _ := jsonRequest("ListUsers", http.MethodGet, "/users/", nil)
	var accounts []session.Account
	if err := c.call(ctx, req, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// LoginUser calls POST /auth/login with an OAuth2 password form
func (c *Client) LoginUser(ctx context.Context, email, password string) (*session.Token, error) {
	req := formRequest("LoginUser", "/auth/login", url.Values{
		"username":   {email},
		"password":   {password},
		"grant_type": {"password"},
	})
	var token session.Token
	if err := c.call(ctx, req, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, wrap(req.op, missing("token", "access_token"))
	}
	return &token, nil
}
