package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind says who a persisted identity record belongs to
type Kind string

const (
	KindAnonymous Kind = "anonymous"
	KindUser      Kind = "user"
	KindVendor    Kind = "vendor"
)

// LoginPath is where a browser holding a broken record of this kind is sent
func (k Kind) LoginPath() string {
	if k == KindVendor {
		return "/vendor-login"
	}
	return "/login"
}

// Key is the store key holding the record of kind k for a browser session
func Key(k Kind, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", k, sessionID)
}

// UserRecord is the shopper identity kept for a browser session
type UserRecord struct {
	UID         int64  `json:"uid,omitempty"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

// Validate reports the required fields the record lacks
func (u UserRecord) Validate() error {
	var missing []string
	if strings.TrimSpace(u.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(u.Name) == "" {
		missing = append(missing, "name")
	}
	return missingFields(missing)
}

// VendorRecord is the vendor identity kept for a browser session
type VendorRecord struct {
	VendorID         int64  `json:"vendor_id"`
	VendorName       string `json:"vendor_name"`
	Email            string `json:"email,omitempty"`
	Contact          string `json:"contact,omitempty"`
	BusinessCategory string `json:"business_category,omitempty"`
	AccessToken      string `json:"access_token,omitempty"`
}

func (v VendorRecord) Validate() error {
	var missing []string
	if v.VendorID <= 0 {
		missing = append(missing, "vendor_id")
	}
	if strings.TrimSpace(v.VendorName) == "" {
		missing = append(missing, "vendor_name")
	}
	return missingFields(missing)
}

var (
	// ErrNotFound is returned by a Store when the key is absent
	ErrNotFound = errors.New("session record not found")
	// ErrUnauthenticated is returned when an operation needs a login the session lacks
	ErrUnauthenticated = errors.New("login required")
	ErrMissingFields   = errors.New("session record missing required fields")
)

func missingFields(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(fields, ", "))
}

// CorruptedError reports a stored record that failed validation. The record
// has already been removed by the time the caller sees this.
type CorruptedError struct {
	Kind   Kind
	Reason error
}

func (e *CorruptedError) Error() string {
	return fmt.Sprintf("corrupted %s session: %v", e.Kind, e.Reason)
}

func (e *CorruptedError) Unwrap() error {
	return e.Reason
}

// RedirectTo is the login entry point for the broken record's kind
func (e *CorruptedError) RedirectTo() string {
	return e.Kind.LoginPath()
}

// Store is a persistent key-value store for session records
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
