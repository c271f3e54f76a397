package command

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/tair/wastesmart-storefront/internal/session/domain"
)

// saveRecord persists rec under kind and drops the other identity, so a
// browser is signed in as a shopper or a vendor but never both
func saveRecord(ctx context.Context, store domain.Store, kind domain.Kind, sid string, rec any) error {
	if sid == "" {
		return fmt.Errorf("%w: no browser session", domain.ErrInvalidInput)
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode %s session: %w", kind, err)
	}
	if err := store.Set(ctx, domain.Key(kind, sid), raw); err != nil {
		return fmt.Errorf("failed to save %s session: %w", kind, err)
	}

	other := domain.KindUser
	if kind == domain.KindUser {
		other = domain.KindVendor
	}
	if err := store.Remove(ctx, domain.Key(other, sid)); err != nil {
		return fmt.Errorf("failed to clear %s session: %w", other, err)
	}
	return nil
}

func removeRecord(ctx context.Context, store domain.Store, kind domain.Kind, sid string) error {
	if sid == "" {
		return nil
	}
	if err := store.Remove(ctx, domain.Key(kind, sid)); err != nil {
		return fmt.Errorf("failed to clear %s session: %w", kind, err)
	}
	return nil
}

func checkCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	return nil
}

func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("%w: %s required", domain.ErrInvalidInput, strings.Join(missing, ", "))
}
