package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/pkg/logger"
)

type LoadSessionQuery struct {
	SessionID string
}

// LoadSessionHandler reads and validates the identity records of a browser
// session. Records that fail validation are removed from the store.
type LoadSessionHandler struct {
	store domain.Store
}

func NewLoadSessionHandler(store domain.Store) *LoadSessionHandler {
	return &LoadSessionHandler{store: store}
}

type validator interface {
	Validate() error
}

// Handle returns the session for q.SessionID. A broken record yields a
// *domain.CorruptedError; the vendor record is checked first.
func (h *LoadSessionHandler) Handle(ctx context.Context, q LoadSessionQuery) (*domain.Context, error) {
	s := &domain.Context{SessionID: q.SessionID}
	if q.SessionID == "" {
		return s, nil
	}

	var vendor domain.VendorRecord
	vendorFound, vendorErr := h.load(ctx, domain.KindVendor, q.SessionID, &vendor)

	var user domain.UserRecord
	userFound, userErr := h.load(ctx, domain.KindUser, q.SessionID, &user)

	if vendorErr != nil {
		return nil, vendorErr
	}
	if userErr != nil {
		return nil, userErr
	}

	if vendorFound {
		s.Vendor = &vendor
	}
	if userFound {
		s.User = &user
	}
	return s, nil
}

func (h *LoadSessionHandler) load(ctx context.Context, kind domain.Kind, sid string, into validator) (bool, error) {
	key := domain.Key(kind, sid)

	raw, err := h.store.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s session: %w", kind, err)
	}

	reason := json.Unmarshal(raw, into)
	if reason == nil {
		reason = into.Validate()
	}
	if reason == nil {
		return true, nil
	}

	if err := h.store.Remove(ctx, key); err != nil {
		logger.Error(ctx).Err(err).Str("key", key).Msg("Failed to remove corrupted session record")
	}
	logger.Warn(ctx).Err(reason).Str("kind", string(kind)).Msg("Discarded corrupted session record")

	return false, &domain.CorruptedError{Kind: kind, Reason: reason}
}
