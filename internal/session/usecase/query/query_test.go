package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
	"github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/internal/session/repository"
)

func put(t *testing.T, store domain.Store, kind domain.Kind, sid, raw string) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), domain.Key(kind, sid), []byte(raw)))
}

func TestLoadSession_Anonymous(t *testing.T) {
	h := NewLoadSessionHandler(repository.NewMemoryStore())

	s, err := h.Handle(context.Background(), LoadSessionQuery{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, domain.KindAnonymous, s.Kind())
	assert.Equal(t, "s1", s.SessionID)
}

func TestLoadSession_ValidRecords(t *testing.T) {
	store := repository.NewMemoryStore()
	put(t, store, domain.KindUser, "s1", `{"uid":4,"email":"a@b.c","name":"Ada"}`)
	put(t, store, domain.KindVendor, "s2", `{"vendor_id":7,"vendor_name":"Green Grocer"}`)
	h := NewLoadSessionHandler(store)

	s, err := h.Handle(context.Background(), LoadSessionQuery{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, domain.KindUser, s.Kind())
	assert.Equal(t, int64(4), s.User.UID)

	s, err = h.Handle(context.Background(), LoadSessionQuery{SessionID: "s2"})
	require.NoError(t, err)
	assert.Equal(t, domain.KindVendor, s.Kind())
	assert.Equal(t, "Green Grocer", s.DisplayName())
}

func TestLoadSession_CorruptedRecordsAreRemoved(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.Kind
		raw      string
		redirect string
	}{
		{"vendor without name", domain.KindVendor, `{"vendor_id":7}`, "/vendor-login"},
		{"vendor garbage", domain.KindVendor, `not json`, "/vendor-login"},
		{"user without email", domain.KindUser, `{"name":"Ada"}`, "/login"},
		{"user wrong types", domain.KindUser, `{"email":3}`, "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repository.NewMemoryStore()
			put(t, store, tt.kind, "s1", tt.raw)

			_, err := NewLoadSessionHandler(store).Handle(context.Background(), LoadSessionQuery{SessionID: "s1"})

			var corrupted *domain.CorruptedError
			require.ErrorAs(t, err, &corrupted)
			assert.Equal(t, tt.kind, corrupted.Kind)
			assert.Equal(t, tt.redirect, corrupted.RedirectTo())

			_, getErr := store.Get(context.Background(), domain.Key(tt.kind, "s1"))
			assert.ErrorIs(t, getErr, domain.ErrNotFound)
		})
	}
}

func TestLoadSession_BothCorruptedReportsVendor(t *testing.T) {
	store := repository.NewMemoryStore()
	put(t, store, domain.KindUser, "s1", `{}`)
	put(t, store, domain.KindVendor, "s1", `{}`)

	_, err := NewLoadSessionHandler(store).Handle(context.Background(), LoadSessionQuery{SessionID: "s1"})

	var corrupted *domain.CorruptedError
	require.ErrorAs(t, err, &corrupted)
	assert.Equal(t, domain.KindVendor, corrupted.Kind)

	_, getErr := store.Get(context.Background(), domain.Key(domain.KindUser, "s1"))
	assert.ErrorIs(t, getErr, domain.ErrNotFound)
}

type failingStore struct{ domain.Store }

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestLoadSession_StoreFailure(t *testing.T) {
	_, err := NewLoadSessionHandler(failingStore{}).Handle(context.Background(), LoadSessionQuery{SessionID: "s1"})

	require.Error(t, err)
	var corrupted *domain.CorruptedError
	assert.False(t, errors.As(err, &corrupted))
}

type fakeVendors struct {
	products []catalog.Product
	asked    int64
}

func (f *fakeVendors) ListVendors(context.Context) ([]catalog.Vendor, error) { return nil, nil }

func (f *fakeVendors) GetVendor(context.Context, int64) (*catalog.Vendor, error) { return nil, nil }

func (f *fakeVendors) ListVendorProducts(_ context.Context, id int64) ([]catalog.Product, error) {
	f.asked = id
	return f.products, nil
}

func TestVendorDashboard(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day := func(n int) catalog.Date {
		return catalog.NewDate(time.Date(2025, 3, 10+n, 0, 0, 0, 0, time.UTC))
	}
	vendors := &fakeVendors{products: []catalog.Product{
		{ID: 1, Quantity: 0, ExpiryDate: day(2)},
		{ID: 2, Quantity: 5, ExpiryDate: day(-3)},
		{ID: 3, Quantity: 5, ExpiryDate: day(20)},
	}}
	h := NewVendorDashboardHandler(vendors, func() time.Time { return now })

	s := &domain.Context{SessionID: "s1", Vendor: &domain.VendorRecord{VendorID: 7, VendorName: "Farm", AccessToken: "secret"}}
	dash, err := h.Handle(context.Background(), VendorDashboardQuery{Session: s})
	require.NoError(t, err)

	assert.Equal(t, int64(7), vendors.asked)
	assert.Equal(t, DashboardStats{Listings: 3, OutOfStock: 1, ExpiringSoon: 1, Expired: 1}, dash.Stats)
	assert.Empty(t, dash.Vendor.AccessToken)
	assert.Equal(t, "secret", s.Vendor.AccessToken)

	_, err = h.Handle(context.Background(), VendorDashboardQuery{Session: &domain.Context{}})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
