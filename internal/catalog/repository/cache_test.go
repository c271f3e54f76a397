package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

type countingSource struct {
	products []domain.Product
	vendors  []domain.Vendor
	calls    map[string]int
	err      error
}

func newCountingSource() *countingSource {
	expiry := domain.NewDate(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))
	return &countingSource{
		products: []domain.Product{{ID: 1, Name: "milk", Price: 1.5, Quantity: 2, ExpiryDate: expiry, VendorID: 7}},
		vendors:  []domain.Vendor{{ID: 7, Name: "Green Grocer"}},
		calls:    map[string]int{},
	}
}

func (s *countingSource) ListProducts(context.Context) ([]domain.Product, error) {
	s.calls["ListProducts"]++
	return s.products, s.err
}

func (s *countingSource) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	s.calls["GetProduct"]++
	if s.err != nil {
		return nil, s.err
	}
	p := s.products[0]
	return &p, nil
}

func (s *countingSource) CreateProduct(_ context.Context, in domain.ProductInput) (*domain.Product, error) {
	s.calls["CreateProduct"]++
	return &domain.Product{ID: 2, Name: in.Name}, s.err
}

func (s *countingSource) UpdateProduct(_ context.Context, id int64, in domain.ProductInput) (*domain.Product, error) {
	s.calls["UpdateProduct"]++
	return &domain.Product{ID: id, Name: in.Name}, s.err
}

func (s *countingSource) DeleteProduct(context.Context, int64) error {
	s.calls["DeleteProduct"]++
	return s.err
}

func (s *countingSource) ListVendors(context.Context) ([]domain.Vendor, error) {
	s.calls["ListVendors"]++
	return s.vendors, s.err
}

func (s *countingSource) GetVendor(context.Context, int64) (*domain.Vendor, error) {
	s.calls["GetVendor"]++
	v := s.vendors[0]
	return &v, s.err
}

func (s *countingSource) ListVendorProducts(context.Context, int64) ([]domain.Product, error) {
	s.calls["ListVendorProducts"]++
	return s.products, s.err
}

func setup(t *testing.T) (*CachedCatalog, *countingSource, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	src := newCountingSource()
	return NewCachedCatalog(src, rdb, time.Minute), src, mr
}

func TestCachedCatalog_ServesRepeatReadsFromRedis(t *testing.T) {
	c, src, mr := setup(t)
	ctx := context.Background()

	first, err := c.ListProducts(ctx)
	require.NoError(t, err)
	second, err := c.ListProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "2025-03-12", second[0].ExpiryDate.String())
	assert.Equal(t, 1, src.calls["ListProducts"])
	assert.True(t, mr.Exists("catalog:products"))

	mr.FastForward(2 * time.Minute)
	_, err = c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls["ListProducts"])
}

func TestCachedCatalog_WriteInvalidates(t *testing.T) {
	c, src, mr := setup(t)
	ctx := context.Background()

	_, err := c.GetVendor(ctx, 7)
	require.NoError(t, err)
	_, err = c.ListVendorProducts(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 2)

	_, err = c.UpdateProduct(ctx, 1, domain.ProductInput{Name: "oat milk"})
	require.NoError(t, err)
	assert.Empty(t, mr.Keys())

	_, err = c.GetVendor(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls["GetVendor"])
}

func TestCachedCatalog_ErrorsAreNotCached(t *testing.T) {
	c, src, mr := setup(t)
	src.err = errors.New("backend down")

	_, err := c.ListVendors(context.Background())
	assert.ErrorIs(t, err, src.err)
	assert.False(t, mr.Exists("catalog:vendors"))
}

func TestCachedCatalog_RedisDownFallsThrough(t *testing.T) {
	c, src, mr := setup(t)
	mr.Close()

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, src.calls["ListProducts"])

	require.NoError(t, c.DeleteProduct(context.Background(), 1))
}
