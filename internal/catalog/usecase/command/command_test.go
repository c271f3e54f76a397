package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func date(offset int) domain.Date {
	return domain.NewDate(time.Date(2025, 3, 10+offset, 0, 0, 0, 0, time.UTC))
}

type fakeProducts struct {
	existing map[int64]domain.Product
	created  []domain.ProductInput
	updated  map[int64]domain.ProductInput
	deleted  []int64
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{
		existing: map[int64]domain.Product{
			10: {ID: 10, Name: "bread", Price: 2, Quantity: 3, ExpiryDate: date(4), VendorID: 7},
			11: {ID: 11, Name: "eggs", Price: 3, Quantity: 12, ExpiryDate: date(6), VendorID: 8},
		},
		updated: map[int64]domain.ProductInput{},
	}
}

func (f *fakeProducts) ListProducts(context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProducts) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := f.existing[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &p, nil
}

func (f *fakeProducts) CreateProduct(_ context.Context, in domain.ProductInput) (*domain.Product, error) {
	f.created = append(f.created, in)
	return &domain.Product{ID: 99, Name: in.Name, Price: in.Price, Quantity: in.Quantity, ExpiryDate: in.ExpiryDate, VendorID: in.VendorID}, nil
}

func (f *fakeProducts) UpdateProduct(_ context.Context, id int64, in domain.ProductInput) (*domain.Product, error) {
	f.updated[id] = in
	return &domain.Product{ID: id, Name: in.Name, Price: in.Price, Quantity: in.Quantity, ExpiryDate: in.ExpiryDate, VendorID: in.VendorID}, nil
}

func (f *fakeProducts) DeleteProduct(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateProduct_Valid(t *testing.T) {
	repo := newFakeProducts()
	h := NewCreateProductHandler(repo, fixedClock)

	p, err := h.Handle(context.Background(), CreateProductCommand{
		VendorID: 7, Name: " yogurt ", Price: 1.2, Quantity: 4, ExpiryDate: date(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), p.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "yogurt", repo.created[0].Name)
	assert.Equal(t, int64(7), repo.created[0].VendorID)
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateProductCommand
		msg  string
	}{
		{"no vendor", CreateProductCommand{Name: "x", Price: 1, Quantity: 1, ExpiryDate: date(1)}, "vendor information missing"},
		{"no name", CreateProductCommand{VendorID: 7, Price: 1, Quantity: 1, ExpiryDate: date(1)}, "name is required"},
		{"zero price", CreateProductCommand{VendorID: 7, Name: "x", Quantity: 1, ExpiryDate: date(1)}, "greater than zero"},
		{"zero quantity", CreateProductCommand{VendorID: 7, Name: "x", Price: 1, ExpiryDate: date(1)}, "greater than zero"},
		{"no expiry", CreateProductCommand{VendorID: 7, Name: "x", Price: 1, Quantity: 1}, "expiry date is required"},
		{"past expiry", CreateProductCommand{VendorID: 7, Name: "x", Price: 1, Quantity: 1, ExpiryDate: date(-1)}, "in the past"},
		// midnight today is already behind the 09:00 clock
		{"today", CreateProductCommand{VendorID: 7, Name: "x", Price: 1, Quantity: 1, ExpiryDate: date(0)}, "in the past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeProducts()
			_, err := NewCreateProductHandler(repo, fixedClock).Handle(context.Background(), tt.cmd)

			assert.ErrorIs(t, err, domain.ErrInvalidProduct)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, repo.created)
		})
	}
}

func TestUpdateProduct_KeepsExpiryWhenOmitted(t *testing.T) {
	repo := newFakeProducts()
	h := NewUpdateProductHandler(repo)

	p, err := h.Handle(context.Background(), UpdateProductCommand{
		VendorID: 7, ProductID: 10, Name: "bread", Price: 1.5, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, date(4), repo.updated[10].ExpiryDate)
}

func TestUpdateProduct_RejectsOtherVendor(t *testing.T) {
	repo := newFakeProducts()

	_, err := NewUpdateProductHandler(repo).Handle(context.Background(), UpdateProductCommand{
		VendorID: 7, ProductID: 11, Name: "eggs", Price: 1, Quantity: 1,
	})

	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.Empty(t, repo.updated)
}

func TestUpdateProduct_Validation(t *testing.T) {
	h := NewUpdateProductHandler(newFakeProducts())

	_, err := h.Handle(context.Background(), UpdateProductCommand{VendorID: 7, ProductID: 10, Name: "x", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)

	_, err = h.Handle(context.Background(), UpdateProductCommand{VendorID: 7, ProductID: 10, Name: "x", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProducts()
	h := NewDeleteProductHandler(repo)

	require.NoError(t, h.Handle(context.Background(), DeleteProductCommand{VendorID: 7, ProductID: 10}))
	assert.Equal(t, []int64{10}, repo.deleted)

	err := h.Handle(context.Background(), DeleteProductCommand{VendorID: 7, ProductID: 11})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	err = h.Handle(context.Background(), DeleteProductCommand{VendorID: 0, ProductID: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	assert.Equal(t, []int64{10}, repo.deleted)
}
