package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidItem is returned for a product id that can never resolve
	ErrInvalidItem = errors.New("invalid cart item")
)

// CheckoutError reports an order call that failed part way through a
// checkout. Placed holds the orders that went through before it.
type CheckoutError struct {
	ProductID int64
	Placed    []Order
	Err       error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("failed to place order for product %d (%d placed): %v", e.ProductID, len(e.Placed), e.Err)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// PlacedIDs lists the ids of the orders placed before the failure
func (e *CheckoutError) PlacedIDs() []int64 {
	return OrderIDs(e.Placed)
}
