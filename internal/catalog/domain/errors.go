package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidProduct wraps every product form validation failure
	ErrInvalidProduct = errors.New("invalid product")
	// ErrNotOwner is returned when a vendor touches another vendor's product
	ErrNotOwner = errors.New("product belongs to another vendor")
)

// Clock returns the current time; use cases take one so tests can pin "today"
type Clock func() time.Time
