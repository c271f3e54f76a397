package domain

import (
	"math"
	"time"
)

// ExpiryStatus is the display label for a product's expiry date
type ExpiryStatus string

const (
	StatusNoExpiry     ExpiryStatus = "No Expiry Date"
	StatusExpired      ExpiryStatus = "Expired"
	StatusExpiringSoon ExpiryStatus = "Expiring Soon"
	StatusFresh        ExpiryStatus = "Fresh"
)

// expiringSoonDays is the inclusive upper bound of the "Expiring Soon" label
const expiringSoonDays = 3

// DaysUntil returns ceil((expiry - now) / 24h). ok is false when there is no date.
func DaysUntil(expiry Date, now time.Time) (days int, ok bool) {
	if expiry.IsZero() {
		return 0, false
	}
	diff := expiry.Time().Sub(now).Hours() / 24
	// ceil of a small negative fraction is -0, which int() folds to 0
	return int(math.Ceil(diff)), true
}

// ClassifyExpiry labels an expiry date relative to now
func ClassifyExpiry(expiry Date, now time.Time) ExpiryStatus {
	days, ok := DaysUntil(expiry, now)
	switch {
	case !ok:
		return StatusNoExpiry
	case days < 0:
		return StatusExpired
	case days <= expiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusFresh
	}
}

// ProductView decorates a product with its expiry label for display
type ProductView struct {
	Product
	Status   ExpiryStatus `json:"status"`
	DaysLeft *int         `json:"days_left"`
}

func NewProductView(p Product, now time.Time) ProductView {
	v := ProductView{Product: p, Status: ClassifyExpiry(p.ExpiryDate, now)}
	if days, ok := DaysUntil(p.ExpiryDate, now); ok {
		v.DaysLeft = &days
	}
	return v
}

// NewProductViews decorates products, preserving order
func NewProductViews(products []Product, now time.Time) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p, now))
	}
	return views
}
