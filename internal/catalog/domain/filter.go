package domain

import "time"

// FilterCriteria narrows a product listing. ExpiryWindowDays only applies
// when ExpiringSoon is set.
type FilterCriteria struct {
	MaxPrice         float64 `json:"max_price"`
	ExpiryWindowDays int     `json:"expiry_window_days"`
	InStock          bool    `json:"in_stock"`
	ExpiringSoon     bool    `json:"expiring_soon"`
}

// DefaultCriteria is what the filter panel starts with
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		MaxPrice:         10,
		ExpiryWindowDays: 30,
	}
}

// Apply runs the price, expiring-soon and in-stock stages in that order.
// The result is a new slice holding the surviving products in input order;
// products is never modified. A product without an expiry date never survives
// the expiring-soon stage.
func Apply(products []Product, c FilterCriteria, now time.Time) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Price > c.MaxPrice {
			continue
		}
		if c.ExpiringSoon {
			days, ok := DaysUntil(p.ExpiryDate, now)
			if !ok || days > c.ExpiryWindowDays {
				continue
			}
		}
		if c.InStock && !p.InStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}
