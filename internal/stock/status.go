package stock

import (
	"time"

	"inventory-tracker/pkg/datemath"
)

// InStock reports whether any units are on hand.
func InStock(quantity int64) bool {
	return quantity > 0
}

// IsExpired reports whether expiry is strictly before today.
// A zero expiry is treated as absent and never expired.
func IsExpired(expiry, today time.Time) bool {
	if expiry.IsZero() {
		return false
	}
	return datemath.DateOf(expiry).Before(datemath.DateOf(today))
}

// DaysRemaining returns the whole calendar days from today to expiry,
// clamped at 0, or nil when expiry is absent.
func DaysRemaining(expiry, today time.Time) *int {
	if expiry.IsZero() {
		return nil
	}
	days := max(datemath.DaysBetween(today, expiry), 0)
	return &days
}

// Describe pairs item with its derived status as of today.
func Describe(item Item, today time.Time) ItemView {
	return ItemView{
		Item: item,
		Status: Status{
			InStock:       InStock(item.Quantity),
			IsExpired:     IsExpired(item.Expiry, today),
			DaysRemaining: DaysRemaining(item.Expiry, today),
		},
	}
}
