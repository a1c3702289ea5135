package stock

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"inventory-tracker/pkg/datemath"
	pkgErrors "inventory-tracker/pkg/errors"
)

const (
	nameMaxLength   = 100
	priceMaxDecimal = 2
	priceMaxWhole   = 8
)

var priceWholeLimit = decimal.New(1, priceMaxWhole)

// ValidateFields checks each provided field on its own. With requireAll every
// writable field must be present (create and full update).
func ValidateFields(f ItemFields, requireAll bool) *pkgErrors.ValidationError {
	v := &pkgErrors.ValidationError{}

	if f.Name == nil {
		if requireAll {
			v.Add("name", MsgRequired)
		}
	} else if *f.Name == "" {
		v.Add("name", MsgBlank)
	} else if utf8.RuneCountInString(*f.Name) > nameMaxLength {
		v.Add("name", MsgNameTooLong)
	}

	if f.Price == nil {
		if requireAll {
			v.Add("price", MsgRequired)
		}
	} else {
		validatePrice(v, *f.Price)
	}

	if f.Expiry == nil && requireAll {
		v.Add("expiry", MsgRequired)
	}

	if f.Quantity == nil {
		if requireAll {
			v.Add("quantity", MsgRequired)
		}
	} else if *f.Quantity < 0 {
		v.Add("quantity", MsgQuantityNegative)
	}

	if f.LowStock == nil {
		if requireAll {
			v.Add("low_stock", MsgRequired)
		}
	} else if *f.LowStock < 0 {
		v.Add("low_stock", MsgLowStockNegative)
	}

	return v
}

func validatePrice(v *pkgErrors.ValidationError, price decimal.Decimal) {
	if price.IsNegative() {
		v.Add("price", MsgPriceNegative)
		return
	}
	if !price.Equal(price.Truncate(priceMaxDecimal)) {
		v.Add("price", MsgPriceDecimals)
	}
	if price.GreaterThanOrEqual(priceWholeLimit) {
		v.Add("price", MsgPriceWholeDigits)
	}
}

// ValidateStockable applies the cross-field rule to the effective item:
// a positive quantity may not be stocked on or after its expiry date.
func ValidateStockable(item Item, today time.Time) *pkgErrors.ValidationError {
	v := &pkgErrors.ValidationError{}
	if item.Expiry.IsZero() {
		return v
	}
	expiredOrToday := !datemath.DateOf(item.Expiry).After(datemath.DateOf(today))
	if expiredOrToday && item.Quantity > 0 {
		v.AddNonField(MsgExpiredWithStock)
	}
	return v
}

// Apply overlays the provided fields onto base.
func (f ItemFields) Apply(base Item) Item {
	if f.Name != nil {
		base.Name = *f.Name
	}
	if f.Price != nil {
		base.Price = f.Price.Round(priceMaxDecimal)
	}
	if f.Expiry != nil {
		base.Expiry = datemath.DateOf(*f.Expiry)
	}
	if f.Quantity != nil {
		base.Quantity = *f.Quantity
	}
	if f.LowStock != nil {
		base.LowStock = *f.LowStock
	}
	return base
}
