package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name     string
	Price    decimal.Decimal
	Expiry   time.Time
	Quantity int64
	LowStock int64
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID uint64
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
type ListItemsOptions struct {
	InStock       *bool
	ExpiresBefore *time.Time
	// LowStockOnly keeps items whose quantity is at or below low_stock.
	LowStockOnly bool
	Limit        int
	Offset       int
	OrderBy      string
}

// UpdateItemOptions holds the full set of writable columns for an Item.
// Added is never updated.
type UpdateItemOptions struct {
	ID       uint64
	Name     string
	Price    decimal.Decimal
	Expiry   time.Time
	Quantity int64
	LowStock int64
}
