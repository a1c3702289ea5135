package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Item Domain Model ---

// Item is a stocked product as persisted. Expiry is a calendar date held as
// midnight UTC.
type Item struct {
	ID       uint64
	Name     string
	Price    decimal.Decimal
	Added    time.Time
	Expiry   time.Time
	Quantity int64
	LowStock int64
}

// Status holds the fields derived from an Item at read time.
type Status struct {
	InStock       bool
	IsExpired     bool
	DaysRemaining *int
}

// ItemView is an Item together with its derived Status.
type ItemView struct {
	Item
	Status
}

// ItemFields carries writable item attributes. Nil means "not provided".
type ItemFields struct {
	Name     *string
	Price    *decimal.Decimal
	Expiry   *time.Time
	Quantity *int64
	LowStock *int64
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	ItemFields
}

type UpdateItemInput struct {
	ID uint64
	// Partial updates only touch provided fields; full updates require all.
	Partial bool
	ItemFields
}

type ListItemsInput struct {
	InStock       *bool
	ExpiresBefore string // absolute date or relative expression
	Limit         int
	Offset        int
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item ItemView
}

type ListItemsOutput struct {
	Items  []ItemView
	Total  int64
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item ItemView
}

type UpdateItemOutput struct {
	Item ItemView
}
