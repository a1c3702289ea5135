package repository

import (
	"context"

	"inventory-tracker/internal/stock"
)

// Repository is the composed interface for the stock domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (stock.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (stock.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]stock.Item, int64, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (stock.Item, error)
	DeleteItem(ctx context.Context, id uint64) error
}
