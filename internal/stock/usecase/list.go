package usecase

import (
	"context"

	"inventory-tracker/internal/stock"
	repo "inventory-tracker/internal/stock/repository"
	pkgErrors "inventory-tracker/pkg/errors"
)

// List returns a page of Items with derived status.
func (uc *implUseCase) List(ctx context.Context, input stock.ListItemsInput) (stock.ListItemsOutput, error) {
	return uc.list(ctx, input, false)
}

// LowStock returns Items whose quantity is at or below their threshold.
func (uc *implUseCase) LowStock(ctx context.Context, input stock.ListItemsInput) (stock.ListItemsOutput, error) {
	return uc.list(ctx, input, true)
}

func (uc *implUseCase) list(ctx context.Context, input stock.ListItemsInput, lowStockOnly bool) (stock.ListItemsOutput, error) {
	opt := repo.ListItemsOptions{
		InStock:      input.InStock,
		LowStockOnly: lowStockOnly,
		Limit:        input.Limit,
		Offset:       input.Offset,
	}

	if input.ExpiresBefore != "" {
		before, err := uc.dates.Parse(input.ExpiresBefore, uc.now())
		if err != nil {
			return stock.ListItemsOutput{}, pkgErrors.NewValidationError("expires_before", stock.MsgInvalidDateFilter)
		}
		opt.ExpiresBefore = &before
	}
	if lowStockOnly {
		opt.OrderBy = "expiry ASC"
	}

	items, total, err := uc.repo.ListItems(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return stock.ListItemsOutput{}, err
	}

	return stock.ListItemsOutput{
		Items:  uc.describeAll(items),
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

