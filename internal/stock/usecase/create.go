package usecase

import (
	"context"

	"inventory-tracker/internal/stock"
	repo "inventory-tracker/internal/stock/repository"
)

// Create validates and persists a new Item.
func (uc *implUseCase) Create(ctx context.Context, input stock.CreateItemInput) (stock.CreateItemOutput, error) {
	if v := stock.ValidateFields(input.ItemFields, true); v.HasErrors() {
		return stock.CreateItemOutput{}, v
	}

	today := uc.today()
	candidate := input.ItemFields.Apply(stock.Item{})
	if v := stock.ValidateStockable(candidate, today); v.HasErrors() {
		return stock.CreateItemOutput{}, v
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:     candidate.Name,
		Price:    candidate.Price,
		Expiry:   candidate.Expiry,
		Quantity: candidate.Quantity,
		LowStock: candidate.LowStock,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return stock.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "item %d created (quantity=%d)", item.ID, item.Quantity)
	return stock.CreateItemOutput{Item: stock.Describe(item, today)}, nil
}
