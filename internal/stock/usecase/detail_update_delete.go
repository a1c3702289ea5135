package usecase

import (
	"context"

	"inventory-tracker/internal/stock"
	repo "inventory-tracker/internal/stock/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id uint64) (stock.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return stock.DetailItemOutput{}, err
	}
	if item.ID == 0 {
		return stock.DetailItemOutput{}, stock.ErrItemNotFound
	}
	return stock.DetailItemOutput{Item: stock.Describe(item, uc.today())}, nil
}

// Update modifies an existing Item, re-running create validation against the
// merged values. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input stock.UpdateItemInput) (stock.UpdateItemOutput, error) {
	// Ensure item exists
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return stock.UpdateItemOutput{}, err
	}
	if existing.ID == 0 {
		return stock.UpdateItemOutput{}, stock.ErrItemNotFound
	}

	if v := stock.ValidateFields(input.ItemFields, !input.Partial); v.HasErrors() {
		return stock.UpdateItemOutput{}, v
	}

	today := uc.today()
	merged := input.ItemFields.Apply(existing)
	if v := stock.ValidateStockable(merged, today); v.HasErrors() {
		return stock.UpdateItemOutput{}, v
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:       merged.ID,
		Name:     merged.Name,
		Price:    merged.Price,
		Expiry:   merged.Expiry,
		Quantity: merged.Quantity,
		LowStock: merged.LowStock,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return stock.UpdateItemOutput{}, err
	}
	if item.ID == 0 {
		return stock.UpdateItemOutput{}, stock.ErrItemNotFound
	}
	return stock.UpdateItemOutput{Item: stock.Describe(item, today)}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id uint64) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == 0 {
		return stock.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
