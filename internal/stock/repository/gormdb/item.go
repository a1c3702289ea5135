package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inventory-tracker/internal/stock"
	repo "inventory-tracker/internal/stock/repository"
)

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (stock.Item, error) {
	m := itemModel{
		Name:     opt.Name,
		Price:    opt.Price,
		Expiry:   opt.Expiry,
		Quantity: opt.Quantity,
		LowStock: opt.LowStock,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return stock.Item{}, repo.ErrFailedToInsert
	}
	return m.toEntity(), nil
}

// GetOneItem retrieves a single Item by the provided filters.
// Returns zero-value Item (ID == 0) when not found; not-found is not an error.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (stock.Item, error) {
	var m itemModel
	err := r.buildGetOneQuery(r.db.WithContext(ctx), opt).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stock.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return stock.Item{}, repo.ErrFailedToGet
	}
	return m.toEntity(), nil
}

// ListItems returns a page of Items and the total count ignoring pagination.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]stock.Item, int64, error) {
	filtered := r.buildFilterQuery(r.db.WithContext(ctx).Model(&itemModel{}), opt)

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	var models []itemModel
	if err := r.buildPageQuery(filtered, opt).Find(&models).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	items := make([]stock.Item, len(models))
	for i, m := range models {
		items[i] = m.toEntity()
	}
	return items, total, nil
}

// UpdateItem overwrites the writable columns of an Item and returns it.
// Returns zero-value Item when the row does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (stock.Item, error) {
	var m itemModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&itemModel{ID: opt.ID}).Updates(map[string]any{
			"name":      opt.Name,
			"price":     opt.Price,
			"expiry":    opt.Expiry,
			"quantity":  opt.Quantity,
			"low_stock": opt.LowStock,
		})
		if res.Error != nil {
			return res.Error
		}
		return tx.Take(&m, opt.ID).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stock.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return stock.Item{}, repo.ErrFailedToUpdate
	}
	return m.toEntity(), nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&itemModel{}, id).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
