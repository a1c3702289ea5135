package gormdb

import (
	"gorm.io/gorm"

	repo "inventory-tracker/internal/stock/repository"
	"inventory-tracker/pkg/datemath"
)

var allowedOrderBy = map[string]bool{
	"id ASC":      true,
	"id DESC":     true,
	"expiry ASC":  true,
	"expiry DESC": true,
	"name ASC":    true,
}

// buildGetOneQuery applies the single-item filters.
func (r *implRepository) buildGetOneQuery(db *gorm.DB, opt repo.GetOneItemOptions) *gorm.DB {
	if opt.ID != 0 {
		db = db.Where("id = ?", opt.ID)
	}
	return db
}

// buildFilterQuery applies the WHERE conditions shared by count and page.
func (r *implRepository) buildFilterQuery(db *gorm.DB, opt repo.ListItemsOptions) *gorm.DB {
	if opt.InStock != nil {
		if *opt.InStock {
			db = db.Where("quantity > 0")
		} else {
			db = db.Where("quantity = 0")
		}
	}
	if opt.ExpiresBefore != nil {
		// expiry is a date column; bind a date so no time zone is applied.
		db = db.Where("expiry < ?", opt.ExpiresBefore.Format(datemath.DateLayout))
	}
	if opt.LowStockOnly {
		db = db.Where("quantity <= low_stock")
	}
	return db
}

// buildPageQuery adds ORDER, LIMIT and OFFSET on top of the filters.
func (r *implRepository) buildPageQuery(db *gorm.DB, opt repo.ListItemsOptions) *gorm.DB {
	orderBy := opt.OrderBy
	if !allowedOrderBy[orderBy] {
		orderBy = "id ASC"
	}
	db = db.Order(orderBy)

	if opt.Limit > 0 {
		db = db.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		db = db.Offset(opt.Offset)
	}
	return db
}
