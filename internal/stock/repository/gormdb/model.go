package gormdb

import (
	"time"

	"github.com/shopspring/decimal"

	"inventory-tracker/internal/stock"
	"inventory-tracker/pkg/datemath"
)

type itemModel struct {
	ID       uint64          `gorm:"primaryKey;autoIncrement"`
	Name     string          `gorm:"size:100;not null"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Added    time.Time       `gorm:"autoCreateTime;not null"`
	Expiry   time.Time       `gorm:"type:date;not null;index"`
	Quantity int64           `gorm:"not null;check:chk_items_quantity,quantity >= 0"`
	LowStock int64           `gorm:"not null;check:chk_items_low_stock,low_stock >= 0"`
}

func (itemModel) TableName() string {
	return "items"
}

func (m itemModel) toEntity() stock.Item {
	return stock.Item{
		ID:       m.ID,
		Name:     m.Name,
		Price:    m.Price.Round(2),
		Added:    m.Added.UTC(),
		Expiry:   datemath.DateOf(m.Expiry),
		Quantity: m.Quantity,
		LowStock: m.LowStock,
	}
}
