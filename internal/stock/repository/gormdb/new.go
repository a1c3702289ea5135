package gormdb

import (
	"fmt"

	"gorm.io/gorm"

	"inventory-tracker/internal/stock/repository"
	"inventory-tracker/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the stock domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("stock/repository/gormdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates or updates the items table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&itemModel{})
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("stock/repository/gormdb.%s", method)
}
