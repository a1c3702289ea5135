package gormdb

import (
	"fmt"

	"gorm.io/gorm"

	"inventory-tracker/internal/user/repository"
	"inventory-tracker/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the user domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/gormdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates or updates the users table and its unique indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{})
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/gormdb.%s", method)
}
