package http

import (
	"errors"

	"inventory-tracker/internal/stock"
	pkgErrors "inventory-tracker/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Validation errors pass through untouched; unknown errors render as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, stock.ErrItemNotFound):
		return pkgErrors.ErrNotFound
	default:
		return err
	}
}
