package http

import (
	"errors"
	"net/http"

	"inventory-tracker/internal/user"
	pkgErrors "inventory-tracker/pkg/errors"
)

var errTokenNotValid = pkgErrors.NewHTTPErrorWithCode(http.StatusUnauthorized,
	"Token is invalid or expired", "token_not_valid")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidToken):
		return errTokenNotValid
	default:
		return err
	}
}
