package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory-tracker/internal/stock"
	pkgErrors "inventory-tracker/pkg/errors"
)

// processItemReq binds the JSON body and converts it to domain fields.
func (h *handler) processItemReq(c *gin.Context) (stock.ItemFields, error) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return stock.ItemFields{}, bindError(err)
	}
	return req.toFields()
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (stock.ListItemsInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return stock.ListItemsInput{}, pkgErrors.NewValidationError(pkgErrors.NonFieldErrorsKey, err.Error())
	}
	return req.toInput(), nil
}

// processID parses the :id path parameter. Non-numeric ids cannot match a
// row and are reported as not found.
func (h *handler) processID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, pkgErrors.ErrNotFound
	}
	return id, nil
}

// bindError turns JSON decoding failures into field-keyed validation errors.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		msg := stock.MsgInvalidInteger
		if typeErr.Field == "name" || typeErr.Field == "expiry" {
			msg = "Not a valid string."
		} else if typeErr.Field == "price" {
			msg = stock.MsgInvalidNumber
		}
		return pkgErrors.NewValidationError(typeErr.Field, msg)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return pkgErrors.NewValidationError(pkgErrors.NonFieldErrorsKey,
			fmt.Sprintf("JSON parse error - %v", err))
	}
	if errors.Is(err, io.EOF) {
		return pkgErrors.NewValidationError(pkgErrors.NonFieldErrorsKey, "No data provided")
	}
	return pkgErrors.NewValidationError(pkgErrors.NonFieldErrorsKey, err.Error())
}
