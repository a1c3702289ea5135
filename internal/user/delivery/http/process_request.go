package http

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-tracker/pkg/errors"
)

func (h *handler) processSignupReq(c *gin.Context) (signupReq, error) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return signupReq{}, bindError(err)
	}
	return req, nil
}

func (h *handler) processVerifyReq(c *gin.Context) (verifyReq, error) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return verifyReq{}, bindError(err)
	}
	if req.Token == "" {
		return verifyReq{}, pkgErrors.NewValidationError("token", "This field is required.")
	}
	return req, nil
}

func (h *handler) processRefreshReq(c *gin.Context) (refreshReq, error) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return refreshReq{}, bindError(err)
	}
	if req.Refresh == "" {
		return refreshReq{}, pkgErrors.NewValidationError("refresh", "This field is required.")
	}
	return req, nil
}

func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return pkgErrors.NewValidationError(typeErr.Field, "Not a valid string.")
	}
	if errors.Is(err, io.EOF) {
		return pkgErrors.NewValidationError(pkgErrors.NonFieldErrorsKey, "No data provided")
	}
	return pkgErrors.NewValidationError(pkgErrors.NonFieldErrorsKey, "JSON parse error - "+err.Error())
}
