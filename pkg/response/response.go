package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-tracker/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error renders err according to its type:
// validation errors as 400 with the field map, HTTP errors with their own
// status, everything else as 500.
func Error(c *gin.Context, err error) {
	var vErr *pkgErrors.ValidationError
	if errors.As(err, &vErr) {
		ValidationError(c, vErr)
		return
	}

	var hErr *pkgErrors.HTTPError
	if errors.As(err, &hErr) {
		c.JSON(hErr.StatusCode, Resp{Detail: hErr.Detail, Code: hErr.Code})
		return
	}

	InternalError(c, err)
}

// ValidationError sends 400 with the field → messages map as the body.
func ValidationError(c *gin.Context, err *pkgErrors.ValidationError) {
	fields := err.Fields
	if fields == nil {
		fields = map[string][]string{}
	}
	c.JSON(http.StatusBadRequest, fields)
}

// InternalError sends 500 without exposing err.
func InternalError(c *gin.Context, err error) {
	c.JSON(pkgErrors.ErrInternalServerError.StatusCode, Resp{Detail: pkgErrors.ErrInternalServerError.Detail})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context, detail string) {
	if detail == "" {
		detail = pkgErrors.ErrUnauthorized.Detail
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{Detail: detail})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{Detail: pkgErrors.ErrTooManyRequests.Detail})
}
