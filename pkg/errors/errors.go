package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// NonFieldErrorsKey collects messages that do not belong to a single field.
const NonFieldErrorsKey = "non_field_errors"

// HTTPError is an error that carries its own HTTP status.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
	Code       string `json:"code,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewHTTPError returns an HTTPError with the given status and detail.
func NewHTTPError(status int, detail string) *HTTPError {
	return &HTTPError{StatusCode: status, Detail: detail}
}

// NewHTTPErrorWithCode is NewHTTPError plus a machine-readable code.
func NewHTTPErrorWithCode(status int, detail, code string) *HTTPError {
	return &HTTPError{StatusCode: status, Detail: detail, Code: code}
}

var (
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found.")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided.")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Request was throttled.")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)

// ValidationError is a field-keyed rejection of an input payload.
// The zero value is empty and ready to use.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns a ValidationError holding a single message.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// Add appends message under field.
func (v *ValidationError) Add(field, message string) {
	if v.Fields == nil {
		v.Fields = make(map[string][]string)
	}
	v.Fields[field] = append(v.Fields[field], message)
}

// AddNonField appends a cross-field message.
func (v *ValidationError) AddNonField(message string) {
	v.Add(NonFieldErrorsKey, message)
}

// HasErrors reports whether any message was recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.Fields) > 0
}

// OrNil returns v as an error when it has messages, nil otherwise.
func (v *ValidationError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	if !v.HasErrors() {
		return "validation error"
	}
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(v.Fields[k], "; ")))
	}
	return "validation error: " + strings.Join(parts, ", ")
}
