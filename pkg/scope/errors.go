package scope

import "errors"

var (
	ErrMissingSecret  = errors.New("scope: jwt secret is required")
	ErrInvalidToken   = errors.New("token is invalid or expired")
	ErrWrongTokenType = errors.New("token has wrong type")
)
