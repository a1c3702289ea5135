package repository

import "errors"

var (
	ErrDuplicateKey   = errors.New("unique constraint violated")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToGet    = errors.New("failed to get")
)
