package http

import (
	"inventory-tracker/internal/stock"
	"inventory-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc stock.UseCase
}

// New creates a new HTTP handler for the stock domain.
func New(l log.Logger, uc stock.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
