package http

import (
	"inventory-tracker/internal/user"
	"inventory-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for signup and token endpoints.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
