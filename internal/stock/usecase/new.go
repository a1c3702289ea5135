package usecase

import (
	"time"

	"inventory-tracker/internal/stock/repository"
	"inventory-tracker/pkg/datemath"
	"inventory-tracker/pkg/log"
)

// implUseCase is the private implementation of stock.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new stock UseCase implementation. Calendar dates ("today")
// are resolved in the parser's time zone; now defaults to time.Now.
func New(repo repository.Repository, l log.Logger, dates *datemath.Parser, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		repo:  repo,
		l:     l,
		dates: dates,
		now:   now,
	}
}
