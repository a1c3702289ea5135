package usecase

import (
	"time"

	"inventory-tracker/internal/stock"
)

// today returns the current calendar date in the configured zone.
func (uc *implUseCase) today() time.Time {
	return uc.dates.Today(uc.now())
}

// describeAll attaches derived status to every item as of today.
func (uc *implUseCase) describeAll(items []stock.Item) []stock.ItemView {
	today := uc.today()
	views := make([]stock.ItemView, len(items))
	for i, item := range items {
		views[i] = stock.Describe(item, today)
	}
	return views
}
