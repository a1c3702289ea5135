package http

import (
	"context"

	"inventory-tracker/internal/model"
)

// audit records which caller changed an item.
func (h *handler) audit(ctx context.Context, action string, id uint64) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		h.l.Warnf(ctx, "item %d %s without an authenticated caller", id, action)
		return
	}
	h.l.Infof(ctx, "item %d %s by user %d", id, action, sc.UserID)
}
