package http

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"inventory-tracker/internal/stock"
	"inventory-tracker/pkg/datemath"
	pkgErrors "inventory-tracker/pkg/errors"
	"inventory-tracker/pkg/response"
)

// --- Request DTOs ---

// itemReq is shared by create, full update and partial update. Price and
// expiry are decoded loosely so that format errors can be keyed by field.
type itemReq struct {
	Name     *string      `json:"name"`
	Price    *decimalText `json:"price" swaggertype:"string" example:"3.49"`
	Expiry   *string      `json:"expiry" example:"2026-12-31"`
	Quantity *int64       `json:"quantity"`
	LowStock *int64       `json:"low_stock"`
}

func (r itemReq) toFields() (stock.ItemFields, error) {
	v := &pkgErrors.ValidationError{}
	f := stock.ItemFields{
		Name:     trimmed(r.Name),
		Quantity: r.Quantity,
		LowStock: r.LowStock,
	}

	if r.Price != nil {
		price, err := decimal.NewFromString(string(*r.Price))
		if err != nil {
			v.Add("price", stock.MsgInvalidNumber)
		} else {
			f.Price = &price
		}
	}
	if r.Expiry != nil {
		expiry, err := datemath.ParseDate(*r.Expiry)
		if err != nil {
			v.Add("expiry", stock.MsgInvalidDate)
		} else {
			f.Expiry = &expiry
		}
	}

	return f, v.OrNil()
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

type listReq struct {
	InStock       *bool  `form:"in_stock"`
	ExpiresBefore string `form:"expires_before"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

func (r listReq) toInput() stock.ListItemsInput {
	limit := r.Limit
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return stock.ListItemsInput{
		InStock:       r.InStock,
		ExpiresBefore: r.ExpiresBefore,
		Limit:         limit,
		Offset:        offset,
	}
}

// decimalText accepts a JSON number or string and keeps its text for
// parsing by toFields.
type decimalText string

func (d *decimalText) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = decimalText(s)
		return nil
	}
	*d = decimalText(b)
	return nil
}

// --- Response DTOs ---

type itemResp struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	Price         string            `json:"price" example:"3.49"`
	Added         response.DateTime `json:"added" swaggertype:"string" example:"2026-10-17T09:30:00Z"`
	Expiry        response.Date     `json:"expiry" swaggertype:"string" example:"2026-12-31"`
	Quantity      int64             `json:"quantity"`
	LowStock      int64             `json:"low_stock"`
	InStock       bool              `json:"in_stock"`
	DaysRemaining *int              `json:"days_remaining"`
	IsExpired     bool              `json:"is_expired"`
}

func newItemResp(v stock.ItemView) itemResp {
	return itemResp{
		ID:            v.ID,
		Name:          v.Name,
		Price:         v.Price.StringFixed(2),
		Added:         response.DateTime(v.Added),
		Expiry:        response.Date(v.Expiry),
		Quantity:      v.Quantity,
		LowStock:      v.LowStock,
		InStock:       v.InStock,
		DaysRemaining: v.DaysRemaining,
		IsExpired:     v.IsExpired,
	}
}

func (h *handler) newListResp(out stock.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return items
}
