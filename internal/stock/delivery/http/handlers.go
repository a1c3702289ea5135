package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory-tracker/internal/stock"
	"inventory-tracker/pkg/response"
)

// Create godoc
// @Summary     Create an item
// @Description Creates a stocked item. Expired items cannot be created with a positive quantity.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body itemReq true "Item data"
// @Success     201  {object} itemResp
// @Failure     400  {object} map[string][]string "Validation errors"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/items/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	fields, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, stock.CreateItemInput{ItemFields: fields})
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.audit(ctx, "created", output.Item.ID)
	response.Created(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List items
// @Description Returns items ordered by id. The total count is sent in X-Total-Count.
// @Tags        Items
// @Produce     json
// @Param       in_stock       query bool   false "Filter by stock presence"
// @Param       expires_before query string false "Date (YYYY-MM-DD) or relative expression such as 'in 3 days'"
// @Param       limit          query int    false "Page size (0 = no limit)"
// @Param       offset         query int    false "Page offset"
// @Success     200 {array}  itemResp
// @Failure     400 {object} map[string][]string "Validation errors"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/ [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(output.Total, 10))
	response.OK(c, h.newListResp(output))
}

// LowStock godoc
// @Summary     Low-stock report
// @Description Returns items whose quantity is at or below their low_stock threshold, soonest expiry first.
// @Tags        Items
// @Produce     json
// @Param       limit  query int false "Page size (0 = no limit)"
// @Param       offset query int false "Page offset"
// @Success     200 {array}  itemResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/low-stock/ [GET]
func (h *handler) LowStock(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.LowStock(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.LowStock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(output.Total, 10))
	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get an item
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/ [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Replace an item
// @Description Full update; every writable field is required.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int     true "Item ID"
// @Param       body body itemReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} map[string][]string "Validation errors"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/ [PUT]
func (h *handler) Update(c *gin.Context) {
	h.update(c, false)
}

// Patch godoc
// @Summary     Partially update an item
// @Description Only provided fields change; validation runs against the merged record.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int     true "Item ID"
// @Param       body body itemReq true "Fields to change"
// @Success     200 {object} itemResp
// @Failure     400 {object} map[string][]string "Validation errors"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/ [PATCH]
func (h *handler) Patch(c *gin.Context) {
	h.update(c, true)
}

func (h *handler) update(c *gin.Context, partial bool) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fields, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, stock.UpdateItemInput{
		ID:         id,
		Partial:    partial,
		ItemFields: fields,
	})
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.audit(ctx, "updated", id)

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Items
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     204
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/ [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.audit(ctx, "deleted", id)

	response.NoContent(c)
}
