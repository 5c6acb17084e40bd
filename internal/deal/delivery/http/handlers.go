package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"deal-tracker/internal/deal"
	"deal-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a deal
// @Description Stores a new property deal. An address that matches an existing deal (case-insensitive) is rejected and the existing deal is returned.
// @Tags        Deals
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Deal data"
// @Success     201  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     409  {object} response.Resp "Conflict - data.existing_property holds the matching deal"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, deal.ErrDuplicateAddress) && output.Existing != nil {
			h.l.Infof(ctx, "uc.Create: duplicate of %s", output.Existing.ID)
			response.Error(c, errDuplicateAddress.WithData(duplicateResp{ExistingProperty: newDealResp(*output.Existing)}))
			return
		}
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List deals
// @Description Returns deals newest first. Without limit every deal is returned.
// @Tags        Deals
// @Produce     json
// @Param       limit  query int false "Page size (0 = all, max 500)"
// @Param       offset query int false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Portfolio statistics
// @Description Per-deal IRR, rent increase, purchase vs sale and hold time, plus portfolio totals.
// @Tags        Deals
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Detail godoc
// @Summary     Get deal detail
// @Description Returns a single deal by its id.
// @Tags        Deals
// @Produce     json
// @Param       id path string true "Deal ID"
// @Success     200 {object} dealResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDealResp(output.Deal))
}

// Update godoc
// @Summary     Update a deal
// @Description Partially updates a deal. Only the fields present in the body change. The fields may also be wrapped in "updateData".
// @Tags        Deals
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Deal ID"
// @Param       body body patchFields true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a deal
// @Description Permanently removes a deal by id.
// @Tags        Deals
// @Produce     json
// @Param       id path string true "Deal ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
