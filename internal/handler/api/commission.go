package api

import (
	"errors"
	"net/http"

	"deals-engine/internal/domain/user"
	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/usecase/commands"
	"deals-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errVendorRequired = errors.New("vendor_id is required")

type CommissionHandler struct {
	cmds commands.CommissionCommands
	q    queries.CommissionQueries
}

func NewCommissionHandler(cmds commands.CommissionCommands, q queries.CommissionQueries) *CommissionHandler {
	return &CommissionHandler{cmds: cmds, q: q}
}

// @Summary Record affiliate click
// @Description Record a pending click commission on a deal. Vendors are bound to their own deals.
// @Tags commissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordClickRequest true "Clicked deal"
// @Success 201 {object} resdto.CommissionEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/commissions/clicks [post]
func (h *CommissionHandler) RecordClick(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.RecordClickRequest
	if !bindJSON(c, &req) {
		return
	}

	input := commands.RecordClickInput{DealID: req.DealID}
	switch {
	case p.Is(user.RoleVendor):
		input.VendorID = p.ID
	case req.VendorID != nil:
		input.VendorID = *req.VendorID
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, errVendorRequired, "vendor_id is required", httperr.Detail{Code: "VALIDATION_FAILED"})
		return
	}

	e, err := h.cmds.RecordClick(c.Request.Context(), input)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommissionEvent(e))
}

// @Summary Confirm conversion
// @Description Convert a pending commission event into a confirmed conversion at the vendor's rate
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission event ID"
// @Param request body reqdto.ConfirmConversionRequest true "Sale amount"
// @Success 200 {object} resdto.CommissionEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/commissions/{id}/confirm [post]
func (h *CommissionHandler) ConfirmConversion(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ConfirmConversionRequest
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.cmds.ConfirmConversion(c.Request.Context(), commands.ConfirmConversionInput{
		EventID:    id,
		SaleAmount: *req.SaleAmount,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommissionEvent(e))
}

// @Summary Commission overview
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed or paid"
// @Param from query string false "RFC 3339 lower bound on occurred_at"
// @Param to query string false "RFC 3339 upper bound on occurred_at"
// @Success 200 {object} resdto.CommissionOverviewResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/commissions/overview [get]
func (h *CommissionHandler) Overview(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	overview, err := h.q.Overview(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommissionOverview(overview))
}

// @Summary Vendor commission performance
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed or paid"
// @Param from query string false "RFC 3339 lower bound on occurred_at"
// @Param to query string false "RFC 3339 upper bound on occurred_at"
// @Success 200 {array} resdto.VendorPerformanceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/commissions/vendors [get]
func (h *CommissionHandler) VendorPerformance(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	perf, err := h.q.VendorPerformance(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": resdto.FromVendorPerformance(perf)})
}

// @Summary List vendor commission events
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param status query string false "pending, confirmed or paid"
// @Param from query string false "RFC 3339 lower bound on occurred_at"
// @Param to query string false "RFC 3339 upper bound on occurred_at"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.CommissionEventResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/vendors/{id}/commissions [get]
func (h *CommissionHandler) ListVendorEvents(c *gin.Context) {
	vendorID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	cursor, limit := page(c)

	items, next, err := h.q.ListVendorEvents(c.Request.Context(), vendorID, filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("events", resdto.FromCommissionEventViews(items), next))
}

func bindFilter(c *gin.Context) (queries.CommissionFilter, bool) {
	var q reqdto.CommissionFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", httperr.Detail{Code: "INVALID_FILTER"})
		return queries.CommissionFilter{}, false
	}
	return q.ToFilter(), true
}
