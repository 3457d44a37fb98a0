package api

import (
	"net/http"

	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/usecase/commands"
	"deals-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	cmds commands.PayoutCommands
	q    queries.PayoutQueries
}

func NewPayoutHandler(cmds commands.PayoutCommands, q queries.PayoutQueries) *PayoutHandler {
	return &PayoutHandler{cmds: cmds, q: q}
}

// @Summary Create payout batch
// @Description Gather a vendor's confirmed, unbatched commission events in the period into one batch
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePayoutBatchRequest true "Vendor and period"
// @Success 201 {object} resdto.BatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/payouts [post]
func (h *PayoutHandler) CreateBatch(c *gin.Context) {
	var req reqdto.CreatePayoutBatchRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.cmds.CreateBatch(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/admin/payouts/"+b.ID().String())
	c.JSON(http.StatusCreated, resdto.FromBatch(b))
}

// @Summary Mark payout batch paid
// @Description Record the external payment for a batch and settle its events
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Param request body reqdto.MarkBatchPaidRequest true "Payment details"
// @Success 200 {object} resdto.BatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/payouts/{id}/pay [post]
func (h *PayoutHandler) MarkPaid(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.MarkBatchPaidRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.cmds.MarkPaid(c.Request.Context(), req.ToInput(id))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBatch(b))
}

// @Summary Get payout batch
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Success 200 {object} resdto.BatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/payouts/{id} [get]
func (h *PayoutHandler) GetBatch(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetBatch(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBatchView(view))
}

// @Summary List vendor payout batches
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BatchResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/vendors/{id}/payouts [get]
func (h *PayoutHandler) ListVendorBatches(c *gin.Context) {
	vendorID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	cursor, limit := page(c)

	items, next, err := h.q.ListVendorBatches(c.Request.Context(), vendorID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("batches", resdto.FromBatchViews(items), next))
}
