package api

import (
	"net/http"

	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	cmds commands.TransactionCommands
}

func NewTransactionHandler(cmds commands.TransactionCommands) *TransactionHandler {
	return &TransactionHandler{cmds: cmds}
}

// @Summary Complete transaction
// @Description Settle the bill for a verified claim. Savings are computed server-side.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CompleteTransactionRequest true "Bill details"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/transactions [post]
func (h *TransactionHandler) Complete(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CompleteTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Complete(c.Request.Context(), req.ToInput(p.ID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTransactionResult(result))
}

// @Summary PIN checkout
// @Description Settle an in-store sale by deal PIN for a customer identified by membership card
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PINCheckoutRequest true "Checkout details"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/transactions/pin [post]
func (h *TransactionHandler) PINCheckout(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.PINCheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.PINCheckout(c.Request.Context(), req.ToInput(p.ID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTransactionResult(result))
}
