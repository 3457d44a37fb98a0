package api

import (
	"net/http"

	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	cmds commands.DealCommands
}

func NewDealHandler(cmds commands.DealCommands) *DealHandler {
	return &DealHandler{cmds: cmds}
}

// @Summary Create deal
// @Description Register a deal for the calling vendor. In-store deals get a generated PIN unless one is supplied.
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDealRequest true "Deal"
// @Success 201 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateDealRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.cmds.Create(c.Request.Context(), req.ToInput(p.ID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDeal(d))
}
