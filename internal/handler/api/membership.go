package api

import (
	"net/http"

	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	cmds commands.MembershipCommands
}

func NewMembershipHandler(cmds commands.MembershipCommands) *MembershipHandler {
	return &MembershipHandler{cmds: cmds}
}

// @Summary Issue membership token
// @Description Sign a 24h membership card token for the calling customer, ready to render as a QR code
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.MembershipTokenResponse
// @Failure 404 {object} httperr.Response
// @Router /api/membership/token [post]
func (h *MembershipHandler) IssueToken(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}

	token, err := h.cmds.IssueToken(c.Request.Context(), p.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMembershipToken(token))
}
