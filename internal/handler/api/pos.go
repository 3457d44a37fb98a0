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

type POSHandler struct {
	cmds commands.POSCommands
	q    queries.POSQueries
}

func NewPOSHandler(cmds commands.POSCommands, q queries.POSQueries) *POSHandler {
	return &POSHandler{cmds: cmds, q: q}
}

// @Summary Open POS session
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenSessionRequest true "Terminal"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/pos/sessions [post]
func (h *POSHandler) Open(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.OpenSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.cmds.Open(c.Request.Context(), p.ID, req.TerminalID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSession(s))
}

// @Summary Close POS session
// @Tags pos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/pos/sessions/{id}/close [post]
func (h *POSHandler) Close(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	s, err := h.cmds.Close(c.Request.Context(), p.ID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

// @Summary Get POS session
// @Tags pos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/pos/sessions/{id} [get]
func (h *POSHandler) Get(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), p.ID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}
