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

type ClaimHandler struct {
	cmds commands.ClaimCommands
	q    queries.ClaimQueries
}

func NewClaimHandler(cmds commands.ClaimCommands, q queries.ClaimQueries) *ClaimHandler {
	return &ClaimHandler{cmds: cmds, q: q}
}

// @Summary Claim a deal
// @Description Issue a single-use claim code for the calling customer
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueClaimRequest true "Deal to claim"
// @Success 201 {object} resdto.IssuedClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/claims [post]
func (h *ClaimHandler) Issue(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.IssueClaimRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Issue(c.Request.Context(), commands.IssueClaimInput{
		DealID:     req.DealID,
		CustomerID: p.ID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/claims/"+result.ClaimID.String())
	c.JSON(http.StatusCreated, resdto.FromIssueClaimResult(result))
}

// @Summary List my claims
// @Description Keyset-paginated claims of the calling customer, newest first
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Router /api/claims [get]
func (h *ClaimHandler) ListMine(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	cursor, limit := page(c)

	items, next, err := h.q.ListMine(c.Request.Context(), p.ID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("claims", resdto.FromClaimViews(items), next))
}

// @Summary Get my claim
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/claims/{id} [get]
func (h *ClaimHandler) GetMine(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetMine(c.Request.Context(), p.ID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimView(view))
}
