package api

import (
	"net/http"

	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// VerificationHandler serves the vendor's point-of-sale checks.
type VerificationHandler struct {
	verify     commands.VerificationCommands
	membership commands.MembershipCommands
}

func NewVerificationHandler(verify commands.VerificationCommands, membership commands.MembershipCommands) *VerificationHandler {
	return &VerificationHandler{verify: verify, membership: membership}
}

// @Summary Verify claim code
// @Description Mark a customer's claim code verified for the calling vendor
// @Tags verification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyClaimRequest true "Claim code"
// @Success 200 {object} resdto.VerifiedClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/verify/claim [post]
func (h *VerificationHandler) VerifyClaim(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.VerifyClaimRequest
	if !bindJSON(c, &req) {
		return
	}

	cc, err := h.verify.VerifyClaim(c.Request.Context(), commands.VerifyClaimInput{
		Code:     req.Code,
		VendorID: p.ID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimContext(cc))
}

// @Summary Verify membership token
// @Description Check a scanned membership card; accepts the bare token or the QR payload
// @Tags verification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyTokenRequest true "Membership token"
// @Success 200 {object} resdto.MembershipCardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/verify/token [post]
func (h *VerificationHandler) VerifyToken(c *gin.Context) {
	var req reqdto.VerifyTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.membership.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMembershipCard(card))
}

// @Summary Verify deal PIN
// @Description Resolve one of the calling vendor's live deals by its PIN
// @Tags verification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyPINRequest true "Deal PIN"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/verify/pin [post]
func (h *VerificationHandler) VerifyPIN(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.VerifyPINRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.verify.VerifyPIN(c.Request.Context(), commands.VerifyPINInput{
		PIN:      req.PIN,
		VendorID: p.ID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeal(d))
}
