package request

import (
	"github.com/google/uuid"
)

type IssueClaimRequest struct {
	DealID uuid.UUID `json:"deal_id" binding:"required"`
}

type VerifyClaimRequest struct {
	Code string `json:"code" binding:"required,claimcode"`
}

// Token accepts the bare token or the full scanned QR payload.
type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required,max=4096"`
}

type VerifyPINRequest struct {
	PIN string `json:"pin" binding:"required,pincode"`
}
