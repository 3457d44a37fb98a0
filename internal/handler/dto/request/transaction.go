package request

import (
	"deals-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompleteTransactionRequest struct {
	ClaimID       uuid.UUID        `json:"claim_id" binding:"required"`
	BillAmount    *decimal.Decimal `json:"bill_amount" binding:"required"`
	PaymentMethod string           `json:"payment_method" binding:"required,paymethod"`
	SessionID     *uuid.UUID       `json:"session_id,omitempty"`
}

func (r CompleteTransactionRequest) ToInput(vendorID uuid.UUID) commands.CompleteTransactionInput {
	return commands.CompleteTransactionInput{
		ClaimID:       r.ClaimID,
		VendorID:      vendorID,
		BillAmount:    *r.BillAmount,
		PaymentMethod: r.PaymentMethod,
		SessionID:     r.SessionID,
	}
}

// PINCheckoutRequest settles an in-store sale identified by the deal PIN and the
// customer presented through their membership card.
type PINCheckoutRequest struct {
	PIN            string           `json:"pin" binding:"required,pincode"`
	CustomerID     uuid.UUID        `json:"customer_id" binding:"required"`
	BillAmount     *decimal.Decimal `json:"bill_amount" binding:"required"`
	DiscountAmount *decimal.Decimal `json:"discount_amount,omitempty"`
	PaymentMethod  string           `json:"payment_method" binding:"required,paymethod"`
	SessionID      *uuid.UUID       `json:"session_id,omitempty"`
}

func (r PINCheckoutRequest) ToInput(vendorID uuid.UUID) commands.PINCheckoutInput {
	return commands.PINCheckoutInput{
		VendorID:       vendorID,
		PIN:            r.PIN,
		CustomerID:     r.CustomerID,
		BillAmount:     *r.BillAmount,
		DiscountAmount: r.DiscountAmount,
		PaymentMethod:  r.PaymentMethod,
		SessionID:      r.SessionID,
	}
}
