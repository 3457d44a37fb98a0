package response

import (
	"time"

	"deals-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReceiptNumber string     `json:"receipt_number"`
	ClaimID       uuid.UUID  `json:"claim_id"`
	ClaimCode     string     `json:"claim_code"`
	DealID        uuid.UUID  `json:"deal_id"`
	DealTitle     string     `json:"deal_title"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	SessionID     *uuid.UUID `json:"session_id,omitempty"`
	BillAmount    string     `json:"bill_amount"`
	Savings       string     `json:"savings"`
	FinalAmount   string     `json:"final_amount"`
	PaymentMethod string     `json:"payment_method"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromTransactionResult(r *commands.TransactionResult) *TransactionResponse {
	t := r.Transaction
	return &TransactionResponse{
		ID:            t.ID(),
		ReceiptNumber: t.ReceiptNumber(),
		ClaimID:       t.ClaimID(),
		ClaimCode:     r.ClaimCode.String(),
		DealID:        t.DealID(),
		DealTitle:     r.DealTitle,
		CustomerID:    t.CustomerID(),
		SessionID:     t.SessionID(),
		BillAmount:    money(t.BillAmount()),
		Savings:       money(t.Savings()),
		FinalAmount:   money(t.FinalAmount()),
		PaymentMethod: t.PaymentMethod().String(),
		CreatedAt:     t.CreatedAt(),
	}
}
