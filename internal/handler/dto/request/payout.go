package request

import (
	"time"

	"deals-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePayoutBatchRequest struct {
	VendorID    uuid.UUID  `json:"vendor_id" binding:"required"`
	PeriodStart *time.Time `json:"period_start" binding:"required"`
	PeriodEnd   *time.Time `json:"period_end" binding:"required"`
	Notes       *string    `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r CreatePayoutBatchRequest) ToInput() commands.CreateBatchInput {
	return commands.CreateBatchInput{
		VendorID:    r.VendorID,
		PeriodStart: *r.PeriodStart,
		PeriodEnd:   *r.PeriodEnd,
		Notes:       r.Notes,
	}
}

// Payment happens outside the platform; this only records it.
type MarkBatchPaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,max=50"`
	Reference     string `json:"transaction_reference" binding:"required,max=100"`
}

func (r MarkBatchPaidRequest) ToInput(batchID uuid.UUID) commands.MarkBatchPaidInput {
	return commands.MarkBatchPaidInput{
		BatchID:       batchID,
		PaymentMethod: r.PaymentMethod,
		Reference:     r.Reference,
	}
}
