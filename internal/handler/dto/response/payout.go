package response

import (
	"time"

	"deals-engine/internal/domain/payout"
	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BatchResponse struct {
	ID            uuid.UUID   `json:"id"`
	VendorID      uuid.UUID   `json:"vendor_id"`
	PeriodStart   time.Time   `json:"period_start"`
	PeriodEnd     time.Time   `json:"period_end"`
	Total         string      `json:"total_commission"`
	EventCount    int         `json:"event_count"`
	Status        string      `json:"status"`
	Notes         *string     `json:"notes,omitempty"`
	PaymentMethod *string     `json:"payment_method,omitempty"`
	Reference     *string     `json:"transaction_reference,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
	EventIDs      []uuid.UUID `json:"event_ids,omitempty"`
}

func FromBatch(b *payout.Batch) *BatchResponse {
	return &BatchResponse{
		ID:            b.ID(),
		VendorID:      b.VendorID(),
		PeriodStart:   b.Period().Start(),
		PeriodEnd:     b.Period().End(),
		Total:         money(b.Total()),
		EventCount:    len(b.EventIDs()),
		Status:        b.Status().String(),
		Notes:         b.Notes(),
		PaymentMethod: b.PaymentMethod(),
		Reference:     b.Reference(),
		CreatedAt:     b.CreatedAt(),
		PaidAt:        b.PaidAt(),
		EventIDs:      b.EventIDs(),
	}
}

func FromBatchView(v *queries.BatchView) *BatchResponse {
	return &BatchResponse{
		ID:            v.ID,
		VendorID:      v.VendorID,
		PeriodStart:   v.PeriodStart,
		PeriodEnd:     v.PeriodEnd,
		Total:         money(v.Total),
		EventCount:    int(v.EventCount),
		Status:        v.Status,
		Notes:         v.Notes,
		PaymentMethod: v.PaymentMethod,
		Reference:     v.Reference,
		CreatedAt:     v.CreatedAt,
		PaidAt:        v.PaidAt,
		EventIDs:      v.EventIDs,
	}
}

func FromBatchViews(vs []*queries.BatchView) []*BatchResponse {
	res := make([]*BatchResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBatchView(v)
	}
	return res
}
