//go:build unit || e2e

package builder

import (
	"time"

	"deals-engine/internal/domain/commission"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommissionEventBuilder struct {
	ID                  uuid.UUID
	VendorID            uuid.UUID
	DealID              uuid.UUID
	Type                commission.EventType
	Status              commission.Status
	Rate                decimal.Decimal
	EstimatedOrderValue *decimal.Decimal
	SaleAmount          *decimal.Decimal
	Amount              decimal.Decimal
	OccurredAt          time.Time
	ConfirmedAt         *time.Time
	PaidAt              *time.Time
	BatchID             *uuid.UUID
}

// NewCommissionEventBuilder returns a pending 5% click on a 50.00 estimate.
func NewCommissionEventBuilder() *CommissionEventBuilder {
	estimate := decimal.NewFromInt(50)
	return &CommissionEventBuilder{
		ID:                  uuid.New(),
		VendorID:            uuid.New(),
		DealID:              uuid.New(),
		Type:                commission.EventClick,
		Status:              commission.StatusPending,
		Rate:                decimal.NewFromInt(5),
		EstimatedOrderValue: &estimate,
		Amount:              decimal.RequireFromString("2.50"),
		OccurredAt:          time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (b *CommissionEventBuilder) With(mutate func(*CommissionEventBuilder)) *CommissionEventBuilder {
	mutate(b)
	return b
}

// Confirmed turns the event into a confirmed conversion of sale at rate percent.
func (b *CommissionEventBuilder) Confirmed(sale, rate string) *CommissionEventBuilder {
	s := decimal.RequireFromString(sale)
	r := decimal.RequireFromString(rate)
	at := b.OccurredAt.Add(time.Hour)
	b.Type = commission.EventConversion
	b.Status = commission.StatusConfirmed
	b.Rate = r
	b.SaleAmount = &s
	b.Amount = commission.Amount(r, s)
	b.ConfirmedAt = &at
	return b
}

func (b *CommissionEventBuilder) BuildDomain() *commission.Event {
	return commission.Reconstruct(commission.ReconstructParams{
		ID:                  b.ID,
		VendorID:            b.VendorID,
		DealID:              b.DealID,
		Type:                b.Type,
		Status:              b.Status,
		Rate:                b.Rate,
		EstimatedOrderValue: b.EstimatedOrderValue,
		SaleAmount:          b.SaleAmount,
		Amount:              b.Amount,
		OccurredAt:          b.OccurredAt,
		ConfirmedAt:         b.ConfirmedAt,
		PaidAt:              b.PaidAt,
		BatchID:             b.BatchID,
	})
}
