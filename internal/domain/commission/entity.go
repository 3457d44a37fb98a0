package commission

import (
	"time"

	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	id                  uuid.UUID
	vendorID            uuid.UUID
	dealID              uuid.UUID
	eventType           EventType
	status              Status
	rate                decimal.Decimal
	estimatedOrderValue *decimal.Decimal
	saleAmount          *decimal.Decimal
	amount              decimal.Decimal
	occurredAt          time.Time
	confirmedAt         *time.Time
	paidAt              *time.Time
	batchID             *uuid.UUID
}

// NewClick records an affiliate click; the commission is an estimate until confirmed.
func NewClick(vendorID, dealID uuid.UUID, rate, estimatedOrderValue decimal.Decimal, now time.Time) (*Event, error) {
	if err := ValidateRate(rate); err != nil {
		return nil, err
	}
	estimate := estimatedOrderValue
	return &Event{
		id:                  uuid.New(),
		vendorID:            vendorID,
		dealID:              dealID,
		eventType:           EventClick,
		status:              StatusPending,
		rate:                rate,
		estimatedOrderValue: &estimate,
		amount:              Amount(rate, estimatedOrderValue),
		occurredAt:          now,
	}, nil
}

type ReconstructParams struct {
	ID                  uuid.UUID
	VendorID            uuid.UUID
	DealID              uuid.UUID
	Type                EventType
	Status              Status
	Rate                decimal.Decimal
	EstimatedOrderValue *decimal.Decimal
	SaleAmount          *decimal.Decimal
	Amount              decimal.Decimal
	OccurredAt          time.Time
	ConfirmedAt         *time.Time
	PaidAt              *time.Time
	BatchID             *uuid.UUID
}

func Reconstruct(p ReconstructParams) *Event {
	return &Event{
		id:                  p.ID,
		vendorID:            p.VendorID,
		dealID:              p.DealID,
		eventType:           p.Type,
		status:              p.Status,
		rate:                p.Rate,
		estimatedOrderValue: p.EstimatedOrderValue,
		saleAmount:          p.SaleAmount,
		amount:              p.Amount,
		occurredAt:          p.OccurredAt,
		confirmedAt:         p.ConfirmedAt,
		paidAt:              p.PaidAt,
		batchID:             p.BatchID,
	}
}

// Confirm turns a pending event into a confirmed conversion for saleAmount.
func (e *Event) Confirm(saleAmount, conversionRate decimal.Decimal, now time.Time) error {
	if !saleAmount.IsPositive() {
		return errs.ErrInvalidSaleAmount
	}
	if e.status != StatusPending {
		return errs.ErrEventNotPending
	}
	if err := ValidateRate(conversionRate); err != nil {
		return err
	}
	e.eventType = EventConversion
	e.status = StatusConfirmed
	e.rate = conversionRate
	e.saleAmount = &saleAmount
	e.amount = Amount(conversionRate, saleAmount)
	e.confirmedAt = &now
	return nil
}

func (e *Event) IsBatchable() bool {
	return e.status == StatusConfirmed && e.batchID == nil
}

func (e *Event) ID() uuid.UUID                         { return e.id }
func (e *Event) VendorID() uuid.UUID                   { return e.vendorID }
func (e *Event) DealID() uuid.UUID                     { return e.dealID }
func (e *Event) Type() EventType                       { return e.eventType }
func (e *Event) Status() Status                        { return e.status }
func (e *Event) Rate() decimal.Decimal                 { return e.rate }
func (e *Event) EstimatedOrderValue() *decimal.Decimal { return e.estimatedOrderValue }
func (e *Event) SaleAmount() *decimal.Decimal          { return e.saleAmount }
func (e *Event) Amount() decimal.Decimal               { return e.amount }
func (e *Event) OccurredAt() time.Time                 { return e.occurredAt }
func (e *Event) ConfirmedAt() *time.Time               { return e.confirmedAt }
func (e *Event) PaidAt() *time.Time                    { return e.paidAt }
func (e *Event) BatchID() *uuid.UUID                   { return e.batchID }
