package payout

import (
	"strings"
	"time"

	"deals-engine/internal/domain/commission"
	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Batch struct {
	id            uuid.UUID
	vendorID      uuid.UUID
	period        Period
	eventIDs      []uuid.UUID
	total         decimal.Decimal
	status        Status
	notes         *string
	paymentMethod *string
	reference     *string
	createdAt     time.Time
	paidAt        *time.Time
}

// NewBatch snapshots the total of the given confirmed events. Every event must belong to
// the vendor, fall within the period and not be assigned to another batch.
func NewBatch(vendorID uuid.UUID, period Period, events []*commission.Event, notes *string, now time.Time) (*Batch, error) {
	if len(events) == 0 {
		return nil, errs.ErrNoConfirmedEvents
	}

	total := decimal.Zero
	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		if e.VendorID() != vendorID || !period.Contains(e.OccurredAt()) {
			return nil, errs.Wrapf(errs.ErrDomainValidation, "event %s is outside the batch scope", e.ID())
		}
		if !e.IsBatchable() {
			return nil, errs.ErrOverlappingBatch
		}
		total = total.Add(e.Amount())
		ids = append(ids, e.ID())
	}

	return &Batch{
		id:        uuid.New(),
		vendorID:  vendorID,
		period:    period,
		eventIDs:  ids,
		total:     total,
		status:    StatusPending,
		notes:     trimmed(notes),
		createdAt: now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	VendorID      uuid.UUID
	Period        Period
	EventIDs      []uuid.UUID
	Total         decimal.Decimal
	Status        Status
	Notes         *string
	PaymentMethod *string
	Reference     *string
	CreatedAt     time.Time
	PaidAt        *time.Time
}

func Reconstruct(p ReconstructParams) *Batch {
	return &Batch{
		id:            p.ID,
		vendorID:      p.VendorID,
		period:        p.Period,
		eventIDs:      p.EventIDs,
		total:         p.Total,
		status:        p.Status,
		notes:         p.Notes,
		paymentMethod: p.PaymentMethod,
		reference:     p.Reference,
		createdAt:     p.CreatedAt,
		paidAt:        p.PaidAt,
	}
}

func (b *Batch) MarkPaid(method, reference string, now time.Time) error {
	if b.status == StatusPaid {
		return errs.ErrAlreadyPaid
	}
	method = strings.TrimSpace(method)
	reference = strings.TrimSpace(reference)
	if method == "" {
		return errs.ErrInvalidPaymentMethod
	}
	if reference == "" {
		return errs.ErrInvalidPaymentReference
	}
	b.status = StatusPaid
	b.paymentMethod = &method
	b.reference = &reference
	b.paidAt = &now
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (b *Batch) ID() uuid.UUID          { return b.id }
func (b *Batch) VendorID() uuid.UUID    { return b.vendorID }
func (b *Batch) Period() Period         { return b.period }
func (b *Batch) EventIDs() []uuid.UUID  { return b.eventIDs }
func (b *Batch) Total() decimal.Decimal { return b.total }
func (b *Batch) Status() Status         { return b.status }
func (b *Batch) Notes() *string         { return b.notes }
func (b *Batch) PaymentMethod() *string { return b.paymentMethod }
func (b *Batch) Reference() *string     { return b.reference }
func (b *Batch) CreatedAt() time.Time   { return b.createdAt }
func (b *Batch) PaidAt() *time.Time     { return b.paidAt }
