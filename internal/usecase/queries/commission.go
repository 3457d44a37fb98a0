package queries

//go:generate mockgen -source=commission.go -destination=../../../tests/mock/queries/mock_commission.go -package=queriesmock

import (
	"context"
	"time"

	"deals-engine/internal/domain/commission"
	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidFilter = errs.New("invalid filter")

var hundred = decimal.NewFromInt(100)

// CommissionFilter narrows reporting reads; nil fields are unbounded.
type CommissionFilter struct {
	Status *string
	From   *time.Time
	To     *time.Time
}

func (f CommissionFilter) validate() error {
	if f.Status != nil && !commission.Status(*f.Status).IsValid() {
		return errs.Wrap(ErrInvalidFilter, "unknown commission status")
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return errs.Wrap(ErrInvalidFilter, "from must not be after to")
	}
	return nil
}

type CommissionOverview struct {
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
	TotalClicks           int64           `json:"total_clicks"`
	TotalConversions      int64           `json:"total_conversions"`
	ActiveVendors         int64           `json:"active_vendors"`
	AverageCommissionRate decimal.Decimal `json:"average_commission_rate"`
}

type VendorPerformance struct {
	VendorID            uuid.UUID       `json:"vendor_id"`
	VendorName          string          `json:"vendor_name"`
	Clicks              int64           `json:"clicks"`
	Conversions         int64           `json:"conversions"`
	ConversionRate      decimal.Decimal `json:"conversion_rate"`
	EstimatedCommission decimal.Decimal `json:"estimated_commission"`
	ConfirmedCommission decimal.Decimal `json:"confirmed_commission"`
}

type CommissionEventView struct {
	ID                  uuid.UUID        `json:"id"`
	VendorID            uuid.UUID        `json:"vendor_id"`
	DealID              uuid.UUID        `json:"deal_id"`
	EventType           string           `json:"event_type"`
	Status              string           `json:"status"`
	CommissionRate      decimal.Decimal  `json:"commission_rate"`
	EstimatedOrderValue *decimal.Decimal `json:"estimated_order_value,omitempty"`
	SaleAmount          *decimal.Decimal `json:"sale_amount,omitempty"`
	CommissionAmount    decimal.Decimal  `json:"commission_amount"`
	OccurredAt          time.Time        `json:"occurred_at"`
	ConfirmedAt         *time.Time       `json:"confirmed_at,omitempty"`
	PaidAt              *time.Time       `json:"paid_at,omitempty"`
	PayoutBatchID       *uuid.UUID       `json:"payout_batch_id,omitempty"`
}

type CommissionReadStore interface {
	Overview(ctx context.Context, filter CommissionFilter) (*CommissionOverview, error)
	VendorPerformance(ctx context.Context, filter CommissionFilter) ([]*VendorPerformance, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, filter CommissionFilter, after *Keyset, limit int32) ([]*CommissionEventView, error)
}

type CommissionQueries interface {
	Overview(ctx context.Context, filter CommissionFilter) (*CommissionOverview, error)
	VendorPerformance(ctx context.Context, filter CommissionFilter) ([]*VendorPerformance, error)
	ListVendorEvents(ctx context.Context, vendorID uuid.UUID, filter CommissionFilter, cursor *Cursor, limit int) ([]*CommissionEventView, *Cursor, error)
}

type commissionQueriesImpl struct {
	store CommissionReadStore
}

func NewCommissionQueries(store CommissionReadStore) CommissionQueries {
	return &commissionQueriesImpl{store: store}
}

func (q *commissionQueriesImpl) Overview(ctx context.Context, filter CommissionFilter) (*CommissionOverview, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	o, err := q.store.Overview(ctx, filter)
	if err != nil {
		return nil, err
	}
	o.AverageCommissionRate = o.AverageCommissionRate.Round(2)
	return o, nil
}

// VendorPerformance fills in the conversion rate: conversions per recorded event, in percent.
func (q *commissionQueriesImpl) VendorPerformance(ctx context.Context, filter CommissionFilter) ([]*VendorPerformance, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	rows, err := q.store.VendorPerformance(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, p := range rows {
		p.ConversionRate = ConversionRate(p.Clicks, p.Conversions)
	}
	return rows, nil
}

func (q *commissionQueriesImpl) ListVendorEvents(ctx context.Context, vendorID uuid.UUID, filter CommissionFilter, cursor *Cursor, limit int) ([]*CommissionEventView, *Cursor, error) {
	if err := filter.validate(); err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	after, err := afterKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByVendor(ctx, vendorID, filter, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(v *CommissionEventView) (time.Time, uuid.UUID) { return v.OccurredAt, v.ID })
	return rows, next, nil
}

// ConversionRate is conversions / clicks × 100 rounded to two places; zero without clicks.
func ConversionRate(clicks, conversions int64) decimal.Decimal {
	if clicks == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(conversions).Mul(hundred).Div(decimal.NewFromInt(clicks)).Round(2)
}
