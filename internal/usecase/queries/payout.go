package queries

//go:generate mockgen -source=payout.go -destination=../../../tests/mock/queries/mock_payout.go -package=queriesmock

import (
	"context"
	"time"

	"deals-engine/internal/infra"
	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BatchView struct {
	ID            uuid.UUID       `json:"id"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	Total         decimal.Decimal `json:"total_commission"`
	EventCount    int32           `json:"event_count"`
	Status        string          `json:"status"`
	Notes         *string         `json:"notes,omitempty"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Reference     *string         `json:"transaction_reference,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	EventIDs      []uuid.UUID     `json:"event_ids,omitempty"`
}

type PayoutReadStore interface {
	// FindByID includes the batch's event ids.
	FindByID(ctx context.Context, id uuid.UUID) (*BatchView, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, after *Keyset, limit int32) ([]*BatchView, error)
}

type PayoutQueries interface {
	GetBatch(ctx context.Context, id uuid.UUID) (*BatchView, error)
	ListVendorBatches(ctx context.Context, vendorID uuid.UUID, cursor *Cursor, limit int) ([]*BatchView, *Cursor, error)
}

type payoutQueriesImpl struct {
	store PayoutReadStore
}

func NewPayoutQueries(store PayoutReadStore) PayoutQueries {
	return &payoutQueriesImpl{store: store}
}

func (q *payoutQueriesImpl) GetBatch(ctx context.Context, id uuid.UUID) (*BatchView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBatchNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *payoutQueriesImpl) ListVendorBatches(ctx context.Context, vendorID uuid.UUID, cursor *Cursor, limit int) ([]*BatchView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := afterKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByVendor(ctx, vendorID, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(b *BatchView) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
	return rows, next, nil
}
