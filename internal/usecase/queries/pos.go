package queries

//go:generate mockgen -source=pos.go -destination=../../../tests/mock/queries/mock_pos.go -package=queriesmock

import (
	"context"
	"time"

	"deals-engine/internal/infra"
	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionView struct {
	ID               uuid.UUID       `json:"id"`
	VendorID         uuid.UUID       `json:"vendor_id"`
	TerminalID       string          `json:"terminal_id"`
	Status           string          `json:"status"`
	OpenedAt         time.Time       `json:"opened_at"`
	ClosedAt         *time.Time      `json:"closed_at,omitempty"`
	TransactionCount int32           `json:"transaction_count"`
	TotalBill        decimal.Decimal `json:"total_bill"`
	TotalSavings     decimal.Decimal `json:"total_savings"`
}

type POSReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
}

type POSQueries interface {
	Get(ctx context.Context, vendorID, sessionID uuid.UUID) (*SessionView, error)
}

type posQueriesImpl struct {
	store POSReadStore
}

func NewPOSQueries(store POSReadStore) POSQueries {
	return &posQueriesImpl{store: store}
}

func (q *posQueriesImpl) Get(ctx context.Context, vendorID, sessionID uuid.UUID) (*SessionView, error) {
	s, err := q.store.FindByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, err
	}
	if s.VendorID != vendorID {
		return nil, errs.ErrSessionNotFound
	}
	return s, nil
}
