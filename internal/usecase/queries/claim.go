package queries

//go:generate mockgen -source=claim.go -destination=../../../tests/mock/queries/mock_claim.go -package=queriesmock

import (
	"context"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/infra"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClaimView struct {
	ID            uuid.UUID        `json:"id"`
	DealID        uuid.UUID        `json:"deal_id"`
	DealTitle     string           `json:"deal_title"`
	VendorID      uuid.UUID        `json:"vendor_id"`
	VendorName    string           `json:"vendor_name"`
	CustomerID    uuid.UUID        `json:"-"`
	Code          string           `json:"code"`
	Kind          string           `json:"kind"`
	Status        string           `json:"status"`
	IssuedAt      time.Time        `json:"issued_at"`
	ExpiresAt     time.Time        `json:"expires_at"`
	VerifiedAt    *time.Time       `json:"verified_at,omitempty"`
	UsedAt        *time.Time       `json:"used_at,omitempty"`
	BillAmount    *decimal.Decimal `json:"bill_amount,omitempty"`
	ActualSavings *decimal.Decimal `json:"actual_savings,omitempty"`
	AffiliateLink *string          `json:"affiliate_link,omitempty"`
}

type ClaimReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClaimView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, after *Keyset, limit int32) ([]*ClaimView, error)
}

type ClaimQueries interface {
	GetMine(ctx context.Context, customerID, claimID uuid.UUID) (*ClaimView, error)
	ListMine(ctx context.Context, customerID uuid.UUID, cursor *Cursor, limit int) ([]*ClaimView, *Cursor, error)
}

type claimQueriesImpl struct {
	store ClaimReadStore
	clock clock.Clock
}

func NewClaimQueries(store ClaimReadStore, clk clock.Clock) ClaimQueries {
	return &claimQueriesImpl{store: store, clock: clk}
}

// GetMine hides claims of other customers behind the same not-found error.
func (q *claimQueriesImpl) GetMine(ctx context.Context, customerID, claimID uuid.UUID) (*ClaimView, error) {
	v, err := q.store.FindByID(ctx, claimID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClaimNotFound
		}
		return nil, err
	}
	if v.CustomerID != customerID {
		return nil, errs.ErrClaimNotFound
	}
	q.project(v, q.clock.Now())
	return v, nil
}

func (q *claimQueriesImpl) ListMine(ctx context.Context, customerID uuid.UUID, cursor *Cursor, limit int) ([]*ClaimView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := afterKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.store.ListByCustomer(ctx, customerID, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(v *ClaimView) (time.Time, uuid.UUID) { return v.IssuedAt, v.ID })

	now := q.clock.Now()
	for _, v := range rows {
		q.project(v, now)
	}
	return rows, next, nil
}

// project reports lapsed claims as expired without a write.
func (q *claimQueriesImpl) project(v *ClaimView, now time.Time) {
	v.Status = claim.ProjectStatus(claim.Status(v.Status), v.ExpiresAt, now).String()
}
