package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/mock_uow.go -package=sharedmock

import (
	"context"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/commission"
	"deals-engine/internal/domain/customer"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/domain/payout"
	"deals-engine/internal/domain/pos"
	"deals-engine/internal/domain/transaction"
	sqlc "deals-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: ReadCommitted transaction for writes; retried on serialization failure
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent multi-table reads for command preconditions
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Deals() DealRepository
	Claims() ClaimRepository
	Customers() CustomerRepository
	Vendors() VendorRepository
	Transactions() TransactionRepository
	POSSessions() POSSessionRepository
	Commissions() CommissionRepository
	Payouts() PayoutRepository
	DB() sqlc.DBTX
}

type DealRepository interface {
	// Create returns false when the vendor already has a deal with the same PIN.
	Create(ctx context.Context, d *deal.Deal) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error)
	FindLiveByVendorCode(ctx context.Context, vendorID uuid.UUID, code deal.VerificationCode, now time.Time) (*deal.Deal, error)
	// ReserveRedemption increments the redemption counter unless the deal is no longer
	// claimable; false means the guard rejected it.
	ReserveRedemption(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

type ClaimRepository interface {
	// Insert returns false on a claim code collision.
	Insert(ctx context.Context, c *claim.Claim) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ClaimContext, error)
	FindByCode(ctx context.Context, code claim.Code) (*ClaimContext, error)
	HasLiveClaim(ctx context.Context, dealID, customerID uuid.UUID, now time.Time) (bool, error)
	// MarkVerified applies claimed -> verified; ok is false when no row matched the guard.
	MarkVerified(ctx context.Context, code claim.Code, vendorID uuid.UUID, now time.Time) (id uuid.UUID, ok bool, err error)
	// MarkUsed applies verified -> used with the claim's recorded bill and savings.
	MarkUsed(ctx context.Context, c *claim.Claim, vendorID uuid.UUID) (bool, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	AddSavings(ctx context.Context, id uuid.UUID, savings decimal.Decimal) (bool, error)
}

type VendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VendorSnapshot, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *transaction.Transaction) error
}

type POSSessionRepository interface {
	Create(ctx context.Context, s *pos.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*pos.Session, error)
	Close(ctx context.Context, s *pos.Session) (bool, error)
	AddTotals(ctx context.Context, sessionID, vendorID uuid.UUID, bill, savings decimal.Decimal) (bool, error)
}

type CommissionRepository interface {
	Create(ctx context.Context, e *commission.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*commission.Event, error)
	// Confirm applies pending -> confirmed with the event's conversion figures.
	Confirm(ctx context.Context, e *commission.Event) (bool, error)
	// ListBatchable locks the vendor's confirmed, unbatched events in the period.
	ListBatchable(ctx context.Context, vendorID uuid.UUID, period payout.Period) ([]*commission.Event, error)
	CountBatchedInPeriod(ctx context.Context, vendorID uuid.UUID, period payout.Period) (int64, error)
	AssignToBatch(ctx context.Context, batchID uuid.UUID, eventIDs []uuid.UUID) (int64, error)
	MarkBatchPaid(ctx context.Context, batchID uuid.UUID, paidAt time.Time) (int64, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, b *payout.Batch) error
	FindByID(ctx context.Context, id uuid.UUID) (*payout.Batch, error)
	MarkPaid(ctx context.Context, b *payout.Batch) (bool, error)
}
