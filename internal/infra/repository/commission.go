package repository

//go:generate mockgen -source=commission.go -destination=../../../tests/mock/repository/mock_commission_queries.go -package=repositorymock

import (
	"context"
	"time"

	"deals-engine/internal/domain/commission"
	"deals-engine/internal/domain/payout"
	"deals-engine/internal/infra"
	"deals-engine/internal/infra/repository/converter"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CommissionQueries interface {
	CreateCommissionEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommissionEventParams) (sqlc.CommissionEvents, error)
	GetCommissionEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CommissionEvents, error)
	ConfirmCommissionEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmCommissionEventParams) (int64, error)
	ListBatchableCommissionEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBatchableCommissionEventsParams) ([]sqlc.CommissionEvents, error)
	CountBatchedEventsInPeriod(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBatchedEventsInPeriodParams) (int64, error)
	AssignCommissionEventsToBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignCommissionEventsToBatchParams) (int64, error)
	MarkBatchCommissionEventsPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBatchCommissionEventsPaidParams) (int64, error)
}

type CommissionRepository struct {
	queries CommissionQueries
	db      sqlc.DBTX
}

func NewCommissionRepository(queries CommissionQueries, db sqlc.DBTX) *CommissionRepository {
	return &CommissionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommissionRepository) Create(ctx context.Context, e *commission.Event) error {
	if _, err := r.queries.CreateCommissionEvent(ctx, r.db, converter.EventToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to record commission event", err)
	}
	return nil
}

func (r *CommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*commission.Event, error) {
	row, err := r.queries.GetCommissionEventByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find commission event", err)
	}
	return converter.EventFromRow(row), nil
}

func (r *CommissionRepository) Confirm(ctx context.Context, e *commission.Event) (bool, error) {
	if e.SaleAmount() == nil || e.ConfirmedAt() == nil {
		return false, errs.Wrapf(errs.ErrDomainValidation, "commission event %s has not been confirmed", e.ID())
	}
	n, err := r.queries.ConfirmCommissionEvent(ctx, r.db, sqlc.ConfirmCommissionEventParams{
		CommissionRate:   e.Rate(),
		SaleAmount:       *e.SaleAmount(),
		CommissionAmount: e.Amount(),
		ConfirmedAt:      pgconv.TimePtrToPgtype(e.ConfirmedAt()),
		ID:               e.ID(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to confirm commission event", err)
	}
	return n == 1, nil
}

func (r *CommissionRepository) ListBatchable(ctx context.Context, vendorID uuid.UUID, period payout.Period) ([]*commission.Event, error) {
	rows, err := r.queries.ListBatchableCommissionEvents(ctx, r.db, sqlc.ListBatchableCommissionEventsParams{
		VendorID:    vendorID,
		PeriodStart: pgconv.TimeToPgtype(period.Start()),
		PeriodEnd:   pgconv.TimeToPgtype(period.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list batchable commission events", err)
	}
	return converter.EventsFromRows(rows), nil
}

func (r *CommissionRepository) CountBatchedInPeriod(ctx context.Context, vendorID uuid.UUID, period payout.Period) (int64, error) {
	n, err := r.queries.CountBatchedEventsInPeriod(ctx, r.db, sqlc.CountBatchedEventsInPeriodParams{
		VendorID:    vendorID,
		PeriodStart: pgconv.TimeToPgtype(period.Start()),
		PeriodEnd:   pgconv.TimeToPgtype(period.End()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count batched commission events", err)
	}
	return n, nil
}

// AssignToBatch locks events to batchID; only confirmed, unbatched events are taken.
func (r *CommissionRepository) AssignToBatch(ctx context.Context, batchID uuid.UUID, eventIDs []uuid.UUID) (int64, error) {
	n, err := r.queries.AssignCommissionEventsToBatch(ctx, r.db, sqlc.AssignCommissionEventsToBatchParams{
		BatchID: pgconv.UUIDToPgtype(batchID),
		Ids:     eventIDs,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to assign commission events to batch", err)
	}
	return n, nil
}

func (r *CommissionRepository) MarkBatchPaid(ctx context.Context, batchID uuid.UUID, paidAt time.Time) (int64, error) {
	n, err := r.queries.MarkBatchCommissionEventsPaid(ctx, r.db, sqlc.MarkBatchCommissionEventsPaidParams{
		PayoutBatchID: pgconv.UUIDToPgtype(batchID),
		PaidAt:        pgconv.TimeToPgtype(paidAt),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark batch events paid", err)
	}
	return n, nil
}

type PayoutQueries interface {
	CreatePayoutBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePayoutBatchParams) (sqlc.PayoutBatches, error)
	GetPayoutBatchByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PayoutBatches, error)
	ListCommissionEventIDsByBatch(ctx context.Context, db sqlc.DBTX, payoutBatchID pgtype.UUID) ([]uuid.UUID, error)
	MarkPayoutBatchPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPayoutBatchPaidParams) (int64, error)
}

type PayoutRepository struct {
	queries PayoutQueries
	db      sqlc.DBTX
}

func NewPayoutRepository(queries PayoutQueries, db sqlc.DBTX) *PayoutRepository {
	return &PayoutRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PayoutRepository) Create(ctx context.Context, b *payout.Batch) error {
	if _, err := r.queries.CreatePayoutBatch(ctx, r.db, converter.BatchToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create payout batch", err)
	}
	return nil
}

func (r *PayoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*payout.Batch, error) {
	row, err := r.queries.GetPayoutBatchByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payout batch", err)
	}
	ids, err := r.queries.ListCommissionEventIDsByBatch(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payout batch events", err)
	}
	return converter.BatchFromRow(row, ids), nil
}

func (r *PayoutRepository) MarkPaid(ctx context.Context, b *payout.Batch) (bool, error) {
	n, err := r.queries.MarkPayoutBatchPaid(ctx, r.db, sqlc.MarkPayoutBatchPaidParams{
		ID:                   b.ID(),
		PaymentMethod:        pgconv.StringPtrToPgtype(b.PaymentMethod()),
		TransactionReference: pgconv.StringPtrToPgtype(b.Reference()),
		PaidAt:               pgconv.TimePtrToPgtype(b.PaidAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payout batch paid", err)
	}
	return n == 1, nil
}
