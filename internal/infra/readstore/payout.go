package readstore

import (
	"context"

	"deals-engine/internal/infra"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"
	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PayoutViewQueries interface {
	GetPayoutBatchByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PayoutBatches, error)
	ListCommissionEventIDsByBatch(ctx context.Context, db sqlc.DBTX, payoutBatchID pgtype.UUID) ([]uuid.UUID, error)
	ListPayoutBatchesByVendor(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPayoutBatchesByVendorParams) ([]sqlc.PayoutBatches, error)
}

type PayoutReadStore struct {
	queries PayoutViewQueries
	db      sqlc.DBTX
}

func NewPayoutReadStore(queries PayoutViewQueries, db sqlc.DBTX) *PayoutReadStore {
	return &PayoutReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PayoutReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BatchView, error) {
	row, err := r.queries.GetPayoutBatchByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get payout batch view by id", err)
	}
	eventIDs, err := r.queries.ListCommissionEventIDsByBatch(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payout batch events", err)
	}
	v := batchView(row)
	v.EventIDs = eventIDs
	return v, nil
}

func (r *PayoutReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.BatchView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListPayoutBatchesByVendor(ctx, r.db, sqlc.ListPayoutBatchesByVendorParams{
		VendorID:       vendorID,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payout batches by vendor", err)
	}

	result := make([]*queries.BatchView, len(rows))
	for i, row := range rows {
		result[i] = batchView(row)
	}
	return result, nil
}

func batchView(row sqlc.PayoutBatches) *queries.BatchView {
	return &queries.BatchView{
		ID:            row.ID,
		VendorID:      row.VendorID,
		PeriodStart:   pgconv.TimeFromPgtype(row.PeriodStart),
		PeriodEnd:     pgconv.TimeFromPgtype(row.PeriodEnd),
		Total:         row.TotalCommission,
		EventCount:    row.EventCount,
		Status:        row.Status,
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		PaymentMethod: pgconv.StringPtrFromPgtype(row.PaymentMethod),
		Reference:     pgconv.StringPtrFromPgtype(row.TransactionReference),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
	}
}
