package readstore

import (
	"context"

	"deals-engine/internal/infra"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"
	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommissionViewQueries interface {
	GetCommissionOverview(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCommissionOverviewParams) (sqlc.GetCommissionOverviewRow, error)
	CountVendorsWithOnlineDeals(ctx context.Context, db sqlc.DBTX) (int64, error)
	ListVendorCommissionPerformance(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVendorCommissionPerformanceParams) ([]sqlc.ListVendorCommissionPerformanceRow, error)
	ListCommissionEventsByVendor(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommissionEventsByVendorParams) ([]sqlc.CommissionEvents, error)
}

type CommissionReadStore struct {
	queries CommissionViewQueries
	db      sqlc.DBTX
}

func NewCommissionReadStore(queries CommissionViewQueries, db sqlc.DBTX) *CommissionReadStore {
	return &CommissionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommissionReadStore) Overview(ctx context.Context, filter queries.CommissionFilter) (*queries.CommissionOverview, error) {
	row, err := r.queries.GetCommissionOverview(ctx, r.db, sqlc.GetCommissionOverviewParams{
		Status:   pgconv.StringPtrToPgtype(filter.Status),
		FromTime: pgconv.TimePtrToPgtype(filter.From),
		ToTime:   pgconv.TimePtrToPgtype(filter.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get commission overview", err)
	}
	vendors, err := r.queries.CountVendorsWithOnlineDeals(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count vendors with online deals", err)
	}
	return &queries.CommissionOverview{
		TotalRevenue:          row.TotalRevenue,
		TotalClicks:           row.TotalClicks,
		TotalConversions:      row.TotalConversions,
		ActiveVendors:         vendors,
		AverageCommissionRate: row.AverageRate,
	}, nil
}

func (r *CommissionReadStore) VendorPerformance(ctx context.Context, filter queries.CommissionFilter) ([]*queries.VendorPerformance, error) {
	rows, err := r.queries.ListVendorCommissionPerformance(ctx, r.db, sqlc.ListVendorCommissionPerformanceParams{
		Status:   pgconv.StringPtrToPgtype(filter.Status),
		FromTime: pgconv.TimePtrToPgtype(filter.From),
		ToTime:   pgconv.TimePtrToPgtype(filter.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor commission performance", err)
	}

	result := make([]*queries.VendorPerformance, len(rows))
	for i, row := range rows {
		result[i] = &queries.VendorPerformance{
			VendorID:            row.VendorID,
			VendorName:          row.VendorName,
			Clicks:              row.Clicks,
			Conversions:         row.Conversions,
			EstimatedCommission: row.EstimatedCommission,
			ConfirmedCommission: row.ConfirmedCommission,
		}
	}
	return result, nil
}

func (r *CommissionReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter queries.CommissionFilter, after *queries.Keyset, limit int32) ([]*queries.CommissionEventView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListCommissionEventsByVendor(ctx, r.db, sqlc.ListCommissionEventsByVendorParams{
		VendorID:        vendorID,
		Status:          pgconv.StringPtrToPgtype(filter.Status),
		FromTime:        pgconv.TimePtrToPgtype(filter.From),
		ToTime:          pgconv.TimePtrToPgtype(filter.To),
		AfterOccurredAt: afterAt,
		AfterID:         afterID,
		RowLimit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list commission events by vendor", err)
	}

	result := make([]*queries.CommissionEventView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CommissionEventView{
			ID:                  row.ID,
			VendorID:            row.VendorID,
			DealID:              row.DealID,
			EventType:           row.EventType,
			Status:              row.Status,
			CommissionRate:      row.CommissionRate,
			EstimatedOrderValue: pgconv.DecimalPtrFromNull(row.EstimatedOrderValue),
			SaleAmount:          pgconv.DecimalPtrFromNull(row.SaleAmount),
			CommissionAmount:    row.CommissionAmount,
			OccurredAt:          pgconv.TimeFromPgtype(row.OccurredAt),
			ConfirmedAt:         pgconv.TimePtrFromPgtype(row.ConfirmedAt),
			PaidAt:              pgconv.TimePtrFromPgtype(row.PaidAt),
			PayoutBatchID:       pgconv.UUIDPtrFromPgtype(row.PayoutBatchID),
		}
	}
	return result, nil
}
