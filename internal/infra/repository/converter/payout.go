package converter

import (
	"deals-engine/internal/domain/payout"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func BatchToCreateParams(b *payout.Batch) sqlc.CreatePayoutBatchParams {
	return sqlc.CreatePayoutBatchParams{
		ID:              b.ID(),
		VendorID:        b.VendorID(),
		PeriodStart:     pgconv.TimeToPgtype(b.Period().Start()),
		PeriodEnd:       pgconv.TimeToPgtype(b.Period().End()),
		TotalCommission: b.Total(),
		EventCount:      int32(len(b.EventIDs())), // #nosec G115 -- bounded by one vendor's events in a period
		Status:          b.Status().String(),
		Notes:           pgconv.StringPtrToPgtype(b.Notes()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

// BatchFromRow rebuilds a batch. Stored periods were validated on creation, so the
// period is rebuilt without re-checking.
func BatchFromRow(row sqlc.PayoutBatches, eventIDs []uuid.UUID) *payout.Batch {
	period := payout.ReconstructPeriod(pgconv.TimeFromPgtype(row.PeriodStart), pgconv.TimeFromPgtype(row.PeriodEnd))
	return payout.Reconstruct(payout.ReconstructParams{
		ID:            row.ID,
		VendorID:      row.VendorID,
		Period:        period,
		EventIDs:      eventIDs,
		Total:         row.TotalCommission,
		Status:        payout.Status(row.Status),
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		PaymentMethod: pgconv.StringPtrFromPgtype(row.PaymentMethod),
		Reference:     pgconv.StringPtrFromPgtype(row.TransactionReference),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
	})
}
