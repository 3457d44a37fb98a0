package converter

import (
	"deals-engine/internal/domain/commission"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"
)

func EventToCreateParams(e *commission.Event) sqlc.CreateCommissionEventParams {
	return sqlc.CreateCommissionEventParams{
		ID:                  e.ID(),
		VendorID:            e.VendorID(),
		DealID:              e.DealID(),
		EventType:           e.Type().String(),
		Status:              e.Status().String(),
		CommissionRate:      e.Rate(),
		EstimatedOrderValue: pgconv.DecimalPtrToNull(e.EstimatedOrderValue()),
		SaleAmount:          pgconv.DecimalPtrToNull(e.SaleAmount()),
		CommissionAmount:    e.Amount(),
		OccurredAt:          pgconv.TimeToPgtype(e.OccurredAt()),
	}
}

func EventFromRow(row sqlc.CommissionEvents) *commission.Event {
	return commission.Reconstruct(commission.ReconstructParams{
		ID:                  row.ID,
		VendorID:            row.VendorID,
		DealID:              row.DealID,
		Type:                commission.EventType(row.EventType),
		Status:              commission.Status(row.Status),
		Rate:                row.CommissionRate,
		EstimatedOrderValue: pgconv.DecimalPtrFromNull(row.EstimatedOrderValue),
		SaleAmount:          pgconv.DecimalPtrFromNull(row.SaleAmount),
		Amount:              row.CommissionAmount,
		OccurredAt:          pgconv.TimeFromPgtype(row.OccurredAt),
		ConfirmedAt:         pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		PaidAt:              pgconv.TimePtrFromPgtype(row.PaidAt),
		BatchID:             pgconv.UUIDPtrFromPgtype(row.PayoutBatchID),
	})
}

func EventsFromRows(rows []sqlc.CommissionEvents) []*commission.Event {
	events := make([]*commission.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, EventFromRow(row))
	}
	return events
}
