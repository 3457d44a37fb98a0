package response

import (
	"time"

	"deals-engine/internal/domain/commission"
	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommissionEventResponse struct {
	ID                  uuid.UUID  `json:"id"`
	VendorID            uuid.UUID  `json:"vendor_id"`
	DealID              uuid.UUID  `json:"deal_id"`
	EventType           string     `json:"event_type"`
	Status              string     `json:"status"`
	CommissionRate      string     `json:"commission_rate"`
	EstimatedOrderValue *string    `json:"estimated_order_value,omitempty"`
	SaleAmount          *string    `json:"sale_amount,omitempty"`
	CommissionAmount    string     `json:"commission_amount"`
	OccurredAt          time.Time  `json:"occurred_at"`
	ConfirmedAt         *time.Time `json:"confirmed_at,omitempty"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	PayoutBatchID       *uuid.UUID `json:"payout_batch_id,omitempty"`
}

func FromCommissionEvent(e *commission.Event) *CommissionEventResponse {
	return &CommissionEventResponse{
		ID:                  e.ID(),
		VendorID:            e.VendorID(),
		DealID:              e.DealID(),
		EventType:           e.Type().String(),
		Status:              e.Status().String(),
		CommissionRate:      money(e.Rate()),
		EstimatedOrderValue: moneyPtr(e.EstimatedOrderValue()),
		SaleAmount:          moneyPtr(e.SaleAmount()),
		CommissionAmount:    money(e.Amount()),
		OccurredAt:          e.OccurredAt(),
		ConfirmedAt:         e.ConfirmedAt(),
		PaidAt:              e.PaidAt(),
		PayoutBatchID:       e.BatchID(),
	}
}

func FromCommissionEventViews(vs []*queries.CommissionEventView) []*CommissionEventResponse {
	res := make([]*CommissionEventResponse, len(vs))
	for i, v := range vs {
		res[i] = &CommissionEventResponse{
			ID:                  v.ID,
			VendorID:            v.VendorID,
			DealID:              v.DealID,
			EventType:           v.EventType,
			Status:              v.Status,
			CommissionRate:      money(v.CommissionRate),
			EstimatedOrderValue: moneyPtr(v.EstimatedOrderValue),
			SaleAmount:          moneyPtr(v.SaleAmount),
			CommissionAmount:    money(v.CommissionAmount),
			OccurredAt:          v.OccurredAt,
			ConfirmedAt:         v.ConfirmedAt,
			PaidAt:              v.PaidAt,
			PayoutBatchID:       v.PayoutBatchID,
		}
	}
	return res
}

type CommissionOverviewResponse struct {
	TotalRevenue          string `json:"total_revenue"`
	TotalClicks           int64  `json:"total_clicks"`
	TotalConversions      int64  `json:"total_conversions"`
	ActiveVendors         int64  `json:"active_vendors"`
	AverageCommissionRate string `json:"average_commission_rate"`
}

func FromCommissionOverview(o *queries.CommissionOverview) *CommissionOverviewResponse {
	return &CommissionOverviewResponse{
		TotalRevenue:          money(o.TotalRevenue),
		TotalClicks:           o.TotalClicks,
		TotalConversions:      o.TotalConversions,
		ActiveVendors:         o.ActiveVendors,
		AverageCommissionRate: money(o.AverageCommissionRate),
	}
}

type VendorPerformanceResponse struct {
	VendorID            uuid.UUID `json:"vendor_id"`
	VendorName          string    `json:"vendor_name"`
	Clicks              int64     `json:"clicks"`
	Conversions         int64     `json:"conversions"`
	ConversionRate      string    `json:"conversion_rate"`
	EstimatedCommission string    `json:"estimated_commission"`
	ConfirmedCommission string    `json:"confirmed_commission"`
}

func FromVendorPerformance(ps []*queries.VendorPerformance) []*VendorPerformanceResponse {
	res := make([]*VendorPerformanceResponse, len(ps))
	for i, p := range ps {
		res[i] = &VendorPerformanceResponse{
			VendorID:            p.VendorID,
			VendorName:          p.VendorName,
			Clicks:              p.Clicks,
			Conversions:         p.Conversions,
			ConversionRate:      money(p.ConversionRate),
			EstimatedCommission: money(p.EstimatedCommission),
			ConfirmedCommission: money(p.ConfirmedCommission),
		}
	}
	return res
}
