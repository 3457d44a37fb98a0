package request

import (
	"time"

	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordClickRequest: vendors record clicks on their own deals and may omit
// vendor_id; customers must name the deal's vendor.
type RecordClickRequest struct {
	DealID   uuid.UUID  `json:"deal_id" binding:"required"`
	VendorID *uuid.UUID `json:"vendor_id,omitempty"`
}

type ConfirmConversionRequest struct {
	SaleAmount *decimal.Decimal `json:"sale_amount" binding:"required"`
}

// CommissionFilterQuery binds ?status=&from=&to= (RFC 3339 timestamps).
type CommissionFilterQuery struct {
	Status *string    `form:"status"`
	From   *time.Time `form:"from"`
	To     *time.Time `form:"to"`
}

func (q CommissionFilterQuery) ToFilter() queries.CommissionFilter {
	return queries.CommissionFilter{
		Status: q.Status,
		From:   q.From,
		To:     q.To,
	}
}
