package converter

import (
	"deals-engine/internal/domain/deal"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DealToCreateParams(d *deal.Deal) sqlc.CreateDealParams {
	return sqlc.CreateDealParams{
		ID:                 d.ID(),
		VendorID:           d.VendorID(),
		Title:              d.Title(),
		Kind:               d.Kind().String(),
		DiscountPercentage: d.Discount().Decimal(),
		OriginalPrice:      pgconv.DecimalPtrToNull(d.OriginalPrice()),
		DiscountedPrice:    pgconv.DecimalPtrToNull(d.DiscountedPrice()),
		VerificationCode:   verificationCodeToPgtype(d.VerificationCode()),
		AffiliateLink:      pgconv.StringPtrToPgtype(d.AffiliateLink()),
		CommissionEnabled:  d.CommissionEnabled(),
		AllowRepeatClaims:  d.AllowsRepeatClaims(),
		IsActive:           d.IsActive(),
		IsApproved:         d.IsApproved(),
		MaxRedemptions:     pgconv.Int32PtrToPgtype(d.MaxRedemptions()),
		ExpiresAt:          pgconv.TimePtrToPgtype(d.ExpiresAt()),
		CreatedAt:          pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func DealFromRow(row sqlc.Deals) *deal.Deal {
	var code *deal.VerificationCode
	if row.VerificationCode.Valid {
		vc := deal.VerificationCode(row.VerificationCode.String)
		code = &vc
	}
	return deal.Reconstruct(deal.ReconstructParams{
		ID:                row.ID,
		VendorID:          row.VendorID,
		Title:             row.Title,
		Kind:              deal.Kind(row.Kind),
		DiscountPercent:   row.DiscountPercentage,
		OriginalPrice:     pgconv.DecimalPtrFromNull(row.OriginalPrice),
		DiscountedPrice:   pgconv.DecimalPtrFromNull(row.DiscountedPrice),
		VerificationCode:  code,
		AffiliateLink:     pgconv.StringPtrFromPgtype(row.AffiliateLink),
		CommissionEnabled: row.CommissionEnabled,
		AllowRepeatClaims: row.AllowRepeatClaims,
		IsActive:          row.IsActive,
		IsApproved:        row.IsApproved,
		MaxRedemptions:    pgconv.Int32PtrFromPgtype(row.MaxRedemptions),
		RedemptionCount:   row.RedemptionCount,
		ExpiresAt:         pgconv.TimePtrFromPgtype(row.ExpiresAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func verificationCodeToPgtype(code *deal.VerificationCode) pgtype.Text {
	if code == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: code.String(), Valid: true}
}

func VerificationCodeToPgtype(code deal.VerificationCode) pgtype.Text {
	return verificationCodeToPgtype(&code)
}
