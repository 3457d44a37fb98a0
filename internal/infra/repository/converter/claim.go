package converter

import (
	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/customer"
	"deals-engine/internal/domain/deal"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"
	"deals-engine/internal/usecase/shared"
)

func ClaimToInsertParams(c *claim.Claim) sqlc.InsertClaimParams {
	return sqlc.InsertClaimParams{
		ID:         c.ID(),
		DealID:     c.DealID(),
		CustomerID: c.CustomerID(),
		Code:       c.Code().String(),
		Kind:       c.Kind().String(),
		Status:     c.Status().String(),
		IssuedAt:   pgconv.TimeToPgtype(c.IssuedAt()),
		ExpiresAt:  pgconv.TimeToPgtype(c.ExpiresAt()),
		VerifiedAt: pgconv.TimePtrToPgtype(c.VerifiedAt()),
		VerifiedBy: pgconv.UUIDPtrToPgtype(c.VerifiedBy()),
	}
}

// ClaimContextFromRow maps the claim/deal/vendor/customer join. The by-code row has
// the same shape and converts directly.
func ClaimContextFromRow(row sqlc.GetClaimContextByIDRow) *shared.ClaimContext {
	c := claim.Reconstruct(claim.ReconstructParams{
		ID:            row.ID,
		DealID:        row.DealID,
		CustomerID:    row.CustomerID,
		Code:          claim.Code(row.Code),
		Kind:          deal.Kind(row.Kind),
		Status:        claim.Status(row.Status),
		IssuedAt:      pgconv.TimeFromPgtype(row.IssuedAt),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
		VerifiedAt:    pgconv.TimePtrFromPgtype(row.VerifiedAt),
		VerifiedBy:    pgconv.UUIDPtrFromPgtype(row.VerifiedBy),
		UsedAt:        pgconv.TimePtrFromPgtype(row.UsedAt),
		BillAmount:    pgconv.DecimalPtrFromNull(row.BillAmount),
		ActualSavings: pgconv.DecimalPtrFromNull(row.ActualSavings),
	})

	return &shared.ClaimContext{
		Claim: c,
		Deal: shared.DealSummary{
			ID:              row.DealID,
			VendorID:        row.VendorID,
			VendorName:      row.VendorName,
			Title:           row.DealTitle,
			Kind:            deal.Kind(row.Kind),
			DiscountPercent: deal.ReconstructDiscountPercent(row.DiscountPercentage),
			AffiliateLink:   pgconv.StringPtrFromPgtype(row.AffiliateLink),
		},
		Customer: shared.CustomerSummary{
			ID:   row.CustomerID,
			Name: row.CustomerName,
			Tier: customer.Tier(row.MembershipTier),
		},
	}
}
