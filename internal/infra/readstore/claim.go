package readstore

import (
	"context"

	"deals-engine/internal/infra"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"
	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimViewQueries interface {
	GetClaimContextByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetClaimContextByIDRow, error)
	ListClaimsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClaimsByCustomerParams) ([]sqlc.ListClaimsByCustomerRow, error)
}

type ClaimReadStore struct {
	queries ClaimViewQueries
	db      sqlc.DBTX
}

func NewClaimReadStore(queries ClaimViewQueries, db sqlc.DBTX) *ClaimReadStore {
	return &ClaimReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClaimReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClaimView, error) {
	row, err := r.queries.GetClaimContextByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get claim view by id", err)
	}
	return &queries.ClaimView{
		ID:            row.ID,
		DealID:        row.DealID,
		DealTitle:     row.DealTitle,
		VendorID:      row.VendorID,
		VendorName:    row.VendorName,
		CustomerID:    row.CustomerID,
		Code:          row.Code,
		Kind:          row.Kind,
		Status:        row.Status,
		IssuedAt:      pgconv.TimeFromPgtype(row.IssuedAt),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
		VerifiedAt:    pgconv.TimePtrFromPgtype(row.VerifiedAt),
		UsedAt:        pgconv.TimePtrFromPgtype(row.UsedAt),
		BillAmount:    pgconv.DecimalPtrFromNull(row.BillAmount),
		ActualSavings: pgconv.DecimalPtrFromNull(row.ActualSavings),
		AffiliateLink: pgconv.StringPtrFromPgtype(row.AffiliateLink),
	}, nil
}

func (r *ClaimReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ClaimView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListClaimsByCustomer(ctx, r.db, sqlc.ListClaimsByCustomerParams{
		CustomerID:    customerID,
		AfterIssuedAt: afterAt,
		AfterID:       afterID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims by customer", err)
	}

	result := make([]*queries.ClaimView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ClaimView{
			ID:            row.ID,
			DealID:        row.DealID,
			DealTitle:     row.DealTitle,
			VendorID:      row.VendorID,
			VendorName:    row.VendorName,
			CustomerID:    customerID,
			Code:          row.Code,
			Kind:          row.Kind,
			Status:        row.Status,
			IssuedAt:      pgconv.TimeFromPgtype(row.IssuedAt),
			ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
			VerifiedAt:    pgconv.TimePtrFromPgtype(row.VerifiedAt),
			UsedAt:        pgconv.TimePtrFromPgtype(row.UsedAt),
			BillAmount:    pgconv.DecimalPtrFromNull(row.BillAmount),
			ActualSavings: pgconv.DecimalPtrFromNull(row.ActualSavings),
			AffiliateLink: pgconv.StringPtrFromPgtype(row.AffiliateLink),
		}
	}
	return result, nil
}
