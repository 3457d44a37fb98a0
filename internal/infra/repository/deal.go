package repository

//go:generate mockgen -source=deal.go -destination=../../../tests/mock/repository/mock_deal_queries.go -package=repositorymock

import (
	"context"
	"time"

	"deals-engine/internal/domain/deal"
	"deals-engine/internal/infra"
	"deals-engine/internal/infra/repository/converter"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DealQueries interface {
	CreateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealParams) (sqlc.Deals, error)
	GetDealByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	GetLiveDealByVendorCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLiveDealByVendorCodeParams) (sqlc.Deals, error)
	ReserveDealRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveDealRedemptionParams) (int64, error)
}

type DealRepository struct {
	queries DealQueries
	db      sqlc.DBTX
}

func NewDealRepository(queries DealQueries, db sqlc.DBTX) *DealRepository {
	return &DealRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the deal; the insert is skipped when the vendor already uses its PIN.
func (r *DealRepository) Create(ctx context.Context, d *deal.Deal) (bool, error) {
	_, err := r.queries.CreateDeal(ctx, r.db, converter.DealToCreateParams(d))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to create deal", err)
	}
	return true, nil
}

func (r *DealRepository) FindByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error) {
	row, err := r.queries.GetDealByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find deal", err)
	}
	return converter.DealFromRow(row), nil
}

func (r *DealRepository) FindLiveByVendorCode(ctx context.Context, vendorID uuid.UUID, code deal.VerificationCode, now time.Time) (*deal.Deal, error) {
	row, err := r.queries.GetLiveDealByVendorCode(ctx, r.db, sqlc.GetLiveDealByVendorCodeParams{
		VendorID:         vendorID,
		VerificationCode: converter.VerificationCodeToPgtype(code),
		Now:              pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find deal by verification code", err)
	}
	return converter.DealFromRow(row), nil
}

func (r *DealRepository) ReserveRedemption(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.ReserveDealRedemption(ctx, r.db, sqlc.ReserveDealRedemptionParams{
		ID:  id,
		Now: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve deal redemption", err)
	}
	return n == 1, nil
}
