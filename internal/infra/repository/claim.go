package repository

//go:generate mockgen -source=claim.go -destination=../../../tests/mock/repository/mock_claim_queries.go -package=repositorymock

import (
	"context"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/infra"
	"deals-engine/internal/infra/repository/converter"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/pgconv"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClaimQueries interface {
	InsertClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertClaimParams) (sqlc.Claims, error)
	GetClaimContextByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetClaimContextByIDRow, error)
	GetClaimContextByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetClaimContextByCodeRow, error)
	HasLiveClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.HasLiveClaimParams) (bool, error)
	VerifyClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.VerifyClaimParams) (uuid.UUID, error)
	ConsumeClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeClaimParams) (int64, error)
}

type ClaimRepository struct {
	queries ClaimQueries
	db      sqlc.DBTX
}

func NewClaimRepository(queries ClaimQueries, db sqlc.DBTX) *ClaimRepository {
	return &ClaimRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClaimRepository) Insert(ctx context.Context, c *claim.Claim) (bool, error) {
	_, err := r.queries.InsertClaim(ctx, r.db, converter.ClaimToInsertParams(c))
	if err != nil {
		// ON CONFLICT (code) DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert claim", err)
	}
	return true, nil
}

func (r *ClaimRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ClaimContext, error) {
	row, err := r.queries.GetClaimContextByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find claim", err)
	}
	return converter.ClaimContextFromRow(row), nil
}

func (r *ClaimRepository) FindByCode(ctx context.Context, code claim.Code) (*shared.ClaimContext, error) {
	row, err := r.queries.GetClaimContextByCode(ctx, r.db, code.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find claim by code", err)
	}
	return converter.ClaimContextFromRow(sqlc.GetClaimContextByIDRow(row)), nil
}

func (r *ClaimRepository) HasLiveClaim(ctx context.Context, dealID, customerID uuid.UUID, now time.Time) (bool, error) {
	live, err := r.queries.HasLiveClaim(ctx, r.db, sqlc.HasLiveClaimParams{
		DealID:     dealID,
		CustomerID: customerID,
		ExpiresAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check live claims", err)
	}
	return live, nil
}

func (r *ClaimRepository) MarkVerified(ctx context.Context, code claim.Code, vendorID uuid.UUID, now time.Time) (uuid.UUID, bool, error) {
	id, err := r.queries.VerifyClaim(ctx, r.db, sqlc.VerifyClaimParams{
		Now:      pgconv.TimeToPgtype(now),
		VendorID: vendorID,
		Code:     code.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, infra.WrapRepoErr("failed to verify claim", err)
	}
	return id, true, nil
}

func (r *ClaimRepository) MarkUsed(ctx context.Context, c *claim.Claim, vendorID uuid.UUID) (bool, error) {
	if c.UsedAt() == nil || c.BillAmount() == nil || c.ActualSavings() == nil {
		return false, errs.Wrapf(errs.ErrDomainValidation, "claim %s has not been consumed", c.ID())
	}
	n, err := r.queries.ConsumeClaim(ctx, r.db, sqlc.ConsumeClaimParams{
		Now:           pgconv.TimeToPgtype(*c.UsedAt()),
		BillAmount:    *c.BillAmount(),
		ActualSavings: *c.ActualSavings(),
		ID:            c.ID(),
		VendorID:      vendorID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark claim used", err)
	}
	return n == 1, nil
}
