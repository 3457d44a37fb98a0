package repository

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/repository/mock_customer_queries.go -package=repositorymock

import (
	"context"

	"deals-engine/internal/domain/customer"
	"deals-engine/internal/infra"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
	AddCustomerSavings(ctx context.Context, db sqlc.DBTX, arg sqlc.AddCustomerSavingsParams) (int64, error)
}

type CustomerRepository struct {
	queries CustomerQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return customer.Reconstruct(row.ID, row.Name, customer.Tier(row.MembershipTier), row.TotalSavings, row.DealsClaimed), nil
}

// AddSavings bumps the customer's lifetime savings and redeemed-deal counter.
func (r *CustomerRepository) AddSavings(ctx context.Context, id uuid.UUID, savings decimal.Decimal) (bool, error) {
	n, err := r.queries.AddCustomerSavings(ctx, r.db, sqlc.AddCustomerSavingsParams{
		Savings: savings,
		ID:      id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to add customer savings", err)
	}
	return n == 1, nil
}

type VendorQueries interface {
	GetVendorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vendors, error)
}

type VendorRepository struct {
	queries VendorQueries
	db      sqlc.DBTX
}

func NewVendorRepository(queries VendorQueries, db sqlc.DBTX) *VendorRepository {
	return &VendorRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.VendorSnapshot, error) {
	row, err := r.queries.GetVendorByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vendor", err)
	}
	snap := &shared.VendorSnapshot{
		ID:   row.ID,
		Name: row.Name,
	}
	if row.ClickRate.Valid {
		rate := row.ClickRate.Decimal
		snap.ClickRate = &rate
	}
	if row.ConversionRate.Valid {
		rate := row.ConversionRate.Decimal
		snap.ConversionRate = &rate
	}
	return snap, nil
}
