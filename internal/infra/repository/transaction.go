package repository

//go:generate mockgen -source=transaction.go -destination=../../../tests/mock/repository/mock_transaction_queries.go -package=repositorymock

import (
	"context"

	"deals-engine/internal/domain/pos"
	"deals-engine/internal/domain/transaction"
	"deals-engine/internal/infra"
	"deals-engine/internal/infra/repository/converter"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionQueries interface {
	CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) (sqlc.Transactions, error)
}

type TransactionRepository struct {
	queries TransactionQueries
	db      sqlc.DBTX
}

func NewTransactionRepository(queries TransactionQueries, db sqlc.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	if _, err := r.queries.CreateTransaction(ctx, r.db, converter.TransactionToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

type POSSessionQueries interface {
	CreatePOSSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePOSSessionParams) (sqlc.PosSessions, error)
	GetPOSSessionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PosSessions, error)
	ClosePOSSession(ctx context.Context, db sqlc.DBTX, arg sqlc.ClosePOSSessionParams) (int64, error)
	AddPOSSessionTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.AddPOSSessionTotalsParams) (int64, error)
}

type POSSessionRepository struct {
	queries POSSessionQueries
	db      sqlc.DBTX
}

func NewPOSSessionRepository(queries POSSessionQueries, db sqlc.DBTX) *POSSessionRepository {
	return &POSSessionRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with a DUPLICATE_KEY repository error when the terminal already has an open session.
func (r *POSSessionRepository) Create(ctx context.Context, s *pos.Session) error {
	if _, err := r.queries.CreatePOSSession(ctx, r.db, converter.SessionToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to open pos session", err)
	}
	return nil
}

func (r *POSSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*pos.Session, error) {
	row, err := r.queries.GetPOSSessionByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pos session", err)
	}
	return converter.SessionFromRow(row), nil
}

func (r *POSSessionRepository) Close(ctx context.Context, s *pos.Session) (bool, error) {
	n, err := r.queries.ClosePOSSession(ctx, r.db, sqlc.ClosePOSSessionParams{
		ID:       s.ID(),
		VendorID: s.VendorID(),
		ClosedAt: pgconv.TimePtrToPgtype(s.ClosedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to close pos session", err)
	}
	return n == 1, nil
}

func (r *POSSessionRepository) AddTotals(ctx context.Context, sessionID, vendorID uuid.UUID, bill, savings decimal.Decimal) (bool, error) {
	n, err := r.queries.AddPOSSessionTotals(ctx, r.db, sqlc.AddPOSSessionTotalsParams{
		Bill:     bill,
		Savings:  savings,
		ID:       sessionID,
		VendorID: vendorID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update pos session totals", err)
	}
	return n == 1, nil
}
