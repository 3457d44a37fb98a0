package readstore

import (
	"context"

	"deals-engine/internal/infra"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"
	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type POSViewQueries interface {
	GetPOSSessionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PosSessions, error)
}

type POSReadStore struct {
	queries POSViewQueries
	db      sqlc.DBTX
}

func NewPOSReadStore(queries POSViewQueries, db sqlc.DBTX) *POSReadStore {
	return &POSReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *POSReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	row, err := r.queries.GetPOSSessionByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pos session view by id", err)
	}
	return &queries.SessionView{
		ID:               row.ID,
		VendorID:         row.VendorID,
		TerminalID:       row.TerminalID,
		Status:           row.Status,
		OpenedAt:         pgconv.TimeFromPgtype(row.OpenedAt),
		ClosedAt:         pgconv.TimePtrFromPgtype(row.ClosedAt),
		TransactionCount: row.TransactionCount,
		TotalBill:        row.TotalBill,
		TotalSavings:     row.TotalSavings,
	}, nil
}
