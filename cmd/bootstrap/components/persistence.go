package components

import (
	"deals-engine/internal/infra/readstore"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/infra/uow"
	"deals-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Claim
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClaimViewQueries)),
		),
		fx.Annotate(
			readstore.NewClaimReadStore,
			fx.As(new(queries.ClaimReadStore)),
		),
		// Commission
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommissionViewQueries)),
		),
		fx.Annotate(
			readstore.NewCommissionReadStore,
			fx.As(new(queries.CommissionReadStore)),
		),
		// Payout
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PayoutViewQueries)),
		),
		fx.Annotate(
			readstore.NewPayoutReadStore,
			fx.As(new(queries.PayoutReadStore)),
		),
		// POS
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.POSViewQueries)),
		),
		fx.Annotate(
			readstore.NewPOSReadStore,
			fx.As(new(queries.POSReadStore)),
		),
	),
)

// Write-side repositories are bound per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
