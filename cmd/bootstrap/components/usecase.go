package components

import (
	"deals-engine/internal/domain/commission"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/config"
	"deals-engine/internal/usecase"
	"deals-engine/internal/usecase/commands"
	"deals-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCommissionPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDealUseCase,
		commands.NewClaimUseCase,
		commands.NewVerificationUseCase,
		commands.NewMembershipUseCase,
		commands.NewTransactionUseCase,
		commands.NewPOSUseCase,
		commands.NewCommissionUseCase,
		commands.NewPayoutUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewClaimQueries,
		queries.NewCommissionQueries,
		queries.NewPayoutQueries,
		queries.NewPOSQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCommissionPolicy(cfg config.Config) (commission.Policy, error) {
	return commission.NewPolicy(
		cfg.Commission.DefaultClickRate,
		cfg.Commission.DefaultConversionRate,
		cfg.Commission.DefaultEstimatedOrderValue,
	)
}
