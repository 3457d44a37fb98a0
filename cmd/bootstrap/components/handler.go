package components

import (
	"deals-engine/internal/handler"
	"deals-engine/internal/handler/api"
	"deals-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewClaimHandler,
		api.NewMembershipHandler,
		api.NewVerificationHandler,
		api.NewTransactionHandler,
		api.NewDealHandler,
		api.NewCommissionHandler,
		api.NewPayoutHandler,
		api.NewPOSHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Claim        *api.ClaimHandler
	Membership   *api.MembershipHandler
	Verification *api.VerificationHandler
	Transaction  *api.TransactionHandler
	Deal         *api.DealHandler
	Commission   *api.CommissionHandler
	Payout       *api.PayoutHandler
	POS          *api.POSHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Claim:        p.Claim,
		Membership:   p.Membership,
		Verification: p.Verification,
		Transaction:  p.Transaction,
		Deal:         p.Deal,
		Commission:   p.Commission,
		Payout:       p.Payout,
		POS:          p.POS,
	}
}
