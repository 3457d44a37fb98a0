package bootstrap

import (
	"time"

	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/config"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewMembershipSigner,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	d, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, d), nil
}

// Membership tokens share the application clock so tests can pin issuance time.
func NewMembershipSigner(cfg config.Config, clk clock.Clock) *jwt.MembershipSigner {
	return jwt.NewMembershipSigner(cfg.Membership.Secret, cfg.Membership.Issuer, clk.Now)
}
