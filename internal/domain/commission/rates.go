package commission

import (
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Policy holds the platform defaults applied when a vendor has no negotiated rate.
type Policy struct {
	DefaultClickRate           decimal.Decimal
	DefaultConversionRate      decimal.Decimal
	DefaultEstimatedOrderValue decimal.Decimal
}

func NewPolicy(clickRate, conversionRate, estimatedOrderValue string) (Policy, error) {
	click, err := parseRate(clickRate)
	if err != nil {
		return Policy{}, err
	}
	conversion, err := parseRate(conversionRate)
	if err != nil {
		return Policy{}, err
	}
	estimate, err := decimal.NewFromString(estimatedOrderValue)
	if err != nil || estimate.IsNegative() {
		return Policy{}, errs.Wrap(errs.ErrDomainValidation, "default estimated order value must be a non-negative number")
	}
	return Policy{
		DefaultClickRate:           click,
		DefaultConversionRate:      conversion,
		DefaultEstimatedOrderValue: estimate,
	}, nil
}

func (p Policy) ClickRate(vendorRate *decimal.Decimal) decimal.Decimal {
	return ptr.Coalesce(vendorRate, p.DefaultClickRate)
}

func (p Policy) ConversionRate(vendorRate *decimal.Decimal) decimal.Decimal {
	return ptr.Coalesce(vendorRate, p.DefaultConversionRate)
}

// Amount is rate% of base, rounded half-up to cents.
func Amount(rate, base decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred).Round(2)
}

func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return errs.ErrInvalidCommissionRate
	}
	return nil
}

func parseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Mark(errs.Wrapf(err, "parse commission rate %q", s), errs.ErrInvalidCommissionRate)
	}
	if err := ValidateRate(rate); err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}
