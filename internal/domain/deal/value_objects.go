package deal

import (
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/randcode"

	"github.com/shopspring/decimal"
)

const (
	VerificationCodeLength = 6
	// MaxVerificationCodeAttempts bounds regeneration when a generated PIN collides
	// with another of the vendor's deals.
	MaxVerificationCodeAttempts = 5
)

var hundred = decimal.NewFromInt(100)

type DiscountPercent struct {
	value decimal.Decimal
}

func NewDiscountPercent(value decimal.Decimal) (DiscountPercent, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return DiscountPercent{}, errs.ErrInvalidDiscountPercent
	}
	return DiscountPercent{value: value}, nil
}

// ReconstructDiscountPercent wraps a stored percentage that was validated on write.
func ReconstructDiscountPercent(value decimal.Decimal) DiscountPercent {
	return DiscountPercent{value: value}
}

func (p DiscountPercent) Decimal() decimal.Decimal {
	return p.value
}

// Of returns the discount on amount, rounded half-up to cents.
func (p DiscountPercent) Of(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.value).Div(hundred).Round(2)
}

func (p DiscountPercent) String() string {
	return p.value.StringFixed(2)
}

// VerificationCode is the vendor-level PIN printed at the point of sale.
type VerificationCode string

func NewVerificationCode(s string) (VerificationCode, error) {
	normalized := randcode.Normalize(s)
	if !randcode.IsValid(normalized, VerificationCodeLength) {
		return "", errs.ErrInvalidVerificationCode
	}
	return VerificationCode(normalized), nil
}

func GenerateVerificationCode() (VerificationCode, error) {
	code, err := randcode.Generate(VerificationCodeLength)
	if err != nil {
		return "", errs.Wrap(err, "generate verification code")
	}
	return VerificationCode(code), nil
}

func (c VerificationCode) String() string {
	return string(c)
}
