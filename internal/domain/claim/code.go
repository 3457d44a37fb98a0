package claim

import (
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/randcode"
)

const (
	CodeLength = 8
	// MaxCodeAttempts bounds collision retries when inserting a fresh code.
	MaxCodeAttempts = 5
)

type Code string

func NewCode(s string) (Code, error) {
	normalized := randcode.Normalize(s)
	if !randcode.IsValid(normalized, CodeLength) {
		return "", errs.ErrInvalidClaimCode
	}
	return Code(normalized), nil
}

func GenerateCode() (Code, error) {
	code, err := randcode.Generate(CodeLength)
	if err != nil {
		return "", errs.Wrap(err, "generate claim code")
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}
