package commands

//go:generate mockgen -source=deal.go -destination=../../../tests/mock/commands/mock_deal.go -package=commandsmock

import (
	"context"
	"time"

	"deals-engine/internal/domain/deal"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDealInput struct {
	VendorID          uuid.UUID
	Title             string
	Kind              string
	DiscountPercent   decimal.Decimal
	OriginalPrice     *decimal.Decimal
	DiscountedPrice   *decimal.Decimal
	VerificationCode  *string
	AffiliateLink     *string
	CommissionEnabled bool
	AllowRepeatClaims bool
	MaxRedemptions    *int32
	ExpiresAt         *time.Time
}

type DealCommands interface {
	Create(ctx context.Context, input CreateDealInput) (*deal.Deal, error)
}

type dealUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDealUseCase(uow shared.UnitOfWork, clk clock.Clock) DealCommands {
	return &dealUseCaseImpl{uow: uow, clock: clk}
}

// Create registers a vendor deal. In-store deals without a vendor-chosen PIN get a
// generated one, regenerated on collision with the vendor's other deals.
func (uc *dealUseCaseImpl) Create(ctx context.Context, input CreateDealInput) (*deal.Deal, error) {
	kind, err := deal.NewKind(input.Kind)
	if err != nil {
		return nil, err
	}

	var pin *deal.VerificationCode
	chosen := input.VerificationCode != nil && *input.VerificationCode != ""
	switch {
	case chosen:
		code, verr := deal.NewVerificationCode(*input.VerificationCode)
		if verr != nil {
			return nil, verr
		}
		pin = &code
	case kind == deal.KindInStore:
		code, gerr := deal.GenerateVerificationCode()
		if gerr != nil {
			return nil, gerr
		}
		pin = &code
	}

	d, err := deal.NewDeal(deal.NewDealParams{
		VendorID:          input.VendorID,
		Title:             input.Title,
		Kind:              kind,
		DiscountPercent:   input.DiscountPercent,
		OriginalPrice:     input.OriginalPrice,
		DiscountedPrice:   input.DiscountedPrice,
		VerificationCode:  pin,
		AffiliateLink:     input.AffiliateLink,
		CommissionEnabled: input.CommissionEnabled,
		AllowRepeatClaims: input.AllowRepeatClaims,
		MaxRedemptions:    input.MaxRedemptions,
		ExpiresAt:         input.ExpiresAt,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for attempt := 1; attempt <= deal.MaxVerificationCodeAttempts; attempt++ {
			created, err := tx.Deals().Create(ctx, d)
			if err != nil {
				return missingRefAs(err, errs.ErrVendorNotFound)
			}
			if created {
				return nil
			}
			if chosen {
				return errs.ErrPINTaken
			}
			code, err := deal.GenerateVerificationCode()
			if err != nil {
				return err
			}
			d.AssignVerificationCode(code)
		}
		return errs.ErrCodeGenerationExhausted
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
