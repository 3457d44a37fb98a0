package commands

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/commands/mock_verification.go -package=commandsmock

import (
	"context"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type VerifyClaimInput struct {
	Code     string
	VendorID uuid.UUID
}

type VerifyPINInput struct {
	PIN      string
	VendorID uuid.UUID
}

type VerificationCommands interface {
	VerifyClaim(ctx context.Context, input VerifyClaimInput) (*shared.ClaimContext, error)
	VerifyPIN(ctx context.Context, input VerifyPINInput) (*deal.Deal, error)
}

type verificationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVerificationUseCase(uow shared.UnitOfWork, clk clock.Clock) VerificationCommands {
	return &verificationUseCaseImpl{uow: uow, clock: clk}
}

// VerifyClaim moves a claim from claimed to verified with a single guarded update.
// When the guard rejects it the claim is re-read only to explain why.
func (uc *verificationUseCaseImpl) VerifyClaim(ctx context.Context, input VerifyClaimInput) (*shared.ClaimContext, error) {
	code, err := claim.NewCode(input.Code)
	if err != nil {
		return nil, err
	}

	var verified *shared.ClaimContext
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		id, ok, err := tx.Claims().MarkVerified(ctx, code, input.VendorID, now)
		if err != nil {
			return err
		}
		if !ok {
			current, ferr := tx.Claims().FindByCode(ctx, code)
			if ferr != nil {
				return notFoundAs(ferr, errs.ErrCodeNotFound)
			}
			if cerr := current.Claim.CheckVerifiable(input.VendorID, current.Deal.VendorID, now); cerr != nil {
				return cerr
			}
			return errs.ErrConcurrentModification
		}

		cc, err := tx.Claims().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrCodeNotFound)
		}
		verified = cc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verified, nil
}

// VerifyPIN identifies the vendor's live deal carrying the PIN. Nothing is mutated.
func (uc *verificationUseCaseImpl) VerifyPIN(ctx context.Context, input VerifyPINInput) (*deal.Deal, error) {
	code, err := deal.NewVerificationCode(input.PIN)
	if err != nil {
		return nil, err
	}

	var found *deal.Deal
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Deals().FindLiveByVendorCode(ctx, input.VendorID, code, uc.clock.Now())
		if err != nil {
			return notFoundAs(err, errs.ErrPINNotFound)
		}
		found = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
