package commands

//go:generate mockgen -source=commission.go -destination=../../../tests/mock/commands/mock_commission.go -package=commandsmock

import (
	"context"

	"deals-engine/internal/domain/commission"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordClickInput struct {
	VendorID uuid.UUID
	DealID   uuid.UUID
}

type ConfirmConversionInput struct {
	EventID    uuid.UUID
	SaleAmount decimal.Decimal
}

type CommissionCommands interface {
	RecordClick(ctx context.Context, input RecordClickInput) (*commission.Event, error)
	ConfirmConversion(ctx context.Context, input ConfirmConversionInput) (*commission.Event, error)
}

type commissionUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy commission.Policy
}

func NewCommissionUseCase(uow shared.UnitOfWork, clk clock.Clock, policy commission.Policy) CommissionCommands {
	return &commissionUseCaseImpl{uow: uow, clock: clk, policy: policy}
}

func (uc *commissionUseCaseImpl) RecordClick(ctx context.Context, input RecordClickInput) (*commission.Event, error) {
	var click *commission.Event
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Deals().FindByID(ctx, input.DealID)
		if err != nil {
			return notFoundAs(err, errs.ErrDealNotFound)
		}
		// A deal of another vendor, or one without an affiliate program, is
		// indistinguishable from a missing one.
		if !d.IsOwnedBy(input.VendorID) || !d.IsMonetized() {
			return errs.ErrDealNotFound
		}

		vendor, err := tx.Vendors().FindByID(ctx, input.VendorID)
		if err != nil {
			return notFoundAs(err, errs.ErrVendorNotFound)
		}

		e, err := commission.NewClick(
			d.VendorID(),
			d.ID(),
			uc.policy.ClickRate(vendor.ClickRate),
			d.EstimatedOrderValue(uc.policy.DefaultEstimatedOrderValue),
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		if err = tx.Commissions().Create(ctx, e); err != nil {
			return err
		}
		click = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return click, nil
}

// ConfirmConversion converts a pending event in place into a confirmed conversion
// priced at the vendor's conversion rate.
func (uc *commissionUseCaseImpl) ConfirmConversion(ctx context.Context, input ConfirmConversionInput) (*commission.Event, error) {
	if !input.SaleAmount.IsPositive() {
		return nil, errs.ErrInvalidSaleAmount
	}

	var confirmed *commission.Event
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Commissions().FindByID(ctx, input.EventID)
		if err != nil {
			return notFoundAs(err, errs.ErrEventNotFound)
		}
		vendor, err := tx.Vendors().FindByID(ctx, e.VendorID())
		if err != nil {
			return notFoundAs(err, errs.ErrVendorNotFound)
		}

		rate := uc.policy.ConversionRate(vendor.ConversionRate)
		if err = e.Confirm(input.SaleAmount, rate, uc.clock.Now()); err != nil {
			return err
		}
		ok, err := tx.Commissions().Confirm(ctx, e)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrEventNotPending
		}
		confirmed = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}
