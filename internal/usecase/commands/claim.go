package commands

//go:generate mockgen -source=claim.go -destination=../../../tests/mock/commands/mock_claim.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/commission"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type IssueClaimInput struct {
	DealID     uuid.UUID
	CustomerID uuid.UUID
}

type IssueClaimResult struct {
	ClaimID   uuid.UUID
	DealID    uuid.UUID
	Code      claim.Code
	Kind      deal.Kind
	Status    claim.Status
	IssuedAt  time.Time
	ExpiresAt time.Time
	// Set for online deals only.
	AffiliateLink *string
	ClickEventID  *uuid.UUID
}

type ClaimCommands interface {
	Issue(ctx context.Context, input IssueClaimInput) (*IssueClaimResult, error)
}

type claimUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy commission.Policy
}

func NewClaimUseCase(uow shared.UnitOfWork, clk clock.Clock, policy commission.Policy) ClaimCommands {
	return &claimUseCaseImpl{uow: uow, clock: clk, policy: policy}
}

// Issue reserves redemption capacity and stores a fresh claim in one transaction.
// Monetized online deals also record a pending click.
func (uc *claimUseCaseImpl) Issue(ctx context.Context, input IssueClaimInput) (*IssueClaimResult, error) {
	var result *IssueClaimResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		d, err := tx.Deals().FindByID(ctx, input.DealID)
		if err != nil {
			return notFoundAs(err, errs.ErrDealNotFound)
		}
		if err = d.CheckClaimable(now); err != nil {
			return err
		}

		// The reservation row-locks the deal until commit, so concurrent issues
		// for the same deal run the held-claim check one at a time.
		reserved, err := tx.Deals().ReserveRedemption(ctx, d.ID(), now)
		if err != nil {
			return err
		}
		if !reserved {
			// Lost a race for the last redemption slot.
			return errs.ErrRedemptionCapReached
		}

		if !d.AllowsRepeatClaims() {
			held, herr := tx.Claims().HasLiveClaim(ctx, d.ID(), input.CustomerID, now)
			if herr != nil {
				return herr
			}
			if held {
				return errs.ErrClaimAlreadyHeld
			}
		}

		c, err := insertWithFreshCode(ctx, tx, func(code claim.Code) *claim.Claim {
			return claim.Issue(d, input.CustomerID, code, now)
		})
		if err != nil {
			return missingRefAs(err, errs.ErrCustomerNotFound)
		}

		result = &IssueClaimResult{
			ClaimID:   c.ID(),
			DealID:    d.ID(),
			Code:      c.Code(),
			Kind:      c.Kind(),
			Status:    c.Status(),
			IssuedAt:  c.IssuedAt(),
			ExpiresAt: c.ExpiresAt(),
		}
		if d.Kind() == deal.KindOnline {
			result.AffiliateLink = d.AffiliateLink()
		}

		if d.IsMonetized() {
			click, cerr := uc.recordClick(ctx, tx, d, now)
			if cerr != nil {
				return cerr
			}
			id := click.ID()
			result.ClickEventID = &id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *claimUseCaseImpl) recordClick(ctx context.Context, tx shared.Tx, d *deal.Deal, now time.Time) (*commission.Event, error) {
	vendor, err := tx.Vendors().FindByID(ctx, d.VendorID())
	if err != nil {
		return nil, notFoundAs(err, errs.ErrVendorNotFound)
	}
	click, err := commission.NewClick(
		d.VendorID(),
		d.ID(),
		uc.policy.ClickRate(vendor.ClickRate),
		d.EstimatedOrderValue(uc.policy.DefaultEstimatedOrderValue),
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = tx.Commissions().Create(ctx, click); err != nil {
		return nil, err
	}
	return click, nil
}

// insertWithFreshCode retries on claim code collisions; the insert skips conflicting
// codes instead of failing, so the surrounding transaction stays usable.
func insertWithFreshCode(ctx context.Context, tx shared.Tx, build func(code claim.Code) *claim.Claim) (*claim.Claim, error) {
	for attempt := 1; attempt <= claim.MaxCodeAttempts; attempt++ {
		code, err := claim.GenerateCode()
		if err != nil {
			return nil, err
		}
		c := build(code)
		inserted, err := tx.Claims().Insert(ctx, c)
		if err != nil {
			return nil, err
		}
		if inserted {
			return c, nil
		}
		slog.WarnContext(ctx, "claim code collision", "attempt", attempt)
	}
	return nil, errs.ErrCodeGenerationExhausted
}
