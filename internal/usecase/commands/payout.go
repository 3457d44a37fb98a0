package commands

//go:generate mockgen -source=payout.go -destination=../../../tests/mock/commands/mock_payout.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"deals-engine/internal/domain/payout"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBatchInput struct {
	VendorID    uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	Notes       *string
}

type MarkBatchPaidInput struct {
	BatchID       uuid.UUID
	PaymentMethod string
	Reference     string
}

type PayoutCommands interface {
	CreateBatch(ctx context.Context, input CreateBatchInput) (*payout.Batch, error)
	MarkPaid(ctx context.Context, input MarkBatchPaidInput) (*payout.Batch, error)
}

type payoutUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPayoutUseCase(uow shared.UnitOfWork, clk clock.Clock) PayoutCommands {
	return &payoutUseCaseImpl{uow: uow, clock: clk}
}

// CreateBatch snapshots the vendor's confirmed, unbatched events in the period.
// The selected rows are locked until the batch id is stamped on them.
func (uc *payoutUseCaseImpl) CreateBatch(ctx context.Context, input CreateBatchInput) (*payout.Batch, error) {
	period, err := payout.NewPeriod(input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, err
	}

	var batch *payout.Batch
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events, err := tx.Commissions().ListBatchable(ctx, input.VendorID, period)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			batched, cerr := tx.Commissions().CountBatchedInPeriod(ctx, input.VendorID, period)
			if cerr != nil {
				return cerr
			}
			if batched > 0 {
				return errs.ErrOverlappingBatch
			}
			return errs.ErrNoConfirmedEvents
		}

		b, err := payout.NewBatch(input.VendorID, period, events, input.Notes, uc.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.Payouts().Create(ctx, b); err != nil {
			return missingRefAs(err, errs.ErrVendorNotFound)
		}

		assigned, err := tx.Commissions().AssignToBatch(ctx, b.ID(), b.EventIDs())
		if err != nil {
			return err
		}
		if assigned != int64(len(b.EventIDs())) {
			slog.WarnContext(ctx, "payout batch lost events to a concurrent batch",
				"batch_id", b.ID(), "expected", len(b.EventIDs()), "assigned", assigned)
			return errs.ErrOverlappingBatch
		}
		batch = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// MarkPaid records an externally executed payment and settles the batch's events.
func (uc *payoutUseCaseImpl) MarkPaid(ctx context.Context, input MarkBatchPaidInput) (*payout.Batch, error) {
	var batch *payout.Batch
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Payouts().FindByID(ctx, input.BatchID)
		if err != nil {
			return notFoundAs(err, errs.ErrBatchNotFound)
		}

		now := uc.clock.Now()
		if err = b.MarkPaid(input.PaymentMethod, input.Reference, now); err != nil {
			return err
		}
		ok, err := tx.Payouts().MarkPaid(ctx, b)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrAlreadyPaid
		}
		if _, err = tx.Commissions().MarkBatchPaid(ctx, b.ID(), now); err != nil {
			return err
		}
		batch = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}
