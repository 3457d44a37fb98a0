package commands

//go:generate mockgen -source=transaction.go -destination=../../../tests/mock/commands/mock_transaction.go -package=commandsmock

import (
	"context"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/domain/transaction"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompleteTransactionInput struct {
	ClaimID       uuid.UUID
	VendorID      uuid.UUID
	BillAmount    decimal.Decimal
	PaymentMethod string
	SessionID     *uuid.UUID
}

type PINCheckoutInput struct {
	VendorID   uuid.UUID
	PIN        string
	CustomerID uuid.UUID
	BillAmount decimal.Decimal
	// Optional vendor-entered discount; the deal percentage applies otherwise.
	DiscountAmount *decimal.Decimal
	PaymentMethod  string
	SessionID      *uuid.UUID
}

type TransactionResult struct {
	Transaction *transaction.Transaction
	ClaimCode   claim.Code
	DealTitle   string
}

type TransactionCommands interface {
	Complete(ctx context.Context, input CompleteTransactionInput) (*TransactionResult, error)
	PINCheckout(ctx context.Context, input PINCheckoutInput) (*TransactionResult, error)
}

type transactionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTransactionUseCase(uow shared.UnitOfWork, clk clock.Clock) TransactionCommands {
	return &transactionUseCaseImpl{uow: uow, clock: clk}
}

// Complete redeems a verified claim. Savings are computed here from the deal
// percentage; a claimed-but-unverified claim is rejected, never auto-verified.
func (uc *transactionUseCaseImpl) Complete(ctx context.Context, input CompleteTransactionInput) (*TransactionResult, error) {
	if err := transaction.ValidateBill(input.BillAmount); err != nil {
		return nil, err
	}
	method, err := transaction.NewPaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var result *TransactionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		cc, err := tx.Claims().FindByID(ctx, input.ClaimID)
		if err != nil {
			return notFoundAs(err, errs.ErrClaimNotFound)
		}

		savings := cc.Deal.DiscountPercent.Of(input.BillAmount)
		if err = cc.Claim.Consume(input.VendorID, cc.Deal.VendorID, input.BillAmount, savings, now); err != nil {
			return err
		}
		if err = uc.markUsed(ctx, tx, cc.Claim, input.VendorID, now); err != nil {
			return err
		}

		t, err := uc.record(ctx, tx, cc.Claim, input.VendorID, method, input.SessionID, now)
		if err != nil {
			return err
		}
		result = &TransactionResult{Transaction: t, ClaimCode: cc.Claim.Code(), DealTitle: cc.Deal.Title}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PINCheckout sells a deal identified by the vendor's PIN. A single-use claim is
// issued already verified by the vendor and consumed in the same transaction.
func (uc *transactionUseCaseImpl) PINCheckout(ctx context.Context, input PINCheckoutInput) (*TransactionResult, error) {
	pin, err := deal.NewVerificationCode(input.PIN)
	if err != nil {
		return nil, err
	}
	if err = transaction.ValidateBill(input.BillAmount); err != nil {
		return nil, err
	}
	method, err := transaction.NewPaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var result *TransactionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		d, err := tx.Deals().FindLiveByVendorCode(ctx, input.VendorID, pin, now)
		if err != nil {
			return notFoundAs(err, errs.ErrPINNotFound)
		}
		savings, err := transaction.ResolveSavings(d, input.BillAmount, input.DiscountAmount)
		if err != nil {
			return err
		}

		reserved, err := tx.Deals().ReserveRedemption(ctx, d.ID(), now)
		if err != nil {
			return err
		}
		if !reserved {
			return errs.ErrRedemptionCapReached
		}

		c, err := insertWithFreshCode(ctx, tx, func(code claim.Code) *claim.Claim {
			return claim.IssueVerified(d, input.CustomerID, code, input.VendorID, now)
		})
		if err != nil {
			return missingRefAs(err, errs.ErrCustomerNotFound)
		}
		if err = c.Consume(input.VendorID, d.VendorID(), input.BillAmount, savings, now); err != nil {
			return err
		}
		if err = uc.markUsed(ctx, tx, c, input.VendorID, now); err != nil {
			return err
		}

		t, err := uc.record(ctx, tx, c, input.VendorID, method, input.SessionID, now)
		if err != nil {
			return err
		}
		result = &TransactionResult{Transaction: t, ClaimCode: c.Code(), DealTitle: d.Title()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// markUsed applies the guarded verified -> used update. If another request won the
// race the stored claim is re-read to report why.
func (uc *transactionUseCaseImpl) markUsed(ctx context.Context, tx shared.Tx, c *claim.Claim, vendorID uuid.UUID, now time.Time) error {
	ok, err := tx.Claims().MarkUsed(ctx, c, vendorID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	current, err := tx.Claims().FindByID(ctx, c.ID())
	if err != nil {
		return notFoundAs(err, errs.ErrClaimNotFound)
	}
	if err = current.Claim.CheckConsumable(vendorID, current.Deal.VendorID, now); err != nil {
		return err
	}
	return errs.ErrConcurrentModification
}

// record persists the receipt and applies the customer and POS session side effects.
func (uc *transactionUseCaseImpl) record(
	ctx context.Context,
	tx shared.Tx,
	c *claim.Claim,
	vendorID uuid.UUID,
	method transaction.PaymentMethod,
	sessionID *uuid.UUID,
	now time.Time,
) (*transaction.Transaction, error) {
	t, err := transaction.New(transaction.NewParams{
		ClaimID:       c.ID(),
		DealID:        c.DealID(),
		VendorID:      vendorID,
		CustomerID:    c.CustomerID(),
		SessionID:     sessionID,
		BillAmount:    *c.BillAmount(),
		Savings:       *c.ActualSavings(),
		PaymentMethod: method,
	}, now)
	if err != nil {
		return nil, err
	}

	if sessionID != nil {
		if err = addSessionTotals(ctx, tx, *sessionID, vendorID, t); err != nil {
			return nil, err
		}
	}
	if err = tx.Transactions().Create(ctx, t); err != nil {
		return nil, err
	}

	updated, err := tx.Customers().AddSavings(ctx, t.CustomerID(), t.Savings())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errs.ErrCustomerNotFound
	}
	return t, nil
}

func addSessionTotals(ctx context.Context, tx shared.Tx, sessionID, vendorID uuid.UUID, t *transaction.Transaction) error {
	ok, err := tx.POSSessions().AddTotals(ctx, sessionID, vendorID, t.BillAmount(), t.Savings())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	s, err := tx.POSSessions().FindByID(ctx, sessionID)
	if err != nil {
		return notFoundAs(err, errs.ErrSessionNotFound)
	}
	if s.VendorID() != vendorID {
		return errs.ErrSessionNotFound
	}
	return errs.ErrSessionNotOpen
}
