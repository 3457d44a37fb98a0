//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/domain/pos"
	"deals-engine/internal/domain/transaction"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/commands"
	"deals-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransactionUseCase_Complete(t *testing.T) {
	ctx := context.Background()
	d := builder.NewDealBuilder().BuildDomain()
	vendorID := d.VendorID()
	bill := decimal.RequireFromString("45.00")

	verifiedClaim := func() *claim.Claim {
		return builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) {
			b.DealID = d.ID()
			b.IssuedAt = testNow.Add(-time.Hour)
			b.ExpiresAt = testNow.Add(23 * time.Hour)
		}).Verified(vendorID).BuildDomain()
	}

	t.Run("success: verified claim is consumed with server-side savings", func(t *testing.T) {
		m := newTxMocks(t)
		c := verifiedClaim()

		m.claims.EXPECT().FindByID(gomock.Any(), c.ID()).Return(claimContext(c, d), nil)
		m.claims.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), vendorID).DoAndReturn(func(_ context.Context, used *claim.Claim, _ uuid.UUID) (bool, error) {
			assert.Equal(t, claim.StatusUsed, used.Status())
			return true, nil
		})
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.customers.EXPECT().AddSavings(gomock.Any(), c.CustomerID(), eqDecimal("9")).Return(true, nil)

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		res, err := uc.Complete(ctx, commands.CompleteTransactionInput{
			ClaimID: c.ID(), VendorID: vendorID, BillAmount: bill, PaymentMethod: "card",
		})

		require.NoError(t, err)
		assert.True(t, res.Transaction.Savings().Equal(decimal.NewFromInt(9)))
		assert.True(t, res.Transaction.FinalAmount().Equal(decimal.NewFromInt(36)))
		assert.Equal(t, transaction.PaymentCard, res.Transaction.PaymentMethod())
		assert.Equal(t, d.Title(), res.DealTitle)
		assert.Regexp(t, `^RCPT-20250314-[A-Z0-9]{6}$`, res.Transaction.ReceiptNumber())
	})

	t.Run("success: totals are added to the open pos session", func(t *testing.T) {
		m := newTxMocks(t)
		c := verifiedClaim()
		sessionID := uuid.New()

		m.claims.EXPECT().FindByID(gomock.Any(), c.ID()).Return(claimContext(c, d), nil)
		m.claims.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), vendorID).Return(true, nil)
		m.sessions.EXPECT().AddTotals(gomock.Any(), sessionID, vendorID, eqDecimal("45"), eqDecimal("9")).Return(true, nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.customers.EXPECT().AddSavings(gomock.Any(), c.CustomerID(), gomock.Any()).Return(true, nil)

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		res, err := uc.Complete(ctx, commands.CompleteTransactionInput{
			ClaimID: c.ID(), VendorID: vendorID, BillAmount: bill, PaymentMethod: "cash", SessionID: &sessionID,
		})

		require.NoError(t, err)
		require.NotNil(t, res.Transaction.SessionID())
		assert.Equal(t, sessionID, *res.Transaction.SessionID())
	})

	t.Run("error: closed pos session", func(t *testing.T) {
		m := newTxMocks(t)
		c := verifiedClaim()
		closedAt := testNow.Add(-time.Minute)
		s := pos.Reconstruct(pos.ReconstructParams{ID: uuid.New(), VendorID: vendorID, TerminalID: "T1", Status: pos.StatusClosed, OpenedAt: testNow.Add(-time.Hour), ClosedAt: &closedAt})
		sessionID := s.ID()

		m.claims.EXPECT().FindByID(gomock.Any(), c.ID()).Return(claimContext(c, d), nil)
		m.claims.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), vendorID).Return(true, nil)
		m.sessions.EXPECT().AddTotals(gomock.Any(), sessionID, vendorID, gomock.Any(), gomock.Any()).Return(false, nil)
		m.sessions.EXPECT().FindByID(gomock.Any(), sessionID).Return(s, nil)

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		_, err := uc.Complete(ctx, commands.CompleteTransactionInput{
			ClaimID: c.ID(), VendorID: vendorID, BillAmount: bill, PaymentMethod: "cash", SessionID: &sessionID,
		})

		require.ErrorIs(t, err, errs.ErrSessionNotOpen)
	})

	stateCases := []struct {
		name     string
		claim    *claim.Claim
		vendorID uuid.UUID
		wantErr  error
	}{
		{
			name: "error: claimed but never verified",
			claim: builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) {
				b.DealID = d.ID()
				b.ExpiresAt = testNow.Add(time.Hour)
			}).BuildDomain(),
			vendorID: vendorID,
			wantErr:  errs.ErrClaimNotVerified,
		},
		{
			name: "error: verified claim expired",
			claim: builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) {
				b.DealID = d.ID()
				b.IssuedAt = testNow.Add(-25 * time.Hour)
				b.ExpiresAt = testNow.Add(-time.Hour)
			}).Verified(vendorID).BuildDomain(),
			vendorID: vendorID,
			wantErr:  errs.ErrClaimExpired,
		},
		{
			name: "error: already used",
			claim: builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) {
				b.DealID = d.ID()
				b.ExpiresAt = testNow.Add(time.Hour)
			}).Used(vendorID).BuildDomain(),
			vendorID: vendorID,
			wantErr:  errs.ErrAlreadyUsed,
		},
		{
			name:     "error: another vendor's claim",
			claim:    verifiedClaim(),
			vendorID: uuid.New(),
			wantErr:  errs.ErrWrongVendor,
		},
	}

	for _, tc := range stateCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			m.claims.EXPECT().FindByID(gomock.Any(), tc.claim.ID()).Return(claimContext(tc.claim, d), nil)

			uc := commands.NewTransactionUseCase(m.uow, m.clock)
			res, err := uc.Complete(ctx, commands.CompleteTransactionInput{
				ClaimID: tc.claim.ID(), VendorID: tc.vendorID, BillAmount: bill, PaymentMethod: "cash",
			})

			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, res)
		})
	}

	t.Run("error: lost the race to a concurrent redemption", func(t *testing.T) {
		m := newTxMocks(t)
		c := verifiedClaim()
		usedNow := builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) {
			b.ID = c.ID()
			b.DealID = d.ID()
			b.ExpiresAt = c.ExpiresAt()
		}).Used(vendorID).BuildDomain()

		gomock.InOrder(
			m.claims.EXPECT().FindByID(gomock.Any(), c.ID()).Return(claimContext(c, d), nil),
			m.claims.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), vendorID).Return(false, nil),
			m.claims.EXPECT().FindByID(gomock.Any(), c.ID()).Return(claimContext(usedNow, d), nil),
		)

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		_, err := uc.Complete(ctx, commands.CompleteTransactionInput{
			ClaimID: c.ID(), VendorID: vendorID, BillAmount: bill, PaymentMethod: "cash",
		})

		require.ErrorIs(t, err, errs.ErrAlreadyUsed)
	})

	t.Run("error: validation happens before any read", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewTransactionUseCase(m.uow, m.clock)

		_, err := uc.Complete(ctx, commands.CompleteTransactionInput{ClaimID: uuid.New(), VendorID: vendorID, BillAmount: decimal.Zero, PaymentMethod: "cash"})
		require.ErrorIs(t, err, errs.ErrInvalidBillAmount)

		_, err = uc.Complete(ctx, commands.CompleteTransactionInput{ClaimID: uuid.New(), VendorID: vendorID, BillAmount: decimal.RequireFromString("0.004"), PaymentMethod: "cash"})
		require.ErrorIs(t, err, errs.ErrInvalidBillAmount)

		_, err = uc.Complete(ctx, commands.CompleteTransactionInput{ClaimID: uuid.New(), VendorID: vendorID, BillAmount: bill, PaymentMethod: "cheque"})
		require.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("error: unknown claim", func(t *testing.T) {
		m := newTxMocks(t)
		id := uuid.New()
		m.claims.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		_, err := uc.Complete(ctx, commands.CompleteTransactionInput{ClaimID: id, VendorID: vendorID, BillAmount: bill, PaymentMethod: "cash"})

		require.ErrorIs(t, err, errs.ErrClaimNotFound)
	})
}

func TestTransactionUseCase_PINCheckout(t *testing.T) {
	ctx := context.Background()
	d := builder.NewDealBuilder().BuildDomain()
	vendorID := d.VendorID()
	customerID := uuid.New()
	bill := decimal.RequireFromString("80.00")

	t.Run("success: vendor-entered discount wins over the deal percentage", func(t *testing.T) {
		m := newTxMocks(t)
		discount := decimal.RequireFromString("12.50")

		m.deals.EXPECT().FindLiveByVendorCode(gomock.Any(), vendorID, deal.VerificationCode("K7M2QX"), testNow).Return(d, nil)
		m.deals.EXPECT().ReserveRedemption(gomock.Any(), d.ID(), testNow).Return(true, nil)
		m.claims.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *claim.Claim) (bool, error) {
			assert.Equal(t, claim.StatusVerified, c.Status())
			require.NotNil(t, c.VerifiedBy())
			assert.Equal(t, vendorID, *c.VerifiedBy())
			return true, nil
		})
		m.claims.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), vendorID).Return(true, nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.customers.EXPECT().AddSavings(gomock.Any(), customerID, eqDecimal("12.50")).Return(true, nil)

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		res, err := uc.PINCheckout(ctx, commands.PINCheckoutInput{
			VendorID: vendorID, PIN: "K7M2QX", CustomerID: customerID, BillAmount: bill,
			DiscountAmount: &discount, PaymentMethod: "upi",
		})

		require.NoError(t, err)
		assert.True(t, res.Transaction.Savings().Equal(discount))
		assert.Len(t, res.ClaimCode.String(), claim.CodeLength)
	})

	t.Run("success: deal percentage applies without a vendor discount", func(t *testing.T) {
		m := newTxMocks(t)

		m.deals.EXPECT().FindLiveByVendorCode(gomock.Any(), vendorID, gomock.Any(), testNow).Return(d, nil)
		m.deals.EXPECT().ReserveRedemption(gomock.Any(), d.ID(), testNow).Return(true, nil)
		m.claims.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
		m.claims.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), vendorID).Return(true, nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.customers.EXPECT().AddSavings(gomock.Any(), customerID, gomock.Any()).Return(true, nil)

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		res, err := uc.PINCheckout(ctx, commands.PINCheckoutInput{
			VendorID: vendorID, PIN: "K7M2QX", CustomerID: customerID, BillAmount: bill, PaymentMethod: "cash",
		})

		require.NoError(t, err)
		assert.True(t, res.Transaction.Savings().Equal(decimal.NewFromInt(16)))
	})

	t.Run("error: unknown PIN", func(t *testing.T) {
		m := newTxMocks(t)
		m.deals.EXPECT().FindLiveByVendorCode(gomock.Any(), vendorID, gomock.Any(), testNow).Return(nil, notFoundErr())

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		_, err := uc.PINCheckout(ctx, commands.PINCheckoutInput{
			VendorID: vendorID, PIN: "K7M2QX", CustomerID: customerID, BillAmount: bill, PaymentMethod: "cash",
		})

		require.ErrorIs(t, err, errs.ErrPINNotFound)
	})

	t.Run("error: discount larger than the bill", func(t *testing.T) {
		m := newTxMocks(t)
		discount := decimal.RequireFromString("80.01")
		m.deals.EXPECT().FindLiveByVendorCode(gomock.Any(), vendorID, gomock.Any(), testNow).Return(d, nil)

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		_, err := uc.PINCheckout(ctx, commands.PINCheckoutInput{
			VendorID: vendorID, PIN: "K7M2QX", CustomerID: customerID, BillAmount: bill,
			DiscountAmount: &discount, PaymentMethod: "cash",
		})

		require.ErrorIs(t, err, errs.ErrInvalidDiscount)
	})

	t.Run("error: redemption cap reached", func(t *testing.T) {
		m := newTxMocks(t)
		m.deals.EXPECT().FindLiveByVendorCode(gomock.Any(), vendorID, gomock.Any(), testNow).Return(d, nil)
		m.deals.EXPECT().ReserveRedemption(gomock.Any(), d.ID(), testNow).Return(false, nil)

		uc := commands.NewTransactionUseCase(m.uow, m.clock)
		_, err := uc.PINCheckout(ctx, commands.PINCheckoutInput{
			VendorID: vendorID, PIN: "K7M2QX", CustomerID: customerID, BillAmount: bill, PaymentMethod: "cash",
		})

		require.ErrorIs(t, err, errs.ErrRedemptionCapReached)
	})
}
