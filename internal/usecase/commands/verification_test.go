//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/commands"
	"deals-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerificationUseCase_VerifyClaim(t *testing.T) {
	ctx := context.Background()
	d := builder.NewDealBuilder().BuildDomain()
	vendorID := d.VendorID()
	issued := testNow.Add(-time.Hour)

	claimFor := func(mutate func(*builder.ClaimBuilder)) *claim.Claim {
		b := builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) {
			b.DealID = d.ID()
			b.IssuedAt = issued
			b.ExpiresAt = issued.Add(24 * time.Hour)
		})
		if mutate != nil {
			b.With(mutate)
		}
		return b.BuildDomain()
	}

	t.Run("success: claimed code becomes verified", func(t *testing.T) {
		m := newTxMocks(t)
		verified := claimFor(func(b *builder.ClaimBuilder) { b.Verified(vendorID) })
		cc := claimContext(verified, d)

		m.claims.EXPECT().MarkVerified(gomock.Any(), claim.Code("ABCD2345"), vendorID, testNow).Return(verified.ID(), true, nil)
		m.claims.EXPECT().FindByID(gomock.Any(), verified.ID()).Return(cc, nil)

		uc := commands.NewVerificationUseCase(m.uow, m.clock)
		got, err := uc.VerifyClaim(ctx, commands.VerifyClaimInput{Code: " abcd2345 ", VendorID: vendorID})

		require.NoError(t, err)
		assert.Equal(t, claim.StatusVerified, got.Claim.Status())
		assert.Equal(t, "Ana", got.Customer.Name)
	})

	t.Run("error: malformed code is rejected before any read", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewVerificationUseCase(m.uow, m.clock)

		_, err := uc.VerifyClaim(ctx, commands.VerifyClaimInput{Code: "ABC", VendorID: vendorID})

		require.ErrorIs(t, err, errs.ErrInvalidClaimCode)
	})

	t.Run("error: unknown code", func(t *testing.T) {
		m := newTxMocks(t)
		m.claims.EXPECT().MarkVerified(gomock.Any(), gomock.Any(), vendorID, testNow).Return(uuid.Nil, false, nil)
		m.claims.EXPECT().FindByCode(gomock.Any(), claim.Code("ABCD2345")).Return(nil, notFoundErr())

		uc := commands.NewVerificationUseCase(m.uow, m.clock)
		_, err := uc.VerifyClaim(ctx, commands.VerifyClaimInput{Code: "ABCD2345", VendorID: vendorID})

		require.ErrorIs(t, err, errs.ErrCodeNotFound)
	})

	rejected := []struct {
		name     string
		claim    *claim.Claim
		vendorID uuid.UUID
		wantErr  error
	}{
		{
			name: "error: expired while still stored as claimed",
			claim: claimFor(func(b *builder.ClaimBuilder) {
				b.IssuedAt = testNow.Add(-25 * time.Hour)
				b.ExpiresAt = testNow.Add(-time.Hour)
			}),
			vendorID: vendorID,
			wantErr:  errs.ErrCodeExpired,
		},
		{
			name:     "error: expiry is reported before vendor mismatch",
			claim:    claimFor(func(b *builder.ClaimBuilder) { b.ExpiresAt = testNow }),
			vendorID: uuid.New(),
			wantErr:  errs.ErrCodeExpired,
		},
		{
			name:     "error: claim of another vendor",
			claim:    claimFor(nil),
			vendorID: uuid.New(),
			wantErr:  errs.ErrWrongVendor,
		},
		{
			name:     "error: already used",
			claim:    claimFor(func(b *builder.ClaimBuilder) { b.Used(vendorID) }),
			vendorID: vendorID,
			wantErr:  errs.ErrCodeAlreadyUsed,
		},
		{
			name:     "error: already verified",
			claim:    claimFor(func(b *builder.ClaimBuilder) { b.Verified(vendorID) }),
			vendorID: vendorID,
			wantErr:  errs.ErrAlreadyVerified,
		},
		{
			name:     "error: guard rejected a claim that now looks verifiable",
			claim:    claimFor(nil),
			vendorID: vendorID,
			wantErr:  errs.ErrConcurrentModification,
		},
	}

	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			m.claims.EXPECT().MarkVerified(gomock.Any(), tc.claim.Code(), tc.vendorID, testNow).Return(uuid.Nil, false, nil)
			m.claims.EXPECT().FindByCode(gomock.Any(), tc.claim.Code()).Return(claimContext(tc.claim, d), nil)

			uc := commands.NewVerificationUseCase(m.uow, m.clock)
			got, err := uc.VerifyClaim(ctx, commands.VerifyClaimInput{Code: tc.claim.Code().String(), VendorID: tc.vendorID})

			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestVerificationUseCase_VerifyPIN(t *testing.T) {
	ctx := context.Background()
	d := builder.NewDealBuilder().BuildDomain()

	t.Run("success: live deal found by PIN", func(t *testing.T) {
		m := newTxMocks(t)
		m.deals.EXPECT().FindLiveByVendorCode(gomock.Any(), d.VendorID(), deal.VerificationCode("K7M2QX"), testNow).Return(d, nil)

		uc := commands.NewVerificationUseCase(m.uow, m.clock)
		got, err := uc.VerifyPIN(ctx, commands.VerifyPINInput{PIN: "k7m2qx", VendorID: d.VendorID()})

		require.NoError(t, err)
		assert.Equal(t, d.ID(), got.ID())
	})

	t.Run("error: no live deal with this PIN", func(t *testing.T) {
		m := newTxMocks(t)
		m.deals.EXPECT().FindLiveByVendorCode(gomock.Any(), d.VendorID(), gomock.Any(), testNow).Return(nil, notFoundErr())

		uc := commands.NewVerificationUseCase(m.uow, m.clock)
		_, err := uc.VerifyPIN(ctx, commands.VerifyPINInput{PIN: "K7M2QX", VendorID: d.VendorID()})

		require.ErrorIs(t, err, errs.ErrPINNotFound)
	})

	t.Run("error: malformed PIN", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewVerificationUseCase(m.uow, m.clock)

		_, err := uc.VerifyPIN(ctx, commands.VerifyPINInput{PIN: "12", VendorID: d.VendorID()})

		require.ErrorIs(t, err, errs.ErrInvalidVerificationCode)
	})
}
