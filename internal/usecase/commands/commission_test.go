//go:build unit

package commands_test

import (
	"context"
	"testing"

	"deals-engine/internal/domain/commission"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/commands"
	"deals-engine/internal/usecase/shared"
	"deals-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommissionUseCase_RecordClick(t *testing.T) {
	ctx := context.Background()

	t.Run("success: vendor rate applied to the discounted price", func(t *testing.T) {
		m := newTxMocks(t)
		d := builder.NewDealBuilder().Online("https://shop.example/deal").WithPrices("100.00", "80.00").BuildDomain()
		vendorRate := decimal.NewFromInt(8)

		m.deals.EXPECT().FindByID(gomock.Any(), d.ID()).Return(d, nil)
		m.vendors.EXPECT().FindByID(gomock.Any(), d.VendorID()).Return(&shared.VendorSnapshot{ID: d.VendorID(), ClickRate: &vendorRate}, nil)
		m.commissions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
		e, err := uc.RecordClick(ctx, commands.RecordClickInput{VendorID: d.VendorID(), DealID: d.ID()})

		require.NoError(t, err)
		assert.Equal(t, commission.EventClick, e.Type())
		assert.Equal(t, commission.StatusPending, e.Status())
		assert.True(t, e.Amount().Equal(decimal.RequireFromString("6.40")))
		assert.Equal(t, testNow, e.OccurredAt())
	})

	t.Run("success: platform defaults without prices or vendor rate", func(t *testing.T) {
		m := newTxMocks(t)
		d := builder.NewDealBuilder().Online("https://shop.example/deal").BuildDomain()

		m.deals.EXPECT().FindByID(gomock.Any(), d.ID()).Return(d, nil)
		m.vendors.EXPECT().FindByID(gomock.Any(), d.VendorID()).Return(&shared.VendorSnapshot{ID: d.VendorID()}, nil)
		m.commissions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
		e, err := uc.RecordClick(ctx, commands.RecordClickInput{VendorID: d.VendorID(), DealID: d.ID()})

		require.NoError(t, err)
		assert.True(t, e.Rate().Equal(decimal.NewFromInt(5)))
		assert.True(t, e.Amount().Equal(decimal.RequireFromString("2.50")))
	})

	t.Run("error: deal of another vendor", func(t *testing.T) {
		m := newTxMocks(t)
		d := builder.NewDealBuilder().BuildDomain()
		m.deals.EXPECT().FindByID(gomock.Any(), d.ID()).Return(d, nil)

		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
		_, err := uc.RecordClick(ctx, commands.RecordClickInput{VendorID: uuid.New(), DealID: d.ID()})

		require.ErrorIs(t, err, errs.ErrDealNotFound)
	})

	t.Run("error: deals without an affiliate program record no click", func(t *testing.T) {
		testCases := map[string]*builder.DealBuilder{
			"in-store deal": builder.NewDealBuilder(),
			"commission disabled": builder.NewDealBuilder().Online("https://shop.example/deal").With(func(b *builder.DealBuilder) {
				b.CommissionEnabled = false
			}),
		}
		for name, b := range testCases {
			t.Run(name, func(t *testing.T) {
				m := newTxMocks(t)
				d := b.BuildDomain()
				m.deals.EXPECT().FindByID(gomock.Any(), d.ID()).Return(d, nil)
				m.commissions.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

				uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
				_, err := uc.RecordClick(ctx, commands.RecordClickInput{VendorID: d.VendorID(), DealID: d.ID()})

				require.ErrorIs(t, err, errs.ErrDealNotFound)
			})
		}
	})

	t.Run("error: unknown deal", func(t *testing.T) {
		m := newTxMocks(t)
		id := uuid.New()
		m.deals.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
		_, err := uc.RecordClick(ctx, commands.RecordClickInput{VendorID: uuid.New(), DealID: id})

		require.ErrorIs(t, err, errs.ErrDealNotFound)
	})
}

func TestCommissionUseCase_ConfirmConversion(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pending click becomes a confirmed conversion in place", func(t *testing.T) {
		m := newTxMocks(t)
		e := builder.NewCommissionEventBuilder().BuildDomain()

		m.commissions.EXPECT().FindByID(gomock.Any(), e.ID()).Return(e, nil)
		m.vendors.EXPECT().FindByID(gomock.Any(), e.VendorID()).Return(&shared.VendorSnapshot{ID: e.VendorID()}, nil)
		m.commissions.EXPECT().Confirm(gomock.Any(), e).Return(true, nil)

		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
		got, err := uc.ConfirmConversion(ctx, commands.ConfirmConversionInput{EventID: e.ID(), SaleAmount: decimal.RequireFromString("120.00")})

		require.NoError(t, err)
		assert.Equal(t, e.ID(), got.ID())
		assert.Equal(t, commission.EventConversion, got.Type())
		assert.Equal(t, commission.StatusConfirmed, got.Status())
		assert.True(t, got.Amount().Equal(decimal.NewFromInt(12)), "ten percent of the sale")
		require.NotNil(t, got.ConfirmedAt())
		assert.Equal(t, testNow, *got.ConfirmedAt())
	})

	t.Run("error: non-positive sale is rejected before any read", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))

		_, err := uc.ConfirmConversion(ctx, commands.ConfirmConversionInput{EventID: uuid.New(), SaleAmount: decimal.Zero})

		require.ErrorIs(t, err, errs.ErrInvalidSaleAmount)
	})

	t.Run("error: already confirmed", func(t *testing.T) {
		m := newTxMocks(t)
		e := builder.NewCommissionEventBuilder().Confirmed("100.00", "10").BuildDomain()

		m.commissions.EXPECT().FindByID(gomock.Any(), e.ID()).Return(e, nil)
		m.vendors.EXPECT().FindByID(gomock.Any(), e.VendorID()).Return(&shared.VendorSnapshot{ID: e.VendorID()}, nil)

		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
		_, err := uc.ConfirmConversion(ctx, commands.ConfirmConversionInput{EventID: e.ID(), SaleAmount: decimal.NewFromInt(50)})

		require.ErrorIs(t, err, errs.ErrEventNotPending)
	})

	t.Run("error: confirmed concurrently", func(t *testing.T) {
		m := newTxMocks(t)
		e := builder.NewCommissionEventBuilder().BuildDomain()

		m.commissions.EXPECT().FindByID(gomock.Any(), e.ID()).Return(e, nil)
		m.vendors.EXPECT().FindByID(gomock.Any(), e.VendorID()).Return(&shared.VendorSnapshot{ID: e.VendorID()}, nil)
		m.commissions.EXPECT().Confirm(gomock.Any(), e).Return(false, nil)

		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
		_, err := uc.ConfirmConversion(ctx, commands.ConfirmConversionInput{EventID: e.ID(), SaleAmount: decimal.NewFromInt(50)})

		require.ErrorIs(t, err, errs.ErrEventNotPending)
	})

	t.Run("error: unknown event", func(t *testing.T) {
		m := newTxMocks(t)
		id := uuid.New()
		m.commissions.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		uc := commands.NewCommissionUseCase(m.uow, m.clock, testPolicy(t))
		_, err := uc.ConfirmConversion(ctx, commands.ConfirmConversionInput{EventID: id, SaleAmount: decimal.NewFromInt(50)})

		require.ErrorIs(t, err, errs.ErrEventNotFound)
	})
}
