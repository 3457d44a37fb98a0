//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/customer"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/infra"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/usecase/shared"
	sharedmock "deals-engine/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

// txMocks wires a unit of work that runs the callback against mocked repositories.
type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	deals        *sharedmock.MockDealRepository
	claims       *sharedmock.MockClaimRepository
	customers    *sharedmock.MockCustomerRepository
	vendors      *sharedmock.MockVendorRepository
	transactions *sharedmock.MockTransactionRepository
	sessions     *sharedmock.MockPOSSessionRepository
	commissions  *sharedmock.MockCommissionRepository
	payouts      *sharedmock.MockPayoutRepository
	clock        *clock.MockClock
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		deals:        sharedmock.NewMockDealRepository(ctrl),
		claims:       sharedmock.NewMockClaimRepository(ctrl),
		customers:    sharedmock.NewMockCustomerRepository(ctrl),
		vendors:      sharedmock.NewMockVendorRepository(ctrl),
		transactions: sharedmock.NewMockTransactionRepository(ctrl),
		sessions:     sharedmock.NewMockPOSSessionRepository(ctrl),
		commissions:  sharedmock.NewMockCommissionRepository(ctrl),
		payouts:      sharedmock.NewMockPayoutRepository(ctrl),
		clock:        clock.NewMockClock(testNow),
	}
	m.tx.EXPECT().Deals().Return(m.deals).AnyTimes()
	m.tx.EXPECT().Claims().Return(m.claims).AnyTimes()
	m.tx.EXPECT().Customers().Return(m.customers).AnyTimes()
	m.tx.EXPECT().Vendors().Return(m.vendors).AnyTimes()
	m.tx.EXPECT().Transactions().Return(m.transactions).AnyTimes()
	m.tx.EXPECT().POSSessions().Return(m.sessions).AnyTimes()
	m.tx.EXPECT().Commissions().Return(m.commissions).AnyTimes()
	m.tx.EXPECT().Payouts().Return(m.payouts).AnyTimes()

	run := func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
		return fn(ctx, m.tx)
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	return m
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}

func fkErr() error {
	return infra.WrapRepoErr("fk", &pgconn.PgError{Code: "23503"})
}

func duplicateErr() error {
	return infra.WrapRepoErr("duplicate", &pgconn.PgError{Code: "23505"})
}

func claimContext(c *claim.Claim, d *deal.Deal) *shared.ClaimContext {
	return &shared.ClaimContext{
		Claim: c,
		Deal: shared.DealSummary{
			ID:              d.ID(),
			VendorID:        d.VendorID(),
			VendorName:      "Trattoria",
			Title:           d.Title(),
			Kind:            d.Kind(),
			DiscountPercent: d.Discount(),
			AffiliateLink:   d.AffiliateLink(),
		},
		Customer: shared.CustomerSummary{
			ID:   c.CustomerID(),
			Name: "Ana",
			Tier: customer.TierBasic,
		},
	}
}

// decimalEq matches numerically equal decimals regardless of scale.
type decimalEq struct{ want decimal.Decimal }

func eqDecimal(s string) gomock.Matcher {
	return decimalEq{want: decimal.RequireFromString(s)}
}

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return "is decimal " + m.want.String()
}
