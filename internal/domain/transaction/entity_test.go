//go:build unit

package transaction_test

import (
	"regexp"
	"testing"
	"time"

	"deals-engine/internal/domain/transaction"
	"deals-engine/internal/pkg/errs"
	"deals-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var receiptPattern = regexp.MustCompile(`^RCPT-\d{8}-[ABCDEFGHJKLMNPQRSTUVWXYZ2-9]{6}$`)

func TestGenerateReceiptNumber(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)

	receipt, err := transaction.GenerateReceiptNumber(now)
	require.NoError(t, err)
	assert.Regexp(t, receiptPattern, receipt)
	assert.Contains(t, receipt, "RCPT-20250314-")
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	base := transaction.NewParams{
		ClaimID:       uuid.New(),
		DealID:        uuid.New(),
		VendorID:      uuid.New(),
		CustomerID:    uuid.New(),
		BillAmount:    decimal.NewFromInt(100),
		Savings:       decimal.NewFromInt(20),
		PaymentMethod: transaction.PaymentCard,
	}

	t.Run("final amount is bill minus savings", func(t *testing.T) {
		txn, err := transaction.New(base, now)
		require.NoError(t, err)
		assert.Equal(t, "80.00", txn.FinalAmount().StringFixed(2))
		assert.Regexp(t, receiptPattern, txn.ReceiptNumber())
		assert.Equal(t, now, txn.CreatedAt())
	})

	cases := []struct {
		name   string
		mutate func(*transaction.NewParams)
		errIs  error
	}{
		{name: "zero bill", mutate: func(p *transaction.NewParams) { p.BillAmount = decimal.Zero }, errIs: errs.ErrInvalidBillAmount},
		{name: "negative bill", mutate: func(p *transaction.NewParams) { p.BillAmount = decimal.NewFromInt(-5) }, errIs: errs.ErrInvalidBillAmount},
		{name: "sub-cent bill", mutate: func(p *transaction.NewParams) { p.BillAmount = decimal.RequireFromString("0.004") }, errIs: errs.ErrInvalidBillAmount},
		{name: "savings above bill", mutate: func(p *transaction.NewParams) { p.Savings = decimal.NewFromInt(101) }, errIs: errs.ErrInvalidDiscount},
		{name: "negative savings", mutate: func(p *transaction.NewParams) { p.Savings = decimal.NewFromInt(-1) }, errIs: errs.ErrInvalidDiscount},
		{name: "unknown payment method", mutate: func(p *transaction.NewParams) { p.PaymentMethod = "cheque" }, errIs: errs.ErrInvalidPaymentMethod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			_, err := transaction.New(p, now)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestResolveSavings(t *testing.T) {
	d := builder.NewDealBuilder().BuildDomain()
	bill := decimal.NewFromInt(250)

	t.Run("uses deal percentage without vendor discount", func(t *testing.T) {
		got, err := transaction.ResolveSavings(d, bill, nil)
		require.NoError(t, err)
		assert.Equal(t, "50.00", got.StringFixed(2))
	})

	t.Run("vendor discount overrides percentage", func(t *testing.T) {
		discount := decimal.RequireFromString("30.456")
		got, err := transaction.ResolveSavings(d, bill, &discount)
		require.NoError(t, err)
		assert.Equal(t, "30.46", got.StringFixed(2))
	})

	t.Run("vendor discount may equal the bill", func(t *testing.T) {
		got, err := transaction.ResolveSavings(d, bill, &bill)
		require.NoError(t, err)
		assert.True(t, bill.Equal(got))
	})

	t.Run("vendor discount above bill", func(t *testing.T) {
		discount := decimal.NewFromInt(251)
		_, err := transaction.ResolveSavings(d, bill, &discount)
		require.ErrorIs(t, err, errs.ErrInvalidDiscount)
	})

	t.Run("non-positive bill", func(t *testing.T) {
		_, err := transaction.ResolveSavings(d, decimal.Zero, nil)
		require.ErrorIs(t, err, errs.ErrInvalidBillAmount)
	})
}

func TestValidateBill(t *testing.T) {
	valid := []string{"0.01", "12.5", "80.00", "100.000", "9999999999.99"}
	for _, v := range valid {
		t.Run("accepts "+v, func(t *testing.T) {
			require.NoError(t, transaction.ValidateBill(decimal.RequireFromString(v)))
		})
	}

	invalid := []string{"0", "-1", "0.004", "19.999", "10000000000", "10000000000.00"}
	for _, v := range invalid {
		t.Run("rejects "+v, func(t *testing.T) {
			require.ErrorIs(t, transaction.ValidateBill(decimal.RequireFromString(v)), errs.ErrInvalidBillAmount)
		})
	}
}

func TestNewPaymentMethod(t *testing.T) {
	for _, s := range []string{"cash", "card", "upi", "wallet", "other"} {
		m, err := transaction.NewPaymentMethod(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
	_, err := transaction.NewPaymentMethod("CASH")
	require.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
}
