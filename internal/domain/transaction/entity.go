package transaction

import (
	"time"

	"deals-engine/internal/domain/deal"
	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	id            uuid.UUID
	claimID       uuid.UUID
	dealID        uuid.UUID
	vendorID      uuid.UUID
	customerID    uuid.UUID
	sessionID     *uuid.UUID
	billAmount    decimal.Decimal
	savings       decimal.Decimal
	paymentMethod PaymentMethod
	receiptNumber string
	createdAt     time.Time
}

type NewParams struct {
	ClaimID       uuid.UUID
	DealID        uuid.UUID
	VendorID      uuid.UUID
	CustomerID    uuid.UUID
	SessionID     *uuid.UUID
	BillAmount    decimal.Decimal
	Savings       decimal.Decimal
	PaymentMethod PaymentMethod
}

func New(p NewParams, now time.Time) (*Transaction, error) {
	if err := ValidateBill(p.BillAmount); err != nil {
		return nil, err
	}
	if p.Savings.IsNegative() || p.Savings.GreaterThan(p.BillAmount) {
		return nil, errs.ErrInvalidDiscount
	}
	if !p.PaymentMethod.IsValid() {
		return nil, errs.ErrInvalidPaymentMethod
	}
	receipt, err := GenerateReceiptNumber(now)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		id:            uuid.New(),
		claimID:       p.ClaimID,
		dealID:        p.DealID,
		vendorID:      p.VendorID,
		customerID:    p.CustomerID,
		sessionID:     p.SessionID,
		billAmount:    p.BillAmount,
		savings:       p.Savings,
		paymentMethod: p.PaymentMethod,
		receiptNumber: receipt,
		createdAt:     now,
	}, nil
}

// maxBill matches the numeric(12,2) bill columns.
var maxBill = decimal.New(1, 10)

// ValidateBill accepts positive whole-cent amounts that fit the bill columns.
func ValidateBill(bill decimal.Decimal) error {
	if !bill.IsPositive() || !bill.Equal(bill.Round(2)) || bill.GreaterThanOrEqual(maxBill) {
		return errs.ErrInvalidBillAmount
	}
	return nil
}

// ResolveSavings uses a vendor-entered discount when present, otherwise the deal percentage.
func ResolveSavings(d *deal.Deal, bill decimal.Decimal, vendorDiscount *decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateBill(bill); err != nil {
		return decimal.Zero, err
	}
	if vendorDiscount == nil {
		return d.SavingsOn(bill), nil
	}
	if vendorDiscount.IsNegative() || vendorDiscount.GreaterThan(bill) {
		return decimal.Zero, errs.ErrInvalidDiscount
	}
	return vendorDiscount.Round(2), nil
}

func (t *Transaction) FinalAmount() decimal.Decimal {
	return t.billAmount.Sub(t.savings)
}

func (t *Transaction) ID() uuid.UUID                { return t.id }
func (t *Transaction) ClaimID() uuid.UUID           { return t.claimID }
func (t *Transaction) DealID() uuid.UUID            { return t.dealID }
func (t *Transaction) VendorID() uuid.UUID          { return t.vendorID }
func (t *Transaction) CustomerID() uuid.UUID        { return t.customerID }
func (t *Transaction) SessionID() *uuid.UUID        { return t.sessionID }
func (t *Transaction) BillAmount() decimal.Decimal  { return t.billAmount }
func (t *Transaction) Savings() decimal.Decimal     { return t.savings }
func (t *Transaction) PaymentMethod() PaymentMethod { return t.paymentMethod }
func (t *Transaction) ReceiptNumber() string        { return t.receiptNumber }
func (t *Transaction) CreatedAt() time.Time         { return t.createdAt }
