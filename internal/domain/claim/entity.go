package claim

import (
	"time"

	"deals-engine/internal/domain/deal"
	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Claim struct {
	id            uuid.UUID
	dealID        uuid.UUID
	customerID    uuid.UUID
	code          Code
	kind          deal.Kind
	status        Status
	issuedAt      time.Time
	expiresAt     time.Time
	verifiedAt    *time.Time
	verifiedBy    *uuid.UUID
	usedAt        *time.Time
	billAmount    *decimal.Decimal
	actualSavings *decimal.Decimal
}

// Issue creates a fresh claim whose lifetime depends on the deal kind.
func Issue(d *deal.Deal, customerID uuid.UUID, code Code, now time.Time) *Claim {
	return &Claim{
		id:         uuid.New(),
		dealID:     d.ID(),
		customerID: customerID,
		code:       code,
		kind:       d.Kind(),
		status:     StatusClaimed,
		issuedAt:   now,
		expiresAt:  d.ClaimExpiry(now),
	}
}

// IssueVerified is used at the counter, where the vendor identifies the deal by PIN
// and vouches for the customer in the same step.
func IssueVerified(d *deal.Deal, customerID uuid.UUID, code Code, vendorID uuid.UUID, now time.Time) *Claim {
	c := Issue(d, customerID, code, now)
	c.status = StatusVerified
	c.verifiedAt = &now
	c.verifiedBy = &vendorID
	return c
}

type ReconstructParams struct {
	ID            uuid.UUID
	DealID        uuid.UUID
	CustomerID    uuid.UUID
	Code          Code
	Kind          deal.Kind
	Status        Status
	IssuedAt      time.Time
	ExpiresAt     time.Time
	VerifiedAt    *time.Time
	VerifiedBy    *uuid.UUID
	UsedAt        *time.Time
	BillAmount    *decimal.Decimal
	ActualSavings *decimal.Decimal
}

func Reconstruct(p ReconstructParams) *Claim {
	return &Claim{
		id:            p.ID,
		dealID:        p.DealID,
		customerID:    p.CustomerID,
		code:          p.Code,
		kind:          p.Kind,
		status:        p.Status,
		issuedAt:      p.IssuedAt,
		expiresAt:     p.ExpiresAt,
		verifiedAt:    p.VerifiedAt,
		verifiedBy:    p.VerifiedBy,
		usedAt:        p.UsedAt,
		billAmount:    p.BillAmount,
		actualSavings: p.ActualSavings,
	}
}

func (c *Claim) IsExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

// EffectiveStatus projects expiry onto the stored status.
func (c *Claim) EffectiveStatus(now time.Time) Status {
	return ProjectStatus(c.status, c.expiresAt, now)
}

// ProjectStatus is the status a reader sees: anything not yet used reads as expired
// once expiresAt has passed. A consumed claim stays used.
func ProjectStatus(stored Status, expiresAt, now time.Time) Status {
	if stored != StatusUsed && !now.Before(expiresAt) {
		return StatusExpired
	}
	return stored
}

// CheckVerifiable classifies why a claim cannot move to verified for vendorID.
// dealVendorID is the owner of the claim's deal.
func (c *Claim) CheckVerifiable(vendorID, dealVendorID uuid.UUID, now time.Time) error {
	if c.IsExpired(now) {
		return errs.ErrCodeExpired
	}
	if dealVendorID != vendorID {
		return errs.ErrWrongVendor
	}
	switch c.status {
	case StatusUsed:
		return errs.ErrCodeAlreadyUsed
	case StatusVerified:
		return errs.ErrAlreadyVerified
	case StatusExpired:
		return errs.ErrCodeExpired
	}
	return nil
}

// CheckConsumable classifies why a claim cannot be redeemed by vendorID.
func (c *Claim) CheckConsumable(vendorID, dealVendorID uuid.UUID, now time.Time) error {
	if dealVendorID != vendorID {
		return errs.ErrWrongVendor
	}
	if c.status == StatusUsed {
		return errs.ErrAlreadyUsed
	}
	if c.IsExpired(now) || c.status == StatusExpired {
		return errs.ErrClaimExpired
	}
	if c.status != StatusVerified {
		return errs.ErrClaimNotVerified
	}
	return nil
}

func (c *Claim) Verify(vendorID, dealVendorID uuid.UUID, now time.Time) error {
	if err := c.CheckVerifiable(vendorID, dealVendorID, now); err != nil {
		return err
	}
	c.status = StatusVerified
	c.verifiedAt = &now
	c.verifiedBy = &vendorID
	return nil
}

func (c *Claim) Consume(vendorID, dealVendorID uuid.UUID, bill, savings decimal.Decimal, now time.Time) error {
	if err := c.CheckConsumable(vendorID, dealVendorID, now); err != nil {
		return err
	}
	c.status = StatusUsed
	c.usedAt = &now
	c.billAmount = &bill
	c.actualSavings = &savings
	return nil
}

func (c *Claim) ID() uuid.UUID                   { return c.id }
func (c *Claim) DealID() uuid.UUID               { return c.dealID }
func (c *Claim) CustomerID() uuid.UUID           { return c.customerID }
func (c *Claim) Code() Code                      { return c.code }
func (c *Claim) Kind() deal.Kind                 { return c.kind }
func (c *Claim) Status() Status                  { return c.status }
func (c *Claim) IssuedAt() time.Time             { return c.issuedAt }
func (c *Claim) ExpiresAt() time.Time            { return c.expiresAt }
func (c *Claim) VerifiedAt() *time.Time          { return c.verifiedAt }
func (c *Claim) VerifiedBy() *uuid.UUID          { return c.verifiedBy }
func (c *Claim) UsedAt() *time.Time              { return c.usedAt }
func (c *Claim) BillAmount() *decimal.Decimal    { return c.billAmount }
func (c *Claim) ActualSavings() *decimal.Decimal { return c.actualSavings }
