//go:build unit || e2e

package builder

import (
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/deal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClaimBuilder struct {
	ID            uuid.UUID
	DealID        uuid.UUID
	CustomerID    uuid.UUID
	Code          claim.Code
	Kind          deal.Kind
	Status        claim.Status
	IssuedAt      time.Time
	ExpiresAt     time.Time
	VerifiedAt    *time.Time
	VerifiedBy    *uuid.UUID
	UsedAt        *time.Time
	BillAmount    *decimal.Decimal
	ActualSavings *decimal.Decimal
}

// NewClaimBuilder returns an in-store claim issued at 2025-03-14 10:00 UTC.
func NewClaimBuilder() *ClaimBuilder {
	issued := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	return &ClaimBuilder{
		ID:         uuid.New(),
		DealID:     uuid.New(),
		CustomerID: uuid.New(),
		Code:       claim.Code("ABCD2345"),
		Kind:       deal.KindInStore,
		Status:     claim.StatusClaimed,
		IssuedAt:   issued,
		ExpiresAt:  issued.Add(24 * time.Hour),
	}
}

func (b *ClaimBuilder) With(mutate func(*ClaimBuilder)) *ClaimBuilder {
	mutate(b)
	return b
}

func (b *ClaimBuilder) Verified(vendorID uuid.UUID) *ClaimBuilder {
	at := b.IssuedAt.Add(time.Minute)
	b.Status = claim.StatusVerified
	b.VerifiedAt = &at
	b.VerifiedBy = &vendorID
	return b
}

func (b *ClaimBuilder) Used(vendorID uuid.UUID) *ClaimBuilder {
	b.Verified(vendorID)
	at := b.IssuedAt.Add(2 * time.Minute)
	b.Status = claim.StatusUsed
	b.UsedAt = &at
	return b
}

func (b *ClaimBuilder) BuildDomain() *claim.Claim {
	return claim.Reconstruct(claim.ReconstructParams{
		ID:            b.ID,
		DealID:        b.DealID,
		CustomerID:    b.CustomerID,
		Code:          b.Code,
		Kind:          b.Kind,
		Status:        b.Status,
		IssuedAt:      b.IssuedAt,
		ExpiresAt:     b.ExpiresAt,
		VerifiedAt:    b.VerifiedAt,
		VerifiedBy:    b.VerifiedBy,
		UsedAt:        b.UsedAt,
		BillAmount:    b.BillAmount,
		ActualSavings: b.ActualSavings,
	})
}
