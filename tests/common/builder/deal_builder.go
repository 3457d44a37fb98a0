//go:build unit || e2e

package builder

import (
	"time"

	"deals-engine/internal/domain/deal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DealBuilder struct {
	ID                uuid.UUID
	VendorID          uuid.UUID
	Title             string
	Kind              deal.Kind
	DiscountPercent   decimal.Decimal
	OriginalPrice     *decimal.Decimal
	DiscountedPrice   *decimal.Decimal
	VerificationCode  *deal.VerificationCode
	AffiliateLink     *string
	CommissionEnabled bool
	AllowRepeatClaims bool
	IsActive          bool
	IsApproved        bool
	MaxRedemptions    *int32
	RedemptionCount   int32
	ExpiresAt         *time.Time
	Now               time.Time
}

// NewDealBuilder returns an approved, active in-store deal at 20% off.
func NewDealBuilder() *DealBuilder {
	code := deal.VerificationCode("K7M2QX")
	return &DealBuilder{
		ID:                uuid.New(),
		VendorID:          uuid.New(),
		Title:             "20% off dinner",
		Kind:              deal.KindInStore,
		DiscountPercent:   decimal.NewFromInt(20),
		VerificationCode:  &code,
		CommissionEnabled: false,
		AllowRepeatClaims: true,
		IsActive:          true,
		IsApproved:        true,
		Now:               time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

func (b *DealBuilder) Online(link string) *DealBuilder {
	b.Kind = deal.KindOnline
	b.AffiliateLink = &link
	b.VerificationCode = nil
	b.CommissionEnabled = true
	return b
}

func (b *DealBuilder) WithCap(max, used int32) *DealBuilder {
	b.MaxRedemptions = &max
	b.RedemptionCount = used
	return b
}

func (b *DealBuilder) WithPrices(original, discounted string) *DealBuilder {
	if original != "" {
		o := decimal.RequireFromString(original)
		b.OriginalPrice = &o
	}
	if discounted != "" {
		d := decimal.RequireFromString(discounted)
		b.DiscountedPrice = &d
	}
	return b
}

func (b *DealBuilder) NewParams() deal.NewDealParams {
	return deal.NewDealParams{
		VendorID:          b.VendorID,
		Title:             b.Title,
		Kind:              b.Kind,
		DiscountPercent:   b.DiscountPercent,
		OriginalPrice:     b.OriginalPrice,
		DiscountedPrice:   b.DiscountedPrice,
		VerificationCode:  b.VerificationCode,
		AffiliateLink:     b.AffiliateLink,
		CommissionEnabled: b.CommissionEnabled,
		AllowRepeatClaims: b.AllowRepeatClaims,
		MaxRedemptions:    b.MaxRedemptions,
		ExpiresAt:         b.ExpiresAt,
	}
}

// BuildNew runs the submission rules.
func (b *DealBuilder) BuildNew() (*deal.Deal, error) {
	return deal.NewDeal(b.NewParams(), b.Now)
}

// BuildDomain reconstructs a persisted deal as-is.
func (b *DealBuilder) BuildDomain() *deal.Deal {
	return deal.Reconstruct(deal.ReconstructParams{
		ID:                b.ID,
		VendorID:          b.VendorID,
		Title:             b.Title,
		Kind:              b.Kind,
		DiscountPercent:   b.DiscountPercent,
		OriginalPrice:     b.OriginalPrice,
		DiscountedPrice:   b.DiscountedPrice,
		VerificationCode:  b.VerificationCode,
		AffiliateLink:     b.AffiliateLink,
		CommissionEnabled: b.CommissionEnabled,
		AllowRepeatClaims: b.AllowRepeatClaims,
		IsActive:          b.IsActive,
		IsApproved:        b.IsApproved,
		MaxRedemptions:    b.MaxRedemptions,
		RedemptionCount:   b.RedemptionCount,
		ExpiresAt:         b.ExpiresAt,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	})
}
