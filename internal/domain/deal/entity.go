package deal

import (
	"strings"
	"time"

	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxTitleLength = 200

type Deal struct {
	id                uuid.UUID
	vendorID          uuid.UUID
	title             string
	kind              Kind
	discount          DiscountPercent
	originalPrice     *decimal.Decimal
	discountedPrice   *decimal.Decimal
	verificationCode  *VerificationCode
	affiliateLink     *string
	commissionEnabled bool
	allowRepeatClaims bool
	isActive          bool
	isApproved        bool
	maxRedemptions    *int32
	redemptionCount   int32
	expiresAt         *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

type NewDealParams struct {
	VendorID          uuid.UUID
	Title             string
	Kind              Kind
	DiscountPercent   decimal.Decimal
	OriginalPrice     *decimal.Decimal
	DiscountedPrice   *decimal.Decimal
	VerificationCode  *VerificationCode
	AffiliateLink     *string
	CommissionEnabled bool
	AllowRepeatClaims bool
	MaxRedemptions    *int32
	ExpiresAt         *time.Time
}

// NewDeal validates a vendor submission. New deals are active but await approval.
func NewDeal(p NewDealParams, now time.Time) (*Deal, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" || len(title) > MaxTitleLength {
		return nil, errs.Wrap(errs.ErrDomainValidation, "title must be 1-200 characters")
	}
	if !p.Kind.IsValid() {
		return nil, errs.ErrInvalidDealKind
	}
	discount, err := NewDiscountPercent(p.DiscountPercent)
	if err != nil {
		return nil, err
	}
	if p.OriginalPrice != nil && !p.OriginalPrice.IsPositive() {
		return nil, errs.Wrap(errs.ErrDomainValidation, "original price must be positive")
	}
	if p.DiscountedPrice != nil {
		if p.DiscountedPrice.IsNegative() {
			return nil, errs.Wrap(errs.ErrDomainValidation, "discounted price must not be negative")
		}
		if p.OriginalPrice != nil && p.DiscountedPrice.GreaterThan(*p.OriginalPrice) {
			return nil, errs.Wrap(errs.ErrDomainValidation, "discounted price exceeds original price")
		}
	}
	if p.MaxRedemptions != nil && *p.MaxRedemptions <= 0 {
		return nil, errs.Wrap(errs.ErrDomainValidation, "max redemptions must be positive")
	}
	if p.ExpiresAt != nil && !p.ExpiresAt.After(now) {
		return nil, errs.Wrap(errs.ErrDomainValidation, "expiry must be in the future")
	}

	var link *string
	if p.AffiliateLink != nil {
		if trimmed := strings.TrimSpace(*p.AffiliateLink); trimmed != "" {
			link = &trimmed
		}
	}
	switch p.Kind {
	case KindOnline:
		if link == nil {
			return nil, errs.ErrMissingAffiliateLink
		}
	case KindInStore:
		if p.VerificationCode == nil {
			return nil, errs.ErrMissingVerificationCode
		}
	}

	return &Deal{
		id:                uuid.New(),
		vendorID:          p.VendorID,
		title:             title,
		kind:              p.Kind,
		discount:          discount,
		originalPrice:     p.OriginalPrice,
		discountedPrice:   p.DiscountedPrice,
		verificationCode:  p.VerificationCode,
		affiliateLink:     link,
		commissionEnabled: p.CommissionEnabled,
		allowRepeatClaims: p.AllowRepeatClaims,
		isActive:          true,
		isApproved:        false,
		maxRedemptions:    p.MaxRedemptions,
		expiresAt:         p.ExpiresAt,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

type ReconstructParams struct {
	ID                uuid.UUID
	VendorID          uuid.UUID
	Title             string
	Kind              Kind
	DiscountPercent   decimal.Decimal
	OriginalPrice     *decimal.Decimal
	DiscountedPrice   *decimal.Decimal
	VerificationCode  *VerificationCode
	AffiliateLink     *string
	CommissionEnabled bool
	AllowRepeatClaims bool
	IsActive          bool
	IsApproved        bool
	MaxRedemptions    *int32
	RedemptionCount   int32
	ExpiresAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Reconstruct rebuilds a persisted deal without re-running submission rules.
func Reconstruct(p ReconstructParams) *Deal {
	return &Deal{
		id:                p.ID,
		vendorID:          p.VendorID,
		title:             p.Title,
		kind:              p.Kind,
		discount:          DiscountPercent{value: p.DiscountPercent},
		originalPrice:     p.OriginalPrice,
		discountedPrice:   p.DiscountedPrice,
		verificationCode:  p.VerificationCode,
		affiliateLink:     p.AffiliateLink,
		commissionEnabled: p.CommissionEnabled,
		allowRepeatClaims: p.AllowRepeatClaims,
		isActive:          p.IsActive,
		isApproved:        p.IsApproved,
		maxRedemptions:    p.MaxRedemptions,
		redemptionCount:   p.RedemptionCount,
		expiresAt:         p.ExpiresAt,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}
}

// CheckClaimable reports why a new claim cannot be issued, or nil.
func (d *Deal) CheckClaimable(now time.Time) error {
	if !d.isActive || !d.isApproved {
		return errs.ErrDealInactive
	}
	if d.IsExpired(now) {
		return errs.ErrDealExpired
	}
	if d.CapReached() {
		return errs.ErrRedemptionCapReached
	}
	return nil
}

func (d *Deal) IsExpired(now time.Time) bool {
	return d.expiresAt != nil && !now.Before(*d.expiresAt)
}

func (d *Deal) CapReached() bool {
	return d.maxRedemptions != nil && d.redemptionCount >= *d.maxRedemptions
}

// ClaimExpiry is when a claim issued at issuedAt stops being usable.
func (d *Deal) ClaimExpiry(issuedAt time.Time) time.Time {
	return issuedAt.Add(d.kind.ClaimValidity())
}

// IsMonetized reports whether claims on this deal generate commission clicks.
func (d *Deal) IsMonetized() bool {
	return d.kind == KindOnline && d.commissionEnabled && d.affiliateLink != nil
}

// EstimatedOrderValue prefers the discounted price, then the original price.
func (d *Deal) EstimatedOrderValue(fallback decimal.Decimal) decimal.Decimal {
	if d.discountedPrice != nil {
		return *d.discountedPrice
	}
	if d.originalPrice != nil {
		return *d.originalPrice
	}
	return fallback
}

func (d *Deal) SavingsOn(bill decimal.Decimal) decimal.Decimal {
	return d.discount.Of(bill)
}

func (d *Deal) IsOwnedBy(vendorID uuid.UUID) bool {
	return d.vendorID == vendorID
}

// AssignVerificationCode replaces the PIN on a deal that has not been persisted yet.
func (d *Deal) AssignVerificationCode(code VerificationCode) {
	d.verificationCode = &code
}

func (d *Deal) ID() uuid.UUID                       { return d.id }
func (d *Deal) VendorID() uuid.UUID                 { return d.vendorID }
func (d *Deal) Title() string                       { return d.title }
func (d *Deal) Kind() Kind                          { return d.kind }
func (d *Deal) Discount() DiscountPercent           { return d.discount }
func (d *Deal) OriginalPrice() *decimal.Decimal     { return d.originalPrice }
func (d *Deal) DiscountedPrice() *decimal.Decimal   { return d.discountedPrice }
func (d *Deal) VerificationCode() *VerificationCode { return d.verificationCode }
func (d *Deal) AffiliateLink() *string              { return d.affiliateLink }
func (d *Deal) CommissionEnabled() bool             { return d.commissionEnabled }
func (d *Deal) AllowsRepeatClaims() bool            { return d.allowRepeatClaims }
func (d *Deal) IsActive() bool                      { return d.isActive }
func (d *Deal) IsApproved() bool                    { return d.isApproved }
func (d *Deal) MaxRedemptions() *int32              { return d.maxRedemptions }
func (d *Deal) RedemptionCount() int32              { return d.redemptionCount }
func (d *Deal) ExpiresAt() *time.Time               { return d.expiresAt }
func (d *Deal) CreatedAt() time.Time                { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time                { return d.updatedAt }
