package response

import (
	"time"

	"deals-engine/internal/domain/deal"

	"github.com/google/uuid"
)

type DealResponse struct {
	ID                uuid.UUID  `json:"id"`
	VendorID          uuid.UUID  `json:"vendor_id"`
	Title             string     `json:"title"`
	Kind              string     `json:"kind"`
	DiscountPercent   string     `json:"discount_percent"`
	OriginalPrice     *string    `json:"original_price,omitempty"`
	DiscountedPrice   *string    `json:"discounted_price,omitempty"`
	VerificationCode  *string    `json:"verification_code,omitempty"`
	AffiliateLink     *string    `json:"affiliate_link,omitempty"`
	CommissionEnabled bool       `json:"commission_enabled"`
	AllowRepeatClaims bool       `json:"allow_repeat_claims"`
	IsActive          bool       `json:"is_active"`
	IsApproved        bool       `json:"is_approved"`
	MaxRedemptions    *int32     `json:"max_redemptions,omitempty"`
	RedemptionCount   int32      `json:"redemption_count"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// FromDeal includes the PIN; only the owning vendor ever receives this shape.
func FromDeal(d *deal.Deal) *DealResponse {
	res := &DealResponse{
		ID:                d.ID(),
		VendorID:          d.VendorID(),
		Title:             d.Title(),
		Kind:              d.Kind().String(),
		DiscountPercent:   d.Discount().String(),
		OriginalPrice:     moneyPtr(d.OriginalPrice()),
		DiscountedPrice:   moneyPtr(d.DiscountedPrice()),
		AffiliateLink:     d.AffiliateLink(),
		CommissionEnabled: d.CommissionEnabled(),
		AllowRepeatClaims: d.AllowsRepeatClaims(),
		IsActive:          d.IsActive(),
		IsApproved:        d.IsApproved(),
		MaxRedemptions:    d.MaxRedemptions(),
		RedemptionCount:   d.RedemptionCount(),
		ExpiresAt:         d.ExpiresAt(),
		CreatedAt:         d.CreatedAt(),
	}
	if code := d.VerificationCode(); code != nil {
		s := code.String()
		res.VerificationCode = &s
	}
	return res
}
