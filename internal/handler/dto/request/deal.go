package request

import (
	"time"

	"deals-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDealRequest struct {
	Title             string           `json:"title" binding:"required,max=200"`
	Kind              string           `json:"kind" binding:"required,oneof=in_store online"`
	DiscountPercent   *decimal.Decimal `json:"discount_percent" binding:"required"`
	OriginalPrice     *decimal.Decimal `json:"original_price,omitempty"`
	DiscountedPrice   *decimal.Decimal `json:"discounted_price,omitempty"`
	VerificationCode  *string          `json:"verification_code,omitempty" binding:"omitempty,pincode"`
	AffiliateLink     *string          `json:"affiliate_link,omitempty" binding:"omitempty,url"`
	CommissionEnabled bool             `json:"commission_enabled"`
	AllowRepeatClaims bool             `json:"allow_repeat_claims"`
	MaxRedemptions    *int32           `json:"max_redemptions,omitempty" binding:"omitempty,min=1"`
	ExpiresAt         *time.Time       `json:"expires_at,omitempty"`
}

func (r CreateDealRequest) ToInput(vendorID uuid.UUID) commands.CreateDealInput {
	return commands.CreateDealInput{
		VendorID:          vendorID,
		Title:             r.Title,
		Kind:              r.Kind,
		DiscountPercent:   *r.DiscountPercent,
		OriginalPrice:     r.OriginalPrice,
		DiscountedPrice:   r.DiscountedPrice,
		VerificationCode:  r.VerificationCode,
		AffiliateLink:     r.AffiliateLink,
		CommissionEnabled: r.CommissionEnabled,
		AllowRepeatClaims: r.AllowRepeatClaims,
		MaxRedemptions:    r.MaxRedemptions,
		ExpiresAt:         r.ExpiresAt,
	}
}
