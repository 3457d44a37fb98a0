package shared

import (
	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/customer"
	"deals-engine/internal/domain/deal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClaimContext is a claim together with the deal and customer facts a vendor needs
// to decide on and complete a sale.
type ClaimContext struct {
	Claim    *claim.Claim
	Deal     DealSummary
	Customer CustomerSummary
}

type DealSummary struct {
	ID              uuid.UUID
	VendorID        uuid.UUID
	VendorName      string
	Title           string
	Kind            deal.Kind
	DiscountPercent deal.DiscountPercent
	AffiliateLink   *string
}

type CustomerSummary struct {
	ID   uuid.UUID
	Name string
	Tier customer.Tier
}

// VendorSnapshot carries the vendor's commission overrides; nil rates use platform defaults.
type VendorSnapshot struct {
	ID             uuid.UUID
	Name           string
	ClickRate      *decimal.Decimal
	ConversionRate *decimal.Decimal
}
