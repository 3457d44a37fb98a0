package response

import (
	"time"

	"deals-engine/internal/usecase/commands"
	"deals-engine/internal/usecase/queries"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type IssuedClaimResponse struct {
	ClaimID       uuid.UUID  `json:"claim_id"`
	DealID        uuid.UUID  `json:"deal_id"`
	Code          string     `json:"code"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	IssuedAt      time.Time  `json:"issued_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	AffiliateLink *string    `json:"affiliate_link,omitempty"`
	ClickEventID  *uuid.UUID `json:"click_event_id,omitempty"`
}

func FromIssueClaimResult(r *commands.IssueClaimResult) *IssuedClaimResponse {
	return &IssuedClaimResponse{
		ClaimID:       r.ClaimID,
		DealID:        r.DealID,
		Code:          r.Code.String(),
		Kind:          r.Kind.String(),
		Status:        r.Status.String(),
		IssuedAt:      r.IssuedAt,
		ExpiresAt:     r.ExpiresAt,
		AffiliateLink: r.AffiliateLink,
		ClickEventID:  r.ClickEventID,
	}
}

type ClaimResponse struct {
	ID            uuid.UUID  `json:"id"`
	DealID        uuid.UUID  `json:"deal_id"`
	DealTitle     string     `json:"deal_title"`
	VendorID      uuid.UUID  `json:"vendor_id"`
	VendorName    string     `json:"vendor_name"`
	Code          string     `json:"code"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	IssuedAt      time.Time  `json:"issued_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	BillAmount    *string    `json:"bill_amount,omitempty"`
	ActualSavings *string    `json:"actual_savings,omitempty"`
	AffiliateLink *string    `json:"affiliate_link,omitempty"`
}

func FromClaimView(v *queries.ClaimView) *ClaimResponse {
	return &ClaimResponse{
		ID:            v.ID,
		DealID:        v.DealID,
		DealTitle:     v.DealTitle,
		VendorID:      v.VendorID,
		VendorName:    v.VendorName,
		Code:          v.Code,
		Kind:          v.Kind,
		Status:        v.Status,
		IssuedAt:      v.IssuedAt,
		ExpiresAt:     v.ExpiresAt,
		VerifiedAt:    v.VerifiedAt,
		UsedAt:        v.UsedAt,
		BillAmount:    moneyPtr(v.BillAmount),
		ActualSavings: moneyPtr(v.ActualSavings),
		AffiliateLink: v.AffiliateLink,
	}
}

func FromClaimViews(vs []*queries.ClaimView) []*ClaimResponse {
	res := make([]*ClaimResponse, len(vs))
	for i, v := range vs {
		res[i] = FromClaimView(v)
	}
	return res
}

type VerifiedClaimResponse struct {
	ClaimID    uuid.UUID        `json:"claim_id"`
	Code       string           `json:"code"`
	Status     string           `json:"status"`
	VerifiedAt *time.Time       `json:"verified_at,omitempty"`
	ExpiresAt  time.Time        `json:"expires_at"`
	Deal       ClaimDealSummary `json:"deal"`
	Customer   CustomerSummary  `json:"customer"`
}

type ClaimDealSummary struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Kind            string    `json:"kind"`
	DiscountPercent string    `json:"discount_percent"`
}

type CustomerSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Tier string    `json:"tier"`
}

func FromClaimContext(cc *shared.ClaimContext) *VerifiedClaimResponse {
	c := cc.Claim
	return &VerifiedClaimResponse{
		ClaimID:    c.ID(),
		Code:       c.Code().String(),
		Status:     c.Status().String(),
		VerifiedAt: c.VerifiedAt(),
		ExpiresAt:  c.ExpiresAt(),
		Deal: ClaimDealSummary{
			ID:              cc.Deal.ID,
			Title:           cc.Deal.Title,
			Kind:            cc.Deal.Kind.String(),
			DiscountPercent: cc.Deal.DiscountPercent.String(),
		},
		Customer: CustomerSummary{
			ID:   cc.Customer.ID,
			Name: cc.Customer.Name,
			Tier: cc.Customer.Tier.String(),
		},
	}
}
