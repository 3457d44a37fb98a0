package response

import (
	"time"

	"deals-engine/internal/domain/membership"
	"deals-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type MembershipCardResponse struct {
	CustomerID   uuid.UUID `json:"customer_id"`
	Name         string    `json:"name"`
	Tier         string    `json:"tier"`
	TotalSavings string    `json:"total_savings"`
	DealsClaimed int32     `json:"deals_claimed"`
	IssuedAt     time.Time `json:"issued_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func FromMembershipCard(c *membership.Card) *MembershipCardResponse {
	return &MembershipCardResponse{
		CustomerID:   c.CustomerID,
		Name:         c.Name,
		Tier:         c.Tier.String(),
		TotalSavings: money(c.TotalSavings),
		DealsClaimed: c.DealsClaimed,
		IssuedAt:     c.IssuedAt,
		ExpiresAt:    c.ExpiresAt,
	}
}

type MembershipTokenResponse struct {
	Token     string                  `json:"token"`
	QRPayload string                  `json:"qr_payload"`
	ExpiresAt time.Time               `json:"expires_at"`
	Card      *MembershipCardResponse `json:"card"`
}

func FromMembershipToken(t *commands.MembershipToken) *MembershipTokenResponse {
	return &MembershipTokenResponse{
		Token:     t.Token,
		QRPayload: t.QRPayload,
		ExpiresAt: t.ExpiresAt,
		Card:      FromMembershipCard(&t.Card),
	}
}
