package membership

import (
	"strings"
	"time"

	"deals-engine/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QRPrefix marks a scanned QR payload as a membership card.
const QRPrefix = "DEALMEMBER:"

// Card is the identity asserted by a membership token.
type Card struct {
	CustomerID   uuid.UUID
	Name         string
	Tier         customer.Tier
	TotalSavings decimal.Decimal
	DealsClaimed int32
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

func CardFor(c *customer.Customer) Card {
	return Card{
		CustomerID:   c.ID(),
		Name:         c.Name(),
		Tier:         c.Tier(),
		TotalSavings: c.TotalSavings(),
		DealsClaimed: c.DealsClaimed(),
	}
}

func QRPayload(token string) string {
	return QRPrefix + token
}

// ExtractToken accepts either a bare token or a scanned QR payload.
func ExtractToken(raw string) string {
	raw = strings.TrimSpace(raw)
	return strings.TrimPrefix(raw, QRPrefix)
}
