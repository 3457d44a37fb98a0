package customer

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierBasic    Tier = "basic"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}

// Customer is the engine's view of a member: identity, tier and savings counters.
type Customer struct {
	id           uuid.UUID
	name         string
	tier         Tier
	totalSavings decimal.Decimal
	dealsClaimed int32
}

func Reconstruct(id uuid.UUID, name string, tier Tier, totalSavings decimal.Decimal, dealsClaimed int32) *Customer {
	return &Customer{
		id:           id,
		name:         name,
		tier:         tier,
		totalSavings: totalSavings,
		dealsClaimed: dealsClaimed,
	}
}

func (c *Customer) ID() uuid.UUID                 { return c.id }
func (c *Customer) Name() string                  { return c.name }
func (c *Customer) Tier() Tier                    { return c.tier }
func (c *Customer) TotalSavings() decimal.Decimal { return c.totalSavings }
func (c *Customer) DealsClaimed() int32           { return c.dealsClaimed }
