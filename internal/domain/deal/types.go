package deal

import (
	"time"

	"deals-engine/internal/pkg/errs"
)

type Kind string

const (
	KindInStore Kind = "in_store"
	KindOnline  Kind = "online"
)

const (
	inStoreClaimValidity = 24 * time.Hour
	onlineClaimValidity  = 30 * 24 * time.Hour
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindInStore, KindOnline:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", errs.ErrInvalidDealKind
	}
	return kind, nil
}

// ClaimValidity is the lifetime of a claim issued against a deal of this kind.
func (k Kind) ClaimValidity() time.Duration {
	if k == KindOnline {
		return onlineClaimValidity
	}
	return inStoreClaimValidity
}
