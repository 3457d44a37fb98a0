package commands

//go:generate mockgen -source=membership.go -destination=../../../tests/mock/commands/mock_membership.go -package=commandsmock

import (
	"context"
	"errors"
	"time"

	"deals-engine/internal/domain/customer"
	"deals-engine/internal/domain/membership"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/jwt"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MembershipToken struct {
	Token     string
	QRPayload string
	ExpiresAt time.Time
	Card      membership.Card
}

type MembershipCommands interface {
	IssueToken(ctx context.Context, customerID uuid.UUID) (*MembershipToken, error)
	VerifyToken(ctx context.Context, raw string) (*membership.Card, error)
}

type membershipUseCaseImpl struct {
	uow    shared.UnitOfWork
	signer *jwt.MembershipSigner
}

func NewMembershipUseCase(uow shared.UnitOfWork, signer *jwt.MembershipSigner) MembershipCommands {
	return &membershipUseCaseImpl{uow: uow, signer: signer}
}

func (uc *membershipUseCaseImpl) IssueToken(ctx context.Context, customerID uuid.UUID) (*MembershipToken, error) {
	var c *customer.Customer
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Customers().FindByID(ctx, customerID)
		if err != nil {
			return notFoundAs(err, errs.ErrCustomerNotFound)
		}
		c = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	card := membership.CardFor(c)
	token, expiresAt, err := uc.signer.Sign(jwt.MembershipClaims{
		CustomerID:   card.CustomerID,
		Name:         card.Name,
		Tier:         card.Tier.String(),
		TotalSavings: card.TotalSavings.StringFixed(2),
		DealsClaimed: card.DealsClaimed,
	})
	if err != nil {
		return nil, errs.Wrap(err, "sign membership token")
	}
	card.IssuedAt = expiresAt.Add(-jwt.MembershipTokenTTL)
	card.ExpiresAt = expiresAt

	return &MembershipToken{
		Token:     token,
		QRPayload: membership.QRPayload(token),
		ExpiresAt: expiresAt,
		Card:      card,
	}, nil
}

// VerifyToken checks the signature and expiry of a scanned card. The token is
// self-contained, so no state is read or written.
func (uc *membershipUseCaseImpl) VerifyToken(_ context.Context, raw string) (*membership.Card, error) {
	claims, err := uc.signer.Parse(membership.ExtractToken(raw))
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrTokenInvalid
	}

	savings, err := decimal.NewFromString(claims.TotalSavings)
	if err != nil {
		return nil, errs.ErrTokenInvalid
	}
	card := &membership.Card{
		CustomerID:   claims.CustomerID,
		Name:         claims.Name,
		Tier:         customer.Tier(claims.Tier),
		TotalSavings: savings,
		DealsClaimed: claims.DealsClaimed,
	}
	if claims.IssuedAt != nil {
		card.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		card.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return card, nil
}
