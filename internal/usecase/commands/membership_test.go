//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"deals-engine/internal/domain/customer"
	"deals-engine/internal/domain/membership"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/jwt"
	"deals-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMembershipUseCase(t *testing.T) {
	ctx := context.Background()
	c := customer.Reconstruct(uuid.New(), "Ana", customer.TierGold, decimal.RequireFromString("123.40"), 7)

	t.Run("success: issued token verifies from the QR payload", func(t *testing.T) {
		m := newTxMocks(t)
		signer := jwt.NewMembershipSigner("membership-secret", "deals-engine", m.clock.Now)
		m.customers.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)

		uc := commands.NewMembershipUseCase(m.uow, signer)
		issued, err := uc.IssueToken(ctx, c.ID())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(issued.QRPayload, membership.QRPrefix))
		assert.Equal(t, testNow.Add(jwt.MembershipTokenTTL), issued.ExpiresAt)
		assert.Equal(t, testNow, issued.Card.IssuedAt)

		card, err := uc.VerifyToken(ctx, issued.QRPayload)
		require.NoError(t, err)
		assert.Equal(t, c.ID(), card.CustomerID)
		assert.Equal(t, "Ana", card.Name)
		assert.Equal(t, customer.TierGold, card.Tier)
		assert.True(t, card.TotalSavings.Equal(decimal.RequireFromString("123.40")))
		assert.Equal(t, int32(7), card.DealsClaimed)
	})

	t.Run("error: expired token", func(t *testing.T) {
		m := newTxMocks(t)
		signer := jwt.NewMembershipSigner("membership-secret", "deals-engine", m.clock.Now)
		m.customers.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)

		uc := commands.NewMembershipUseCase(m.uow, signer)
		issued, err := uc.IssueToken(ctx, c.ID())
		require.NoError(t, err)

		m.clock.Add(jwt.MembershipTokenTTL + time.Minute)
		_, err = uc.VerifyToken(ctx, issued.Token)

		require.ErrorIs(t, err, errs.ErrTokenExpired)
	})

	t.Run("error: token signed with another key", func(t *testing.T) {
		m := newTxMocks(t)
		m.customers.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)

		other := commands.NewMembershipUseCase(m.uow, jwt.NewMembershipSigner("other-secret", "deals-engine", m.clock.Now))
		issued, err := other.IssueToken(ctx, c.ID())
		require.NoError(t, err)

		uc := commands.NewMembershipUseCase(m.uow, jwt.NewMembershipSigner("membership-secret", "deals-engine", m.clock.Now))
		_, err = uc.VerifyToken(ctx, issued.Token)

		require.ErrorIs(t, err, errs.ErrTokenInvalid)
	})

	t.Run("error: garbage", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewMembershipUseCase(m.uow, jwt.NewMembershipSigner("membership-secret", "deals-engine", m.clock.Now))

		_, err := uc.VerifyToken(ctx, membership.QRPrefix+"not-a-token")

		require.ErrorIs(t, err, errs.ErrTokenInvalid)
	})

	t.Run("error: unknown customer", func(t *testing.T) {
		m := newTxMocks(t)
		id := uuid.New()
		m.customers.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		uc := commands.NewMembershipUseCase(m.uow, jwt.NewMembershipSigner("membership-secret", "deals-engine", m.clock.Now))
		_, err := uc.IssueToken(ctx, id)

		require.ErrorIs(t, err, errs.ErrCustomerNotFound)
	})
}
