//go:build unit

package repository_test

import (
	"context"
	"testing"

	"deals-engine/internal/domain/customer"
	"deals-engine/internal/infra"
	"deals-engine/internal/infra/repository"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	repositorymock "deals-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCustomerRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCustomerQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetCustomerByID(ctx, mockDB, id).Return(sqlc.Customers{
			ID: id, Name: "Ana", MembershipTier: "gold", TotalSavings: decimal.RequireFromString("123.40"), DealsClaimed: 7,
		}, nil)

		c, err := repository.NewCustomerRepository(mockQueries, mockDB).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, customer.TierGold, c.Tier())
		assert.Equal(t, int32(7), c.DealsClaimed())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCustomerQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetCustomerByID(ctx, mockDB, id).Return(sqlc.Customers{}, pgx.ErrNoRows)

		_, err := repository.NewCustomerRepository(mockQueries, mockDB).FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCustomerRepository_AddSavings(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	for _, affected := range []int64{0, 1} {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCustomerQueries(ctrl)
		mockDB := &mockDBTX{}
		savings := decimal.RequireFromString("9.00")
		mockQueries.EXPECT().AddCustomerSavings(ctx, mockDB, sqlc.AddCustomerSavingsParams{Savings: savings, ID: id}).Return(affected, nil)

		ok, err := repository.NewCustomerRepository(mockQueries, mockDB).AddSavings(ctx, id, savings)

		require.NoError(t, err)
		assert.Equal(t, affected == 1, ok)
	}
}
