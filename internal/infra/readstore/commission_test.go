//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"deals-engine/internal/infra"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"
	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCommissionViewQueries struct {
	mock.Mock
}

func (m *MockCommissionViewQueries) GetCommissionOverview(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCommissionOverviewParams) (sqlc.GetCommissionOverviewRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetCommissionOverviewRow), args.Error(1)
}

func (m *MockCommissionViewQueries) CountVendorsWithOnlineDeals(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommissionViewQueries) ListVendorCommissionPerformance(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVendorCommissionPerformanceParams) ([]sqlc.ListVendorCommissionPerformanceRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListVendorCommissionPerformanceRow), args.Error(1)
}

func (m *MockCommissionViewQueries) ListCommissionEventsByVendor(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommissionEventsByVendorParams) ([]sqlc.CommissionEvents, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.CommissionEvents), args.Error(1)
}

func TestCommissionReadStore_Overview(t *testing.T) {
	status := "confirmed"
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	filter := queries.CommissionFilter{Status: &status, From: &from}
	wantParams := sqlc.GetCommissionOverviewParams{
		Status:   pgtype.Text{String: "confirmed", Valid: true},
		FromTime: pgtype.Timestamptz{Time: from, Valid: true},
	}

	t.Run("combines event totals with vendor count", func(t *testing.T) {
		mockQueries := new(MockCommissionViewQueries)
		mockQueries.On("GetCommissionOverview", mock.Anything, mock.Anything, wantParams).Return(sqlc.GetCommissionOverviewRow{
			TotalRevenue:     decimal.RequireFromString("27.50"),
			TotalClicks:      12,
			TotalConversions: 3,
			AverageRate:      decimal.RequireFromString("6.25"),
		}, nil)
		mockQueries.On("CountVendorsWithOnlineDeals", mock.Anything, mock.Anything).Return(int64(4), nil)

		store := NewCommissionReadStore(mockQueries, nil)
		o, err := store.Overview(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, "27.5", o.TotalRevenue.String())
		assert.Equal(t, int64(12), o.TotalClicks)
		assert.Equal(t, int64(3), o.TotalConversions)
		assert.Equal(t, int64(4), o.ActiveVendors)
		mockQueries.AssertExpectations(t)
	})

	t.Run("vendor count failure", func(t *testing.T) {
		mockQueries := new(MockCommissionViewQueries)
		mockQueries.On("GetCommissionOverview", mock.Anything, mock.Anything, wantParams).Return(sqlc.GetCommissionOverviewRow{}, nil)
		mockQueries.On("CountVendorsWithOnlineDeals", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		store := NewCommissionReadStore(mockQueries, nil)
		o, err := store.Overview(context.Background(), filter)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCommissionReadStore_ListByVendor(t *testing.T) {
	vendorID := uuid.New()
	batchID := uuid.New()
	occurred := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	row := sqlc.CommissionEvents{
		ID:               uuid.New(),
		VendorID:         vendorID,
		DealID:           uuid.New(),
		EventType:        "conversion",
		Status:           "paid",
		CommissionRate:   decimal.NewFromInt(10),
		SaleAmount:       decimal.NewNullDecimal(decimal.NewFromInt(200)),
		CommissionAmount: decimal.NewFromInt(20),
		OccurredAt:       pgconv.TimeToPgtype(occurred),
		ConfirmedAt:      pgconv.TimeToPgtype(occurred.Add(time.Hour)),
		PaidAt:           pgconv.TimeToPgtype(occurred.Add(48 * time.Hour)),
		PayoutBatchID:    pgconv.UUIDToPgtype(batchID),
	}
	wantParams := sqlc.ListCommissionEventsByVendorParams{VendorID: vendorID, RowLimit: 11}

	mockQueries := new(MockCommissionViewQueries)
	mockQueries.On("ListCommissionEventsByVendor", mock.Anything, mock.Anything, wantParams).Return([]sqlc.CommissionEvents{row}, nil)

	store := NewCommissionReadStore(mockQueries, nil)
	views, err := store.ListByVendor(context.Background(), vendorID, queries.CommissionFilter{}, nil, 11)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "conversion", views[0].EventType)
	assert.Nil(t, views[0].EstimatedOrderValue)
	require.NotNil(t, views[0].PayoutBatchID)
	assert.Equal(t, batchID, *views[0].PayoutBatchID)
	require.NotNil(t, views[0].PaidAt)
	mockQueries.AssertExpectations(t)
}
