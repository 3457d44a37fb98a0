//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"deals-engine/internal/domain/pos"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPOSUseCase_Open(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()

	t.Run("success", func(t *testing.T) {
		m := newTxMocks(t)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := commands.NewPOSUseCase(m.uow, m.clock)
		s, err := uc.Open(ctx, vendorID, " till-1 ")

		require.NoError(t, err)
		assert.Equal(t, "till-1", s.TerminalID())
		assert.Equal(t, pos.StatusOpen, s.Status())
		assert.Equal(t, testNow, s.OpenedAt())
	})

	t.Run("error: terminal already has an open session", func(t *testing.T) {
		m := newTxMocks(t)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateErr())

		uc := commands.NewPOSUseCase(m.uow, m.clock)
		_, err := uc.Open(ctx, vendorID, "till-1")

		require.ErrorIs(t, err, errs.ErrSessionAlreadyOpen)
	})

	t.Run("error: unknown vendor", func(t *testing.T) {
		m := newTxMocks(t)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fkErr())

		uc := commands.NewPOSUseCase(m.uow, m.clock)
		_, err := uc.Open(ctx, vendorID, "till-1")

		require.ErrorIs(t, err, errs.ErrVendorNotFound)
	})

	t.Run("error: blank terminal", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewPOSUseCase(m.uow, m.clock)

		_, err := uc.Open(ctx, vendorID, "   ")

		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestPOSUseCase_Close(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()
	session := func(status pos.Status) *pos.Session {
		return pos.Reconstruct(pos.ReconstructParams{
			ID:               uuid.New(),
			VendorID:         vendorID,
			TerminalID:       "till-1",
			Status:           status,
			OpenedAt:         testNow.Add(-8 * time.Hour),
			TransactionCount: 4,
			TotalBill:        decimal.RequireFromString("180.00"),
			TotalSavings:     decimal.RequireFromString("36.00"),
		})
	}

	t.Run("success", func(t *testing.T) {
		m := newTxMocks(t)
		s := session(pos.StatusOpen)
		m.sessions.EXPECT().FindByID(gomock.Any(), s.ID()).Return(s, nil)
		m.sessions.EXPECT().Close(gomock.Any(), s).Return(true, nil)

		uc := commands.NewPOSUseCase(m.uow, m.clock)
		got, err := uc.Close(ctx, vendorID, s.ID())

		require.NoError(t, err)
		assert.Equal(t, pos.StatusClosed, got.Status())
		require.NotNil(t, got.ClosedAt())
		assert.Equal(t, testNow, *got.ClosedAt())
		assert.Equal(t, int32(4), got.TransactionCount())
	})

	tests := []struct {
		name     string
		status   pos.Status
		vendorID uuid.UUID
		closeOK  *bool
		wantErr  error
	}{
		{name: "error: already closed", status: pos.StatusClosed, vendorID: vendorID, wantErr: errs.ErrSessionNotOpen},
		{name: "error: another vendor's session", status: pos.StatusOpen, vendorID: uuid.New(), wantErr: errs.ErrSessionNotFound},
		{name: "error: closed concurrently", status: pos.StatusOpen, vendorID: vendorID, closeOK: new(bool), wantErr: errs.ErrSessionNotOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTxMocks(t)
			s := session(tt.status)
			m.sessions.EXPECT().FindByID(gomock.Any(), s.ID()).Return(s, nil)
			if tt.closeOK != nil {
				m.sessions.EXPECT().Close(gomock.Any(), s).Return(*tt.closeOK, nil)
			}

			uc := commands.NewPOSUseCase(m.uow, m.clock)
			_, err := uc.Close(ctx, tt.vendorID, s.ID())

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
