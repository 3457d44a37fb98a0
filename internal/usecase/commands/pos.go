package commands

//go:generate mockgen -source=pos.go -destination=../../../tests/mock/commands/mock_pos.go -package=commandsmock

import (
	"context"

	"deals-engine/internal/domain/pos"
	"deals-engine/internal/infra"
	"deals-engine/internal/pkg/clock"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type POSCommands interface {
	Open(ctx context.Context, vendorID uuid.UUID, terminalID string) (*pos.Session, error)
	Close(ctx context.Context, vendorID, sessionID uuid.UUID) (*pos.Session, error)
}

type posUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPOSUseCase(uow shared.UnitOfWork, clk clock.Clock) POSCommands {
	return &posUseCaseImpl{uow: uow, clock: clk}
}

// Open starts a session; a terminal has at most one open session at a time.
func (uc *posUseCaseImpl) Open(ctx context.Context, vendorID uuid.UUID, terminalID string) (*pos.Session, error) {
	s, err := pos.Open(vendorID, terminalID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.POSSessions().Create(ctx, s)
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.ErrSessionAlreadyOpen
		case err != nil:
			return missingRefAs(err, errs.ErrVendorNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *posUseCaseImpl) Close(ctx context.Context, vendorID, sessionID uuid.UUID) (*pos.Session, error) {
	var closed *pos.Session
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.POSSessions().FindByID(ctx, sessionID)
		if err != nil {
			return notFoundAs(err, errs.ErrSessionNotFound)
		}
		if s.VendorID() != vendorID {
			return errs.ErrSessionNotFound
		}
		if err = s.Close(uc.clock.Now()); err != nil {
			return err
		}
		ok, err := tx.POSSessions().Close(ctx, s)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrSessionNotOpen
		}
		closed = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}
