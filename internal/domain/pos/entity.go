package pos

import (
	"strings"
	"time"

	"deals-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxTerminalIDLength = 64

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string { return string(s) }

// Session groups a vendor terminal's checkouts between open and close.
type Session struct {
	id               uuid.UUID
	vendorID         uuid.UUID
	terminalID       string
	status           Status
	openedAt         time.Time
	closedAt         *time.Time
	transactionCount int32
	totalBill        decimal.Decimal
	totalSavings     decimal.Decimal
}

func Open(vendorID uuid.UUID, terminalID string, now time.Time) (*Session, error) {
	terminalID = strings.TrimSpace(terminalID)
	if terminalID == "" || len(terminalID) > MaxTerminalIDLength {
		return nil, errs.Wrap(errs.ErrDomainValidation, "terminal id must be 1-64 characters")
	}
	return &Session{
		id:           uuid.New(),
		vendorID:     vendorID,
		terminalID:   terminalID,
		status:       StatusOpen,
		openedAt:     now,
		totalBill:    decimal.Zero,
		totalSavings: decimal.Zero,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	VendorID         uuid.UUID
	TerminalID       string
	Status           Status
	OpenedAt         time.Time
	ClosedAt         *time.Time
	TransactionCount int32
	TotalBill        decimal.Decimal
	TotalSavings     decimal.Decimal
}

func Reconstruct(p ReconstructParams) *Session {
	return &Session{
		id:               p.ID,
		vendorID:         p.VendorID,
		terminalID:       p.TerminalID,
		status:           p.Status,
		openedAt:         p.OpenedAt,
		closedAt:         p.ClosedAt,
		transactionCount: p.TransactionCount,
		totalBill:        p.TotalBill,
		totalSavings:     p.TotalSavings,
	}
}

func (s *Session) IsOpen() bool {
	return s.status == StatusOpen
}

func (s *Session) Close(now time.Time) error {
	if !s.IsOpen() {
		return errs.ErrSessionNotOpen
	}
	s.status = StatusClosed
	s.closedAt = &now
	return nil
}

func (s *Session) Record(bill, savings decimal.Decimal) error {
	if !s.IsOpen() {
		return errs.ErrSessionNotOpen
	}
	s.transactionCount++
	s.totalBill = s.totalBill.Add(bill)
	s.totalSavings = s.totalSavings.Add(savings)
	return nil
}

func (s *Session) ID() uuid.UUID                 { return s.id }
func (s *Session) VendorID() uuid.UUID           { return s.vendorID }
func (s *Session) TerminalID() string            { return s.terminalID }
func (s *Session) Status() Status                { return s.status }
func (s *Session) OpenedAt() time.Time           { return s.openedAt }
func (s *Session) ClosedAt() *time.Time          { return s.closedAt }
func (s *Session) TransactionCount() int32       { return s.transactionCount }
func (s *Session) TotalBill() decimal.Decimal    { return s.totalBill }
func (s *Session) TotalSavings() decimal.Decimal { return s.totalSavings }
