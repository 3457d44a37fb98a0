package payout

import (
	"time"

	"deals-engine/internal/pkg/errs"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) String() string { return string(s) }

// Period is an inclusive [start, end] window over event occurrence times.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return Period{}, errs.ErrInvalidPeriod
	}
	return Period{start: start.UTC(), end: end.UTC()}, nil
}

func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start.UTC(), end: end.UTC()}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && !t.After(p.end)
}
