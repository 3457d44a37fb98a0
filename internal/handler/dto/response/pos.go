package response

import (
	"time"

	"deals-engine/internal/domain/pos"
	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID               uuid.UUID  `json:"id"`
	TerminalID       string     `json:"terminal_id"`
	Status           string     `json:"status"`
	OpenedAt         time.Time  `json:"opened_at"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
	TransactionCount int32      `json:"transaction_count"`
	TotalBill        string     `json:"total_bill"`
	TotalSavings     string     `json:"total_savings"`
}

func FromSession(s *pos.Session) *SessionResponse {
	return &SessionResponse{
		ID:               s.ID(),
		TerminalID:       s.TerminalID(),
		Status:           string(s.Status()),
		OpenedAt:         s.OpenedAt(),
		ClosedAt:         s.ClosedAt(),
		TransactionCount: s.TransactionCount(),
		TotalBill:        money(s.TotalBill()),
		TotalSavings:     money(s.TotalSavings()),
	}
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:               v.ID,
		TerminalID:       v.TerminalID,
		Status:           v.Status,
		OpenedAt:         v.OpenedAt,
		ClosedAt:         v.ClosedAt,
		TransactionCount: v.TransactionCount,
		TotalBill:        money(v.TotalBill),
		TotalSavings:     money(v.TotalSavings),
	}
}
