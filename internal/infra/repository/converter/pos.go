package converter

import (
	"deals-engine/internal/domain/pos"
	"deals-engine/internal/domain/transaction"
	sqlc "deals-engine/internal/infra/sqlc/generated"
	"deals-engine/internal/pkg/pgconv"
)

func SessionToCreateParams(s *pos.Session) sqlc.CreatePOSSessionParams {
	return sqlc.CreatePOSSessionParams{
		ID:         s.ID(),
		VendorID:   s.VendorID(),
		TerminalID: s.TerminalID(),
		OpenedAt:   pgconv.TimeToPgtype(s.OpenedAt()),
	}
}

func SessionFromRow(row sqlc.PosSessions) *pos.Session {
	return pos.Reconstruct(pos.ReconstructParams{
		ID:               row.ID,
		VendorID:         row.VendorID,
		TerminalID:       row.TerminalID,
		Status:           pos.Status(row.Status),
		OpenedAt:         pgconv.TimeFromPgtype(row.OpenedAt),
		ClosedAt:         pgconv.TimePtrFromPgtype(row.ClosedAt),
		TransactionCount: row.TransactionCount,
		TotalBill:        row.TotalBill,
		TotalSavings:     row.TotalSavings,
	})
}

func TransactionToCreateParams(t *transaction.Transaction) sqlc.CreateTransactionParams {
	return sqlc.CreateTransactionParams{
		ID:            t.ID(),
		ClaimID:       t.ClaimID(),
		DealID:        t.DealID(),
		VendorID:      t.VendorID(),
		CustomerID:    t.CustomerID(),
		PosSessionID:  pgconv.UUIDPtrToPgtype(t.SessionID()),
		BillAmount:    t.BillAmount(),
		SavingsAmount: t.Savings(),
		FinalAmount:   t.FinalAmount(),
		PaymentMethod: t.PaymentMethod().String(),
		ReceiptNumber: t.ReceiptNumber(),
		CreatedAt:     pgconv.TimeToPgtype(t.CreatedAt()),
	}
}
