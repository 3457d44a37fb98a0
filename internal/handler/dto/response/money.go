package response

import "github.com/shopspring/decimal"

// Amounts leave the API as fixed two-decimal strings so clients never round.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}
