package transaction

import (
	"time"

	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/randcode"
)

const receiptSuffixLength = 6

// GenerateReceiptNumber returns RCPT-YYYYMMDD-XXXXXX for the given UTC day.
func GenerateReceiptNumber(now time.Time) (string, error) {
	suffix, err := randcode.Generate(receiptSuffixLength)
	if err != nil {
		return "", errs.Wrap(err, "generate receipt number")
	}
	return "RCPT-" + now.UTC().Format("20060102") + "-" + suffix, nil
}
