package randcode

import (
	"crypto/rand"
	"strings"

	"deals-engine/internal/pkg/errs"
)

// Alphabet excludes the visually confusable 0/O and 1/I. Its length (32) divides 256,
// so masking a random byte keeps every symbol equally likely.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const alphabetMask = byte(len(Alphabet) - 1)

var ErrInvalidLength = errs.New("randcode: length must be positive")

func Generate(length int) (string, error) {
	if length <= 0 {
		return "", errs.Wrapf(ErrInvalidLength, "length %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "randcode: read random bytes")
	}

	var sb strings.Builder
	sb.Grow(length)
	for _, b := range buf {
		sb.WriteByte(Alphabet[b&alphabetMask])
	}
	return sb.String(), nil
}

// Normalize upper-cases and trims user input before validation.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func IsValid(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
