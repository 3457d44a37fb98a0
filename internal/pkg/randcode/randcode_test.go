//go:build unit

package randcode_test

import (
	"strings"
	"testing"

	"deals-engine/internal/pkg/randcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("produces codes of the requested length from the alphabet", func(t *testing.T) {
		for _, length := range []int{6, 8, 12} {
			code, err := randcode.Generate(length)
			require.NoError(t, err)
			assert.Len(t, code, length)
			assert.True(t, randcode.IsValid(code, length), "code %q should be valid", code)
		}
	})

	t.Run("never emits confusable characters", func(t *testing.T) {
		for range 200 {
			code, err := randcode.Generate(8)
			require.NoError(t, err)
			assert.False(t, strings.ContainsAny(code, "0O1I"), "code %q contains a confusable character", code)
		}
	})

	t.Run("rejects non-positive lengths", func(t *testing.T) {
		for _, length := range []int{0, -3} {
			_, err := randcode.Generate(length)
			require.ErrorIs(t, err, randcode.ErrInvalidLength)
		}
	})

	t.Run("codes are not repeated across a small sample", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 1000 {
			code, err := randcode.Generate(8)
			require.NoError(t, err)
			_, dup := seen[code]
			require.False(t, dup, "duplicate code %q", code)
			seen[code] = struct{}{}
		}
	})
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid", input: "ABCD2345", want: true},
		{name: "too short", input: "ABC234", want: false},
		{name: "contains zero", input: "ABCD2340", want: false},
		{name: "contains letter O", input: "ABCDO345", want: false},
		{name: "lower case", input: "abcd2345", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, randcode.IsValid(tc.input, 8))
		})
	}

	assert.True(t, randcode.IsValid(randcode.Normalize("  abcd2345 "), 8))
}
