//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"deals-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 14, 10, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, time.UTC, gotAt.Location())
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Rejects(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "unversioned", cursor: enc("1710410400000000-" + uuid.NewString())},
		{name: "unknown version", cursor: enc("v2:1710410400000000-" + uuid.NewString())},
		{name: "bad timestamp", cursor: enc("v1:abc-" + uuid.NewString())},
		{name: "bad uuid", cursor: enc("v1:1710410400000000-not-a-uuid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(500))
}
