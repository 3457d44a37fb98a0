package readstore

import (
	"deals-engine/internal/pkg/pgconv"
	"deals-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// keysetParams maps an optional page position to the nullable (timestamp, id) pair the
// list queries compare against; a NULL timestamp selects the first page.
func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.At), pgconv.UUIDToPgtype(after.ID)
}
