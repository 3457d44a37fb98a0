package commands

import (
	"deals-engine/internal/infra"
)

// notFoundAs replaces a repository NOT_FOUND with the caller's domain sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

// missingRefAs maps a foreign key violation to the sentinel of the missing parent row.
func missingRefAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return sentinel
	}
	return err
}
