package infra

import (
	"errors"
	"log/slog"

	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
	pgErrSerialization       = "40001"
	pgErrDeadlock            = "40P01"
)

// WrapRepoErr classifies err by its Postgres error code. Serialization failures keep
// the *pgconn.PgError reachable so the unit of work can retry them.
func WrapRepoErr(msg string, err error) error {
	if err == nil {
		return nil
	}

	kind := KindDBFailure
	var constraint string
	var pgErr *pgconn.PgError
	switch {
	case pgconv.IsNoRows(err):
		kind = KindNotFound
	case errors.As(err, &pgErr):
		constraint = pgErr.ConstraintName
		switch pgErr.Code {
		case pgErrUniqueViolation:
			kind = KindDuplicateKey
		case pgErrForeignKeyViolation:
			kind = KindForeignKeyViolated
		case pgErrCheckViolation, pgErrSerialization, pgErrDeadlock:
			kind = KindConflict
		}
	}

	if kind == KindDBFailure {
		slog.Error("repository error: "+msg, slog.String("kind", string(kind)), slog.String("error", err.Error()))
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: errs.Wrap(err, msg)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}
