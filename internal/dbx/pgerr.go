package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rwandev/busfleet/internal/common"
)

// Postgres error codes the repositories care about.
const (
	pgUniqueViolation           = "23505"
	pgForeignKeyViolation       = "23503"
	pgInvalidTextRepresentation = "22P02" // e.g. malformed uuid literal
)

// ConstraintError maps Postgres integrity violations onto the shared
// sentinel errors. It returns nil when err is not a recognized constraint
// violation; callers fall back to generic wrapping in that case.
func ConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return common.ErrAlreadyExists
	case pgForeignKeyViolation, pgInvalidTextRepresentation:
		return common.ErrInvalidReference
	}
	return nil
}
