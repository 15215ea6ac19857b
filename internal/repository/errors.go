package repository

import (
	"errors"

	cr "github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation     = "23505"
	PgErrForeignKeyViolation = "23503"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// Unexpected wraps an infrastructure error with a stack trace so the
// transport layer can log where it came from.
func Unexpected(err error, format string, args ...any) error {
	return cr.Wrapf(err, format, args...)
}
