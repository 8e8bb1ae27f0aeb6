package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func pgCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}
	return pgErr.Code, pgErr.ConstraintName, true
}

// IsUniqueViolation checks if the error is a PostgreSQL unique_violation
func IsUniqueViolation(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == uniqueViolation
}

// IsDuplicateConstraintError checks for a unique violation on a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	code, constraint, ok := pgCode(err)
	return ok && code == uniqueViolation && constraint == constraintName
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign_key_violation
func IsForeignKeyViolation(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == foreignKeyViolation
}
