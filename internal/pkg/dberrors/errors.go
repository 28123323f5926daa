package dberrors

import (
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL error codes relevant to this application.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"

	// Class 23 covers all integrity constraint violations, class 08 all
	// connection exceptions.
	classConstraintViolation = "23"
	classConnectionException = "08"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation,
// optionally narrowed to a specific constraint name.
func IsForeignKeyViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeForeignKeyViolation {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation
// for a specific constraint.
func IsCheckViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeCheckViolation && pgErr.ConstraintName == constraintName
}

// IsConstraintViolation checks if the error is any PostgreSQL integrity
// constraint violation, regardless of which constraint fired.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, classConstraintViolation)
}

// IsConnectionError checks if the error stems from the database connection
// itself (refused, reset, timed out) rather than from the statement.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, classConnectionException)
	}

	return pgconn.Timeout(err)
}
