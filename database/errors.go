package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// MissingTable is the SQLSTATE for undefined_table.
const missingTableCode = "42P01"

// IsMissingTable reports whether err means a backing table does not exist.
// Reads degrade to sample or empty responses on this error class instead of
// surfacing it to the caller.
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == missingTableCode
	}

	// Drivers that don't expose SQLSTATE still phrase it the same way
	msg := err.Error()
	return strings.Contains(msg, "does not exist") && strings.Contains(msg, "relation")
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
