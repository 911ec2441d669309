package schema

import (
	"errors"
	"strings"
)

// The DB drivers we run against (pgx in production, sqlite in tests) all
// surface errors differently; classification goes through the SQLSTATE when
// the driver exposes one and falls back to message sniffing otherwise.
type sqlStateErr interface {
	SQLState() string
	Error() string
}

func sqlState(err error) string {
	var se sqlStateErr
	if errors.As(err, &se) {
		return se.SQLState()
	}
	return ""
}

// IsUndefinedColumn reports whether err signals a column missing from the
// live schema (Postgres 42703, sqlite "no such column").
func IsUndefinedColumn(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) == "42703" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "42703") ||
		strings.Contains(s, "no such column") ||
		(strings.Contains(s, "column") && strings.Contains(s, "does not exist"))
}

// IsUndefinedTable reports whether err signals a table missing from the
// live schema (Postgres 42P01, sqlite "no such table").
func IsUndefinedTable(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) == "42P01" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "42p01") ||
		strings.Contains(s, "no such table") ||
		(strings.Contains(s, "relation") && strings.Contains(s, "does not exist"))
}

// IsSchemaMismatch is the class the query cascade recovers from; every other
// error class propagates to the caller untouched.
func IsSchemaMismatch(err error) bool {
	return IsUndefinedColumn(err) || IsUndefinedTable(err)
}

// IsUniqueViolation detects a unique-constraint violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
