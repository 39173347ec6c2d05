package repository

import "errors"

var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an insert violates the unique
	// constraint on users.email. The constraint is the authoritative
	// duplicate guard; callers translate this into their own error.
	ErrDuplicateEmail = errors.New("email already registered")
)
