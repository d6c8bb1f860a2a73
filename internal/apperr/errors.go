// Package apperr defines the error classes shared between the repository,
// service and controller layers. Services and repositories wrap these
// sentinels; controllers translate them to HTTP statuses exactly once.
package apperr

import "errors"

var (
	// ErrNotFound marks a target that is missing or soft-deleted.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks a failed permission check.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict marks a duplicate unique key, e.g. a creation race.
	ErrConflict = errors.New("conflict")

	// ErrValidation marks malformed input, including weak passwords.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks missing or bad credentials and invalid tokens.
	ErrUnauthorized = errors.New("unauthorized")
)
