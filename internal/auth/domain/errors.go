package domain

import (
	"fmt"

	"github.com/bearodactyl/apiodactyl/internal/errors"
)

// Authentication and authorization errors. Handlers map each kind to exactly
// one HTTP status; no internal detail leaks into the status choice.
var (
	// ErrMissingHeader indicates the Authorization header is absent.
	ErrMissingHeader = errors.New("missing authorization header")

	// ErrInvalidFormat indicates the Authorization header does not carry a
	// "Bearer " scheme (exact casing, single trailing space).
	ErrInvalidFormat = errors.New("invalid authorization header format")

	// ErrInvalidKey indicates the presented API key does not match any record.
	ErrInvalidKey = errors.New("invalid api key")

	// ErrInsufficientPermissions indicates the caller lacks the admin capability.
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	// ErrDatabase indicates a store access failure. It aggregates connectivity
	// and constraint errors alike; callers only need to tell "the key is wrong"
	// from "the system is broken".
	ErrDatabase = errors.New("database error")

	// ErrAPIKeyNotFound indicates no record matches the given digest. It is a
	// repository-level error; use cases translate it to ErrInvalidKey.
	ErrAPIKeyNotFound = errors.Wrap(errors.ErrNotFound, "api key not found")
)

// WrapDatabase tags a store failure with ErrDatabase while preserving the
// cause in the error chain.
func WrapDatabase(err error) error {
	return fmt.Errorf("%w: %w", ErrDatabase, err)
}
