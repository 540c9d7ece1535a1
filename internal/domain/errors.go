package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrEmptyQuery marks an invalid request (empty or whitespace-only query).
	// It is distinct from a translation miss, which is a nil result.
	ErrEmptyQuery = errors.New("empty query")
)
