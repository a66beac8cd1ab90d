package services

import "errors"

// Service errors, matched with errors.Is at the call boundary. Store
// errors (constraint violations, lock timeouts) propagate as-is.
var (
	// ErrNotFound indicates a referenced game or player does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates the caller supplied no usable input.
	ErrValidation = errors.New("invalid input")
)
