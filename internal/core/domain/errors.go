package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Stores return it for a cache miss.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPageMissing indicates the link source has no page for a name,
	// even after search fallback. It is an expected outcome, never a fault:
	// callers treat the topic as having no outgoing references.
	ErrPageMissing = errors.New("page missing")

	// ErrRateLimited indicates the link source API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrSourceUnavailable indicates the link source could not be reached.
	ErrSourceUnavailable = errors.New("link source unavailable")
)
