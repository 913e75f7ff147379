package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrStorage is returned when a collection could not be persisted.
	// The in-memory state is left untouched when it is returned.
	ErrStorage = errors.New("failed to persist collection")
)
