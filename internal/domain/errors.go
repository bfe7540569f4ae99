// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Snapshot-related errors
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// User-related errors
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidFullName = errors.New("could not parse full name")

	// Group-related errors
	ErrGroupNotFound = errors.New("group not found")

	// Item-related errors
	ErrItemNotFound = errors.New("item not found")
	ErrMissingTitle = errors.New("item properties must define a title")
)
