package session

import (
	"errors"
	"fmt"
)

// Errors returned by session operations.
var (
	// ErrSaverClosed is returned when flushing a closed saver.
	ErrSaverClosed = errors.New("session saver is closed")

	// ErrNoSource is returned when a saver has nothing to snapshot.
	ErrNoSource = errors.New("session saver has no snapshot source")
)

// FormatError indicates a session file that could not be decoded.
type FormatError struct {
	Path    string
	Message string
	Err     error
}

// Error implements error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("session %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}
