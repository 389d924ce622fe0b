package clipboard

import "errors"

// Errors returned by clipboard operations.
var (
	// ErrUnsupported is returned when the host has no clipboard utility.
	ErrUnsupported = errors.New("system clipboard unsupported")
)
