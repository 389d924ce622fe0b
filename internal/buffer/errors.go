package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = errors.New("invalid range")
)
