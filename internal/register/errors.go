package register

import "errors"

// Errors returned by register operations.
var (
	// ErrInvalidRegisterName indicates a register name that is not exactly one character.
	ErrInvalidRegisterName = errors.New("register names must be 1 char long")

	// ErrInvalidRegisterValue indicates register values that cannot be coerced to strings.
	ErrInvalidRegisterValue = errors.New("register values must be a list of strings")

	// ErrInvalidPasteMode indicates an unknown paste mode name.
	ErrInvalidPasteMode = errors.New("invalid paste mode")
)
