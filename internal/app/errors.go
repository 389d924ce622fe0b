package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrClosed is returned when using an application after Shutdown.
	ErrClosed = errors.New("application is shut down")

	// ErrUnknownBackend indicates an unsupported clipboard backend setting.
	ErrUnknownBackend = errors.New("unknown clipboard backend")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
