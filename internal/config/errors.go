package config

import "fmt"

// ParseError indicates a configuration file that could not be parsed.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
