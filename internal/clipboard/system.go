package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System is the host clipboard.
type System struct{}

// NewSystem returns the host clipboard.
func NewSystem() *System {
	return &System{}
}

// Supported reports whether a clipboard utility was found on the host.
func (*System) Supported() bool {
	return !clipboard.Unsupported
}

// Read returns the current clipboard content.
func (s *System) Read() (string, error) {
	if !s.Supported() {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading system clipboard: %w", err)
	}
	return text, nil
}

// Write sets the clipboard content.
func (s *System) Write(text string) error {
	if !s.Supported() {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}
