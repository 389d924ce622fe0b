package app

import (
	"fmt"
	"os"

	"github.com/dshills/regstore/internal/buffer"
)

// OpenView reads path into a view with the given selections.
// No ranges selects the whole file.
func OpenView(path string, ranges []buffer.Range) (*buffer.View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	view := buffer.NewView(string(data), buffer.WithPath(path))
	if len(ranges) == 0 {
		ranges = []buffer.Range{buffer.NewRange(0, view.BufferSize())}
	}
	view.SetSelections(ranges...)

	if err := view.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return view, nil
}
