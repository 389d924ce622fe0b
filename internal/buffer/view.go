package buffer

import (
	"fmt"
	"strings"
)

// View is an immutable text snapshot with a set of selections.
// Selections keep the order they were given in.
type View struct {
	text       string
	path       string
	selections []Range
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithPath sets the file path reported by FilePath.
func WithPath(path string) ViewOption {
	return func(v *View) {
		v.path = path
	}
}

// NewView creates a view over text with a single empty selection at offset 0.
func NewView(text string, opts ...ViewOption) *View {
	v := &View{
		text:       text,
		selections: []Range{{}},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetSelections replaces the selection set.
// Ranges are stored as given; Substring clamps them on read.
func (v *View) SetSelections(ranges ...Range) {
	v.selections = append(v.selections[:0:0], ranges...)
}

// Validate checks every selection against the buffer bounds.
func (v *View) Validate() error {
	for _, r := range v.selections {
		if !r.IsValid() {
			return fmt.Errorf("%w: %s", ErrRangeInvalid, r)
		}
		if r.End > len(v.text) {
			return fmt.Errorf("%w: %s beyond %d", ErrOffsetOutOfRange, r, len(v.text))
		}
	}
	return nil
}

// Selections returns a copy of the current selections.
func (v *View) Selections() []Range {
	out := make([]Range, len(v.selections))
	copy(out, v.selections)
	return out
}

// Substring returns the text covered by r, clamped to the buffer.
func (v *View) Substring(r Range) string {
	start := clamp(r.Start, 0, len(v.text))
	end := clamp(r.End, start, len(v.text))
	return v.text[start:end]
}

// BufferSize returns the length of the text in bytes.
func (v *View) BufferSize() int {
	return len(v.text)
}

// LineContaining returns the range of the line holding offset, including
// its trailing newline if present.
func (v *View) LineContaining(offset int) Range {
	offset = clamp(offset, 0, len(v.text))
	start := strings.LastIndexByte(v.text[:offset], '\n') + 1
	end := len(v.text)
	if i := strings.IndexByte(v.text[offset:], '\n'); i >= 0 {
		end = offset + i + 1
	}
	return Range{Start: start, End: end}
}

// FilePath returns the path the view was opened from, if any.
func (v *View) FilePath() (string, bool) {
	return v.path, v.path != ""
}

// Text returns the full text.
func (v *View) Text() string {
	return v.text
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
