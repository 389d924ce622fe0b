package buffer

import (
	"fmt"
	"strconv"
	"strings"
)

// Range represents a byte range in the buffer.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start int // Inclusive start position
	End   int // Exclusive end position
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (Start <= End).
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ParseRange parses "start:end" into a Range.
func ParseRange(s string) (Range, error) {
	startStr, endStr, ok := strings.Cut(s, ":")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q: want start:end", ErrRangeInvalid, s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrRangeInvalid, s, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrRangeInvalid, s, err)
	}
	r := NewRange(start, end)
	if !r.IsValid() {
		return Range{}, fmt.Errorf("%w: %s", ErrRangeInvalid, r)
	}
	return r, nil
}
