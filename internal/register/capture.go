package register

import "strings"

// Capture returns one fragment per selection in ctx.
//
// With appendEOFNewline set and linewise unset, a newline is appended to
// the last fragment when the last selection reaches the end of the buffer
// and the fragment does not already end in one.
//
// With linewise set, every fragment gets a trailing newline unless it
// already ends in exactly one. A fragment ending in "\n\n" still gets one.
func Capture(ctx Context, appendEOFNewline, linewise bool) []string {
	sels := ctx.Selections()
	fragments := make([]string, len(sels))
	for i, r := range sels {
		fragments[i] = ctx.Substring(r)
	}

	if len(fragments) == 0 {
		return fragments
	}

	if appendEOFNewline && !linewise {
		last := len(fragments) - 1
		if !strings.HasSuffix(fragments[last], "\n") && sels[last].End >= ctx.BufferSize() {
			fragments[last] += "\n"
		}
	}

	if linewise {
		for i, f := range fragments {
			if !strings.HasSuffix(f, "\n") || strings.HasSuffix(f, "\n\n") {
				fragments[i] = f + "\n"
			}
		}
	}

	return fragments
}

// isMultiline reports whether any fragment spans a line break.
func isMultiline(fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(f, "\n") {
			return true
		}
	}
	return false
}

// onSingleLines reports whether every selection starts and ends on the
// same line.
func onSingleLines(ctx Context) bool {
	for _, r := range ctx.Selections() {
		last := r.End - 1
		if last < r.Start {
			last = r.Start
		}
		if ctx.LineContaining(r.Start) != ctx.LineContaining(last) {
			return false
		}
	}
	return true
}
