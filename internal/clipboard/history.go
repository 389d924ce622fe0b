package clipboard

import "sync"

// DefaultHistorySize is the number of entries a History keeps by default.
const DefaultHistorySize = 15

// History is a bounded, most-recent-first list of clipboard texts.
// Pushing the text already at the front is a no-op.
type History struct {
	mu      sync.Mutex
	entries []string
	limit   int
}

// NewHistory creates a history holding at most limit entries.
// A non-positive limit uses DefaultHistorySize.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &History{limit: limit}
}

// Push records text as the most recent entry.
func (h *History) Push(text string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) > 0 && h.entries[0] == text {
		return nil
	}

	h.entries = append(h.entries, "")
	copy(h.entries[1:], h.entries)
	h.entries[0] = text

	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
	return nil
}

// Entries returns the recorded texts, newest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Len returns the number of recorded texts.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// At returns the i-th most recent entry.
func (h *History) At(i int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}
