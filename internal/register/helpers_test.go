package register

import (
	"errors"
	"testing"

	"github.com/dshills/regstore/internal/buffer"
	"github.com/dshills/regstore/internal/clipboard"
)

// Helper to create a view with the given selections
func newView(text string, sels ...buffer.Range) *buffer.View {
	v := buffer.NewView(text)
	v.SetSelections(sels...)
	return v
}

// Helper to select the whole text
func wholeView(text string) *buffer.View {
	return newView(text, buffer.NewRange(0, len(text)))
}

type settingsMap map[string]bool

func (s settingsMap) Bool(key string) bool { return s[key] }

type countingPersister struct{ saves int }

func (p *countingPersister) RequestSave() { p.saves++ }

type failingHistory struct{}

func (failingHistory) Push(string) error { return errors.New("history broken") }

// bareContext is an editor context with no file capability.
type bareContext struct{ text string }

func (c bareContext) Selections() []buffer.Range { return []buffer.Range{buffer.NewRange(0, len(c.text))} }

func (c bareContext) Substring(r buffer.Range) string { return c.text[r.Start:r.End] }

func (c bareContext) BufferSize() int { return len(c.text) }

func (c bareContext) LineContaining(int) buffer.Range { return buffer.NewRange(0, len(c.text)) }

func newTestManager(opts ...Option) (*Manager, *clipboard.Memory) {
	clip := clipboard.NewMemory("")
	opts = append([]Option{WithClipboard(clip)}, opts...)
	return NewManager(NewStore(), opts...), clip
}

func mustGet(t *testing.T, m *Manager, ctx Context, name string) []string {
	t.Helper()
	values, err := m.Get(ctx, name)
	if err != nil {
		t.Fatalf("Get(%q): unexpected error: %v", name, err)
	}
	return values
}

func mustSet(t *testing.T, m *Manager, name string, values []string, linewise bool) {
	t.Helper()
	if err := m.Set(name, values, linewise); err != nil {
		t.Fatalf("Set(%q): unexpected error: %v", name, err)
	}
}
