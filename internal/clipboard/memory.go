package clipboard

import "sync"

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.RWMutex
	text string
}

// NewMemory creates a memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// Read returns the clipboard content.
func (m *Memory) Read() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text, nil
}

// Write sets the clipboard content.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
