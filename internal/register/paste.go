package register

import (
	"fmt"
	"strings"
)

// PasteMode is the editor mode a paste is requested from.
type PasteMode uint8

const (
	ModeNormal PasteMode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeVisualBlock
)

// IsVisual reports whether the mode has an active selection to replace.
func (pm PasteMode) IsVisual() bool {
	return pm == ModeVisual || pm == ModeVisualLine || pm == ModeVisualBlock
}

// String returns the mode name.
func (pm PasteMode) String() string {
	switch pm {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	case ModeVisualLine:
		return "visual-line"
	case ModeVisualBlock:
		return "visual-block"
	default:
		return "unknown"
	}
}

// ParsePasteMode returns the mode named by s, as printed by String.
func ParsePasteMode(s string) (PasteMode, error) {
	for pm := ModeNormal; pm <= ModeVisualBlock; pm++ {
		if pm.String() == s {
			return pm, nil
		}
	}
	return ModeNormal, fmt.Errorf("%w: %q", ErrInvalidPasteMode, s)
}

// ResolveForPaste returns the fragments to insert for a paste from the
// named register and whether they are linewise. An empty name is the
// unnamed register.
//
// In a visual mode the selected text is captured into the unnamed register
// first, so the text being replaced can be pasted afterwards. This happens
// only if the requested register has content.
func (m *Manager) ResolveForPaste(ctx Context, register string, mode PasteMode) ([]string, bool, error) {
	name := rune(Unnamed)
	if register != "" {
		r, err := ParseName(register)
		if err != nil {
			return nil, false, err
		}
		name = r
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	values := m.get(ctx, name, true)
	linewise := m.isLinewise(name)

	if len(values) == 0 {
		return []string{}, linewise, nil
	}

	if mode.IsVisual() {
		lineMode := mode == ModeVisualLine
		if current := Capture(ctx, false, lineMode); len(current) > 0 {
			m.set(Unnamed, current, lineMode)
		}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		switch mode {
		case ModeVisual:
			if linewise && v != "" && !strings.HasPrefix(v, "\n") {
				v = "\n" + v
			}
		case ModeVisualLine:
			// Characterwise content needs a newline for the line being replaced.
			if !linewise {
				v += "\n"
			}
		}
		out = append(out, v)
	}

	return out, linewise, nil
}
