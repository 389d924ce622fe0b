package register

import "go.uber.org/zap"

// Shape says whether captured text is linewise.
type Shape uint8

const (
	// Charwise captures text as-is.
	Charwise Shape = iota

	// Linewise captures whole lines, normalizing trailing newlines.
	Linewise

	// AutoLinewise is linewise only when the capture spans lines.
	AutoLinewise
)

type operation uint8

const (
	opYank operation = iota
	opDelete
	opChange
)

func (op operation) String() string {
	switch op {
	case opYank:
		return "yank"
	case opDelete:
		return "delete"
	case opChange:
		return "change"
	default:
		return "unknown"
	}
}

// Yank captures the selections of ctx into a register.
// An empty register name targets the unnamed register and register 0.
func (m *Manager) Yank(ctx Context, register string, shape Shape) error {
	return m.op(ctx, opYank, register, shape)
}

// Delete captures text about to be deleted. Without a named register,
// linewise or multiline text rotates into registers 1-9 and single-line
// text goes to the small delete register.
func (m *Manager) Delete(ctx Context, register string, shape Shape) error {
	return m.op(ctx, opDelete, register, shape)
}

// Change captures text about to be changed; it follows the Delete rules.
func (m *Manager) Change(ctx Context, register string, shape Shape) error {
	return m.op(ctx, opChange, register, shape)
}

func (m *Manager) op(ctx Context, op operation, register string, shape Shape) error {
	name := rune(Unnamed)
	if register != "" {
		r, err := ParseName(register)
		if err != nil {
			return err
		}
		name = r
	}

	if name == BlackHole {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	linewise := shape == Linewise
	fragments := Capture(ctx, false, linewise)

	multiline := isMultiline(fragments)
	if shape == AutoLinewise && multiline {
		linewise = true
	}

	m.logger.Debug("register operation",
		zap.Stringer("op", op),
		zap.String("register", string(name)),
		zap.Int("fragments", len(fragments)),
		zap.Bool("linewise", linewise),
		zap.Bool("multiline", multiline))

	if name != Unnamed {
		m.dispatchSet(name, fragments, linewise)
		m.requestSave()
		return nil
	}

	m.set(Unnamed, fragments, linewise)
	switch op {
	case opYank:
		m.set(LastYank, fragments, linewise)
	case opDelete, opChange:
		if linewise || multiline {
			m.store.pushNumbered(Entry{Values: fragments, Linewise: linewise})
		}
	}
	m.requestSave()

	if op != opYank && !multiline && onSingleLines(ctx) {
		m.set(SmallDelete, fragments, linewise)
		m.requestSave()
	}

	return nil
}
