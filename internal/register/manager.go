package register

import (
	"strings"
	"sync"
	"unicode"

	"go.uber.org/zap"
)

// Manager applies register read and write rules on top of a Store.
//
// Every exported method runs to completion under a single lock, so a
// concurrent Snapshot never observes a half-applied operation.
type Manager struct {
	mu sync.Mutex

	store     *Store
	clipboard Clipboard
	history   ClipboardHistory
	settings  Settings
	persister Persister
	logger    *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClipboard sets the system clipboard used by * and +.
func WithClipboard(c Clipboard) Option {
	return func(m *Manager) {
		m.clipboard = c
	}
}

// WithHistory sets the clipboard history that records clipboard writes.
func WithHistory(h ClipboardHistory) Option {
	return func(m *Manager) {
		m.history = h
	}
}

// WithSettings sets the configuration source.
func WithSettings(s Settings) Option {
	return func(m *Manager) {
		m.settings = s
	}
}

// WithPersister sets the session persister notified after mutations.
func WithPersister(p Persister) Option {
	return func(m *Manager) {
		m.persister = p
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a manager over store. A nil store starts empty.
func NewManager(store *Store, opts ...Option) *Manager {
	if store == nil {
		store = NewStore()
	}
	m := &Manager{
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot returns the persisted layout of the current content.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Snapshot()
}

// Get returns the content of the named register, or nil if it has none.
// Reading the unnamed register consumes a pending expression value.
func (m *Manager) Get(ctx Context, name string) ([]string, error) {
	r, err := ParseName(name)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(ctx, r, true), nil
}

// IsLinewise reports whether the named register holds linewise content.
func (m *Manager) IsLinewise(name string) (bool, error) {
	r, err := ParseName(name)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isLinewise(r), nil
}

// Set writes values into the named register. An uppercase named register
// appends to its lowercase counterpart. Writes to the black hole and to
// read-only registers are silently ignored.
func (m *Manager) Set(name string, values []string, linewise bool) error {
	r, err := ParseName(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatchSet(r, values, linewise)
	m.requestSave()
	return nil
}

// SetAny is Set for loosely typed values, such as those produced by
// plugins or the expression evaluator.
func (m *Manager) SetAny(name string, values any, linewise bool) error {
	strs, err := CoerceValues(values)
	if err != nil {
		return err
	}
	return m.Set(name, strs, linewise)
}

// AlternateFile returns the alternate file name, if one is recorded.
func (m *Manager) AlternateFile() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.store.lookup(Alternate)
	if !ok || len(e.Values) == 0 || e.Values[0] == "" {
		return "", false
	}
	return e.Values[0], true
}

// SetAlternateFile records the alternate file name.
func (m *Manager) SetAlternateFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store.setRaw(Alternate, []string{path}, false)
	m.requestSave()
}

// SetExpression stores a one-shot value returned by the next read of the
// unnamed register.
func (m *Manager) SetExpression(values []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store.setRaw(Expression, values, false)
	m.requestSave()
}

// Listing is one non-empty register as shown by List.
type Listing struct {
	// Type is 'l' for linewise content, 'c' for characterwise.
	Type   byte
	Name   rune
	Values []string
}

// List returns every register in the namespace that has content.
// Listing does not consume a pending expression value.
func (m *Manager) List(ctx Context) []Listing {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Listing
	for _, r := range listOrder {
		values := m.get(ctx, r, false)
		if len(values) == 0 {
			continue
		}
		typ := byte('c')
		if m.isLinewise(r) {
			typ = 'l'
		}
		out = append(out, Listing{Type: typ, Name: r, Values: values})
	}
	return out
}

// get resolves a read in precedence order. consume controls whether a
// pending expression value is cleared when returned for the unnamed register.
func (m *Manager) get(ctx Context, name rune, consume bool) []string {
	switch {
	case name == FileName:
		return currentFileName(ctx)
	case IsClipboard(name):
		return m.readClipboard()
	case name != Unnamed && name != SmallDelete && name != Alternate && IsSpecial(name):
		return nil
	}

	if name == Unnamed {
		if m.useSysClipboard() {
			return m.readClipboard()
		}
		if expr, _ := m.store.lookup(Expression); len(expr.Values) > 0 {
			if consume {
				m.store.setRaw(Expression, []string{}, false)
			}
			return expr.Values
		}
	}

	e, ok := m.store.lookup(name)
	if !ok {
		return nil
	}
	return e.Values
}

func (m *Manager) isLinewise(name rune) bool {
	if IsClipboard(name) {
		return false
	}
	return m.store.isLinewise(name)
}

// dispatchSet routes a caller-named write to append or overwrite.
func (m *Manager) dispatchSet(name rune, values []string, linewise bool) {
	if IsAppend(name) {
		m.appendTo(name, values, linewise)
		return
	}
	m.set(name, values, linewise)
}

// set writes a register and mirrors the write into the unnamed register
// and, when configured, the system clipboard.
func (m *Manager) set(name rune, values []string, linewise bool) {
	if name == BlackHole || !IsWritable(name) {
		return
	}
	if values == nil {
		values = []string{}
	}

	m.store.setRaw(name, values, linewise)

	if name != Expression {
		m.store.setRaw(Unnamed, values, linewise)
		m.maybeSyncClipboard(name, values)
	}
}

// appendTo concatenates suffixes onto the existing fragments pairwise,
// padding the shorter side with empty strings.
func (m *Manager) appendTo(name rune, suffixes []string, linewise bool) {
	name = unicode.ToLower(name)
	existing, _ := m.store.lookup(name)

	n := max(len(existing.Values), len(suffixes))
	values := make([]string, n)
	for i := range values {
		var prefix, suffix string
		if i < len(existing.Values) {
			prefix = existing.Values[i]
		}
		if i < len(suffixes) {
			suffix = suffixes[i]
		}
		values[i] = prefix + suffix
	}

	m.set(name, values, linewise)
}

func (m *Manager) maybeSyncClipboard(name rune, values []string) {
	if !IsClipboard(name) && !m.useSysClipboard() {
		return
	}

	text := strings.Join(values, "\n")
	if m.clipboard != nil {
		if err := m.clipboard.Write(text); err != nil {
			m.logger.Warn("clipboard write failed", zap.String("register", string(name)), zap.Error(err))
		}
	}

	if m.history == nil {
		m.logger.Debug("clipboard history unavailable; skipping history update")
		return
	}
	if err := m.history.Push(text); err != nil {
		m.logger.Warn("clipboard history update failed", zap.Error(err))
	}
}

func (m *Manager) readClipboard() []string {
	if m.clipboard == nil {
		return nil
	}
	text, err := m.clipboard.Read()
	if err != nil {
		m.logger.Warn("clipboard read failed", zap.Error(err))
		return nil
	}
	return []string{text}
}

func (m *Manager) useSysClipboard() bool {
	return m.settings != nil && m.settings.Bool(SettingUseSysClipboard)
}

func (m *Manager) requestSave() {
	if m.persister != nil {
		m.persister.RequestSave()
	}
}

func currentFileName(ctx Context) []string {
	fn, ok := ctx.(FileNamer)
	if !ok {
		return nil
	}
	path, ok := fn.FilePath()
	if !ok || path == "" {
		return nil
	}
	return []string{path}
}
