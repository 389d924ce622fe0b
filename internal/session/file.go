package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dshills/regstore/internal/register"
)

// document is the on-disk layout of a session.
type document struct {
	ID        string           `yaml:"id"`
	SavedAt   time.Time        `yaml:"saved_at"`
	Registers map[string]entry `yaml:"registers,omitempty"`
	Numbered  []entry          `yaml:"numbered"`
	LastYank  entry            `yaml:"last_yank"`
}

type entry struct {
	Values   []string `yaml:"values"`
	Linewise bool     `yaml:"linewise"`
}

func toEntry(e register.Entry) entry {
	return entry{Values: e.Values, Linewise: e.Linewise}
}

func (e entry) register() register.Entry {
	return register.Entry{Values: e.Values, Linewise: e.Linewise}
}

// File reads and writes a session document.
type File struct {
	path string
	now  func() time.Time

	mu sync.Mutex
	id string
}

// NewFile creates a session file at path. Nothing is read until Load.
func NewFile(path string) *File {
	return &File{path: path, now: time.Now}
}

// Path returns the session file path.
func (f *File) Path() string {
	return f.path
}

// ID returns the session identifier. It is assigned by Load.
func (f *File) ID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

// Load reads the session. A missing file is an empty session.
func (f *File) Load() (register.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.setID(uuid.NewString())
			return register.NewStore().Snapshot(), nil
		}
		return register.Snapshot{}, fmt.Errorf("reading session %s: %w", f.path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return register.Snapshot{}, &FormatError{Path: f.path, Message: err.Error(), Err: err}
	}
	if len(doc.Numbered) > register.NumberedSlots {
		return register.Snapshot{}, &FormatError{
			Path:    f.path,
			Message: fmt.Sprintf("%d numbered registers, want at most %d", len(doc.Numbered), register.NumberedSlots),
		}
	}

	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}
	f.setID(id)

	snap := register.Snapshot{
		Registers: make(map[string]register.Entry, len(doc.Registers)),
		LastYank:  doc.LastYank.register(),
	}
	for name, e := range doc.Registers {
		snap.Registers[name] = e.register()
	}
	for i, e := range doc.Numbered {
		snap.Numbered[i] = e.register()
	}
	return snap, nil
}

// Save writes snap, replacing the file atomically.
func (f *File) Save(snap register.Snapshot) error {
	doc := document{
		ID:        f.ensureID(),
		SavedAt:   f.now().UTC(),
		Registers: make(map[string]entry, len(snap.Registers)),
		Numbered:  make([]entry, 0, register.NumberedSlots),
		LastYank:  toEntry(snap.LastYank),
	}
	for name, e := range snap.Registers {
		doc.Registers[name] = toEntry(e)
	}
	for _, e := range snap.Numbered {
		doc.Numbered = append(doc.Numbered, toEntry(e))
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp session file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing session: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing session %s: %w", f.path, err)
	}
	return nil
}

func (f *File) setID(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.id = id
}

func (f *File) ensureID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.id == "" {
		f.id = uuid.NewString()
	}
	return f.id
}
