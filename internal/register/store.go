package register

// Entry is the content of one register.
type Entry struct {
	// Values holds one fragment per selection at capture time.
	Values []string

	// Linewise indicates the content represents whole lines.
	Linewise bool
}

func (e Entry) clone() Entry {
	if e.Values == nil {
		return e
	}
	return Entry{Values: append(make([]string, 0, len(e.Values)), e.Values...), Linewise: e.Linewise}
}

// Snapshot is the persisted layout of a Store.
type Snapshot struct {
	// Registers maps a one-character name to its entry.
	// Numbered names 0-9 are never present here.
	Registers map[string]Entry

	// Numbered holds registers 1-9, newest first.
	Numbered [NumberedSlots]Entry

	// LastYank holds register 0.
	LastYank Entry
}

// Store holds register content for one session.
// It performs no validation; Manager routes and filters every write.
// Store is not safe for concurrent use.
type Store struct {
	entries  map[rune]Entry
	numbered Ring
	lastYank Entry
}

// NewStore creates an empty store: register 0 and all nine numbered
// slots are empty and characterwise.
func NewStore() *Store {
	return &Store{entries: make(map[rune]Entry)}
}

// NewStoreFromSnapshot restores a store from its persisted layout.
// Entries with malformed names are skipped.
func NewStoreFromSnapshot(snap Snapshot) *Store {
	s := NewStore()
	for name, e := range snap.Registers {
		r, err := ParseName(name)
		if err != nil || IsNumbered(r) {
			continue
		}
		s.entries[storageKey(r)] = e.clone()
	}
	for i, e := range snap.Numbered {
		s.numbered.Set(i, e.clone())
	}
	s.lastYank = snap.LastYank.clone()
	return s
}

// lookup returns the stored entry for name.
func (s *Store) lookup(name rune) (Entry, bool) {
	switch Classify(name) {
	case KindLastYank:
		return s.lastYank.clone(), true
	case KindNumbered:
		return s.numbered.At(int(name-'1')).clone(), true
	}
	e, ok := s.entries[storageKey(name)]
	return e.clone(), ok
}

// setRaw writes an entry without any mirroring.
func (s *Store) setRaw(name rune, values []string, linewise bool) {
	e := Entry{Values: values, Linewise: linewise}.clone()
	switch Classify(name) {
	case KindLastYank:
		s.lastYank = e
	case KindNumbered:
		s.numbered.Set(int(name-'1'), e)
	default:
		s.entries[storageKey(name)] = e
	}
}

// pushNumbered rotates registers 1-9 and stores e in register 1.
func (s *Store) pushNumbered(e Entry) {
	s.numbered.Push(e.clone())
}

// isLinewise reports the stored flag for name, false if absent.
func (s *Store) isLinewise(name rune) bool {
	e, _ := s.lookup(name)
	return e.Linewise
}

// Snapshot returns a deep copy of the store in its persisted layout.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Registers: make(map[string]Entry, len(s.entries)),
		LastYank:  s.lastYank.clone(),
	}
	for r, e := range s.entries {
		snap.Registers[string(r)] = e.clone()
	}
	for i, e := range s.numbered.Entries() {
		snap.Numbered[i] = e.clone()
	}
	return snap
}
