package register

// NumberedSlots is the number of rotating delete registers (1-9).
const NumberedSlots = 9

// Ring is the bounded delete history behind registers 1-9.
// Push is its only rotating mutation: the newest entry becomes slot 0
// (register 1) and the entry in the last slot is evicted.
type Ring struct {
	slots [NumberedSlots]Entry
	head  int
}

// Push inserts e at the front, evicting the oldest entry.
func (r *Ring) Push(e Entry) {
	r.head = (r.head + NumberedSlots - 1) % NumberedSlots
	r.slots[r.head] = e
}

// At returns the entry at position i, where 0 is register 1.
func (r *Ring) At(i int) Entry {
	return r.slots[(r.head+i)%NumberedSlots]
}

// Set overwrites the entry at position i without rotating.
func (r *Ring) Set(i int, e Entry) {
	r.slots[(r.head+i)%NumberedSlots] = e
}

// Entries returns the slots newest first.
func (r *Ring) Entries() [NumberedSlots]Entry {
	var out [NumberedSlots]Entry
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}
