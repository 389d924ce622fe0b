package register

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Register names with special meaning.
const (
	Unnamed       = '"'
	LastYank      = '0'
	LastDelete    = '1'
	SmallDelete   = '-'
	LastCommand   = ':'
	LastInserted  = '.'
	FileName      = '%'
	Alternate     = '#'
	Expression    = '='
	ClipboardStar = '*'
	ClipboardPlus = '+'
	Drop          = '~'
	BlackHole     = '_'
	Search        = '/'
)

// Kind categorizes registers by their behavior.
type Kind uint8

const (
	// KindUnknown is any rune outside the register namespace.
	KindUnknown Kind = iota

	// KindUnnamed is the default register (").
	KindUnnamed

	// KindLastYank is the yank register (0).
	KindLastYank

	// KindNumbered is a rotating delete register (1-9).
	KindNumbered

	// KindSmallDelete is the small delete register (-).
	KindSmallDelete

	// KindNamed is a named register (a-z, A-Z).
	KindNamed

	// KindLastCommand is the last command register (:).
	KindLastCommand

	// KindLastInserted is the last inserted text register (.).
	KindLastInserted

	// KindFileName is the current file name register (%).
	KindFileName

	// KindAlternate is the alternate file name register (#).
	KindAlternate

	// KindExpression is the expression register (=).
	KindExpression

	// KindClipboard is a system clipboard register (* or +).
	KindClipboard

	// KindDrop is the drop register (~).
	KindDrop

	// KindBlackHole is the black hole register (_).
	KindBlackHole

	// KindSearch is the last search pattern register (/).
	KindSearch
)

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindUnnamed:      "unnamed",
	KindLastYank:     "last-yank",
	KindNumbered:     "numbered",
	KindSmallDelete:  "small-delete",
	KindNamed:        "named",
	KindLastCommand:  "last-command",
	KindLastInserted: "last-inserted",
	KindFileName:     "file-name",
	KindAlternate:    "alternate",
	KindExpression:   "expression",
	KindClipboard:    "clipboard",
	KindDrop:         "drop",
	KindBlackHole:    "black-hole",
	KindSearch:       "search",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// class is the fixed behavior of a register kind.
type class struct {
	writable bool
	readOnly bool
	special  bool
}

var classes = map[Kind]class{
	KindUnnamed:      {writable: true, special: true},
	KindLastYank:     {writable: true},
	KindNumbered:     {writable: true},
	KindSmallDelete:  {writable: true, special: true},
	KindNamed:        {writable: true},
	KindLastCommand:  {readOnly: true, special: true},
	KindLastInserted: {readOnly: true, special: true},
	KindFileName:     {readOnly: true, special: true},
	KindAlternate:    {readOnly: true, special: true},
	KindExpression:   {writable: true},
	KindClipboard:    {writable: true, special: true},
	KindDrop:         {readOnly: true, special: true},
	KindBlackHole:    {special: true},
	KindSearch:       {special: true},
}

var symbolKinds = map[rune]Kind{
	Unnamed:       KindUnnamed,
	LastYank:      KindLastYank,
	SmallDelete:   KindSmallDelete,
	LastCommand:   KindLastCommand,
	LastInserted:  KindLastInserted,
	FileName:      KindFileName,
	Alternate:     KindAlternate,
	Expression:    KindExpression,
	ClipboardStar: KindClipboard,
	ClipboardPlus: KindClipboard,
	Drop:          KindDrop,
	BlackHole:     KindBlackHole,
	Search:        KindSearch,
}

// Classify returns the kind of the register named r.
// Named registers classify the same in either case.
func Classify(r rune) Kind {
	switch {
	case r >= '1' && r <= '9':
		return KindNumbered
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return KindNamed
	}
	if k, ok := symbolKinds[r]; ok {
		return k
	}
	return KindUnknown
}

// IsWritable reports whether generic writes to r are accepted.
func IsWritable(r rune) bool {
	return classes[Classify(r)].writable
}

// IsReadOnly reports whether r can be read but never written generically.
func IsReadOnly(r rune) bool {
	return classes[Classify(r)].readOnly
}

// IsSpecial reports whether r has bespoke read or write handling.
func IsSpecial(r rune) bool {
	return classes[Classify(r)].special
}

// IsClipboard reports whether r mirrors the system clipboard.
func IsClipboard(r rune) bool {
	return Classify(r) == KindClipboard
}

// IsSelectionDrop reports whether r is one of the selection and drop registers.
func IsSelectionDrop(r rune) bool {
	k := Classify(r)
	return k == KindClipboard || k == KindDrop
}

// IsNumbered reports whether r is 0-9.
func IsNumbered(r rune) bool {
	k := Classify(r)
	return k == KindNumbered || k == KindLastYank
}

// IsNamed reports whether r is a-z or A-Z.
func IsNamed(r rune) bool {
	return Classify(r) == KindNamed
}

// IsAppend reports whether writing to r appends rather than overwrites.
func IsAppend(r rune) bool {
	return IsNamed(r) && unicode.IsUpper(r)
}

// listOrder is the full fixed namespace in listing order:
// special, then numbered, then named.
const listOrder = `#_+*~%:./-"` + "0123456789" + "abcdefghijklmnopqrstuvwxyz"

// ParseName validates a register name and returns its rune.
func ParseName(name string) (rune, error) {
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRegisterName, name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}

// storageKey folds a name to the key it is stored under.
func storageKey(r rune) rune {
	return unicode.ToLower(r)
}
