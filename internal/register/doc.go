// Package register implements Vim-compatible registers: named slots holding
// captured text fragments, each tagged characterwise or linewise.
//
// Register content is stored as a list of fragments, one per selection at
// capture time, so multi-cursor yanks paste back one fragment per cursor.
//
// # Register Namespace
//
//	"        unnamed, mirrors almost every write
//	0        most recent yank
//	1-9      delete history, rotated on linewise or multiline delete/change
//	-        small delete (single line, no register named)
//	a-z      named; A-Z appends to the lowercase register
//	: . %    read-only (last command, last insert, current file name)
//	#        alternate file name
//	=        expression, consumed by the next unnamed read
//	* +      system clipboard, always read live
//	~        drop register (read-only)
//	_        black hole, discards writes
//	/        last search pattern
//
// # Usage
//
//	store := register.NewStore()
//	m := register.NewManager(store,
//	    register.WithClipboard(clipboard.NewSystem()),
//	    register.WithPersister(saver),
//	)
//	_ = m.Yank(view, "", register.Charwise)
//	values, linewise, _ := m.ResolveForPaste(view, `"`, register.ModeNormal)
//
// Writes to read-only names and to the black hole register are silently
// ignored, as in Vim.
package register
