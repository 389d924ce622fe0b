// Package buffer provides the text primitives the register subsystem reads
// from: half-open byte ranges and a string-backed View carrying an ordered
// selection set and an optional file path.
//
// The View is deliberately read-only. Registers decide what text goes where;
// mutating the buffer after a delete or change is the caller's job.
//
// Basic usage:
//
//	v := buffer.NewView("one\ntwo\n", buffer.WithPath("notes.txt"))
//	v.SetSelections(buffer.NewRange(0, 4))
//	text := v.Substring(v.Selections()[0]) // "one\n"
package buffer
