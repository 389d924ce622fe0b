// Package expr evaluates expression register input.
//
// Expressions are Lua, run in a state with only the base, table, string
// and math libraries and without the loaders that reach the filesystem.
// The value of the expression becomes the register content:
//
//	"x"          -> ["x"]
//	1 + 2        -> ["3"]
//	{"a", "b"}   -> ["a", "b"]
//	nil          -> []
package expr
