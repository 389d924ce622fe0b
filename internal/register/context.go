package register

import "github.com/dshills/regstore/internal/buffer"

// Setting keys read through Settings.
const (
	// SettingUseSysClipboard makes the unnamed register read from and
	// write through to the system clipboard.
	SettingUseSysClipboard = "use_sys_clipboard"
)

// Context is the editor view registers capture text from.
type Context interface {
	// Selections returns the current selections in order.
	Selections() []buffer.Range

	// Substring returns the text covered by r.
	Substring(r buffer.Range) string

	// BufferSize returns the buffer length in bytes.
	BufferSize() int

	// LineContaining returns the range of the line holding offset.
	LineContaining(offset int) buffer.Range
}

// FileNamer is implemented by contexts backed by a file.
// Contexts without it have no current file name register.
type FileNamer interface {
	FilePath() (string, bool)
}

// Clipboard abstracts system clipboard access.
type Clipboard interface {
	// Read returns the current clipboard content.
	Read() (string, error)

	// Write sets the clipboard content.
	Write(text string) error
}

// ClipboardHistory records text pushed to the clipboard.
type ClipboardHistory interface {
	Push(text string) error
}

// Settings provides boolean configuration lookups.
type Settings interface {
	Bool(key string) bool
}

// Persister schedules a save of the session.
// RequestSave must not block and may batch requests.
type Persister interface {
	RequestSave()
}
