// Package clipboard provides clipboard backends for the * and + registers
// and a bounded clipboard history.
//
// System talks to the host clipboard through github.com/atotto/clipboard,
// which shells out to pbcopy, xclip, xsel, wl-copy or the Windows API.
// Memory keeps the clipboard in-process for headless sessions and tests.
package clipboard
