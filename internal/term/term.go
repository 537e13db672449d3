// Package term provides the terminal primitives used by watch mode:
// width queries, screen clearing, styled output helpers and the cbreak
// input mode that delivers keystrokes byte by byte.
package term

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the current terminal width of f, or 80 if it cannot be
// determined.
func Width(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// ClearScreen moves the cursor home and erases the screen including the
// scrollback buffer.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[H\x1b[2J\x1b[3J")
	return err
}
