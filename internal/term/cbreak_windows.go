//go:build windows

package term

import "golang.org/x/term"

// EnableCbreak puts the console into raw input mode. Windows consoles
// keep output processing separate from input modes, so rendering is
// unaffected.
func EnableCbreak(fd int) (restore func() error, err error) {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, old)
	}, nil
}
