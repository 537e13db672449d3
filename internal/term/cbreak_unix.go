//go:build !windows

package term

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// EnableCbreak switches the terminal on fd into a cbreak-like mode:
// canonical line buffering and echo are off so single keystrokes are
// delivered immediately, but output processing stays untouched so "\n"
// still renders normally. The returned function restores the previous
// mode and must be called before the process exits.
func EnableCbreak(fd int) (restore func() error, err error) {
	old, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}

	raw := *old
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}

	return func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, old)
	}, nil
}
