//go:build windows

package watch

import "os"

// notifyResize is a no-op on Windows: there is no SIGWINCH equivalent
// delivered to console programs, so the width recorded at startup is
// kept for the session.
func notifyResize(out *os.File, events chan<- Event, quit <-chan struct{}) (stop func()) {
	return func() {}
}
