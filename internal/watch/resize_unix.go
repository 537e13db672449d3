//go:build !windows

package watch

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/drillhq/drill/internal/term"
)

// notifyResize forwards terminal width changes as resize events.
// Resize events bypass the pause flag: a redraw during an exercise run
// is harmless and the width must never go stale.
func notifyResize(out *os.File, events chan<- Event, quit <-chan struct{}) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-ch:
				if !emit(events, ResizeEvent{Width: term.Width(out)}, quit) {
					return
				}
			case <-quit:
				return
			}
		}
	}()

	return func() { signal.Stop(ch) }
}
