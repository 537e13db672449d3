package watch

import (
	"io"

	"github.com/drillhq/drill/internal/applog"
)

// readTerminalEvents runs on its own goroutine for the whole watch
// session. It reads single bytes from the terminal (cbreak mode) and
// forwards them as typed input events. While the pause flag is held the
// bytes are discarded. After forwarding a reset or list command the
// reader self-pauses on the rendezvous channel because the coordinator
// takes over stdin (reset confirmation) or the screen (list mode); it
// resumes only when the coordinator sends the matching resume.
func readTerminalEvents(r io.Reader, events chan<- Event, pause *InputPause, quit <-chan struct{}, manualRun bool) {
	var buf [1]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			emit(events, TerminalErrEvent{Err: err}, quit)
			return
		}

		select {
		case <-quit:
			return
		default:
		}

		if pause.Paused() {
			continue
		}

		var action KeyAction
		switch buf[0] {
		case 'n':
			action = ActionNext
		case 'r':
			// Manual runs only exist when the file watcher is off.
			if !manualRun {
				continue
			}
			action = ActionRun
		case 'h':
			action = ActionHint
		case 'l':
			action = ActionList
		case 'c':
			action = ActionCheckAll
		case 'x':
			action = ActionReset
		case 'q', 0x03: // 0x03 is Ctrl+C in cbreak mode
			action = ActionQuit
		default:
			continue
		}

		if !emit(events, InputEvent{Action: action}, quit) {
			return
		}

		if action == ActionReset || action == ActionList {
			applog.Log.Debug("terminal reader self-paused", "action", action)
			if !pause.AwaitResume(quit) {
				return
			}
			applog.Log.Debug("terminal reader resumed")
		}
	}
}

// emit sends an event unless the session is shutting down.
func emit(events chan<- Event, ev Event, quit <-chan struct{}) bool {
	select {
	case events <- ev:
		return true
	case <-quit:
		return false
	}
}
