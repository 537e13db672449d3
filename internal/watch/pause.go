package watch

import (
	"fmt"
	"sync/atomic"
)

// InputPause coordinates ownership of standard input between the
// coordinator and the terminal-event reader. It combines two
// mechanisms:
//
//   - A pause flag, bracketed by a scoped guard. While a guard is held
//     the reader discards every keystroke, so running an exercise
//     cannot be interrupted by queued input.
//   - A zero-capacity rendezvous channel for self-pauses. After
//     forwarding a command whose handling reads stdin on the
//     coordinator side (reset confirmation) or takes over the screen
//     (list mode), the reader parks on the channel until the
//     coordinator sends the one matching resume. The send itself
//     blocks until the reader is parked, so a resume can never be
//     dropped — only misCounted, which deadlocks. Every self-pause must
//     therefore be matched by exactly one Resume.
type InputPause struct {
	paused  atomic.Bool
	unpause chan struct{}
}

// NewInputPause creates the pause coordination for one watch session.
func NewInputPause() *InputPause {
	return &InputPause{unpause: make(chan struct{})}
}

// Scoped marks input paused and returns the releasing guard.
func (p *InputPause) Scoped() *PauseGuard {
	p.paused.Store(true)
	return &PauseGuard{p: p}
}

// Paused reports whether a guard is currently held.
func (p *InputPause) Paused() bool {
	return p.paused.Load()
}

// Resume delivers the matching resume for a self-paused reader. It
// blocks until the reader receives it. The quit channel bounds the
// wait: once the session is shutting down there is no reader left to
// resume, and blocking forever would hang the process.
func (p *InputPause) Resume(quit <-chan struct{}) error {
	select {
	case p.unpause <- struct{}{}:
		return nil
	case <-quit:
		return fmt.Errorf("terminal event reader is gone")
	}
}

// AwaitResume parks the reader until the coordinator resumes it.
// Returns false when the session is shutting down instead.
func (p *InputPause) AwaitResume(quit <-chan struct{}) bool {
	select {
	case <-p.unpause:
		return true
	case <-quit:
		return false
	}
}

// PauseGuard is the scoped handle for the pause flag. Release is
// idempotent: the flag is cleared exactly once per acquisition, on any
// exit path.
type PauseGuard struct {
	p        *InputPause
	released bool
}

// Release re-arms the input reader. Safe to call more than once.
func (g *PauseGuard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.p.paused.Store(false)
}
