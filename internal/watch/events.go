// Package watch implements the interactive watch mode: a live terminal
// session that re-runs the current exercise when its file changes and
// responds to single-key commands.
package watch

// KeyAction is a single-key command read from the terminal.
type KeyAction int

const (
	ActionRun KeyAction = iota
	ActionNext
	ActionHint
	ActionList
	ActionCheckAll
	ActionReset
	ActionQuit
)

// Event is a typed notification delivered to the watch loop. The
// background readers produce events; the coordinator consumes them.
type Event interface {
	watchEvent()
}

// InputEvent is a keystroke command from the terminal-event reader.
type InputEvent struct {
	Action KeyAction
}

// FileChangeEvent reports that the file of the exercise at ExerciseInd
// was written.
type FileChangeEvent struct {
	ExerciseInd int
}

// ResizeEvent reports a new terminal width.
type ResizeEvent struct {
	Width int
}

// NotifyErrEvent reports a fatal file-watcher error.
type NotifyErrEvent struct {
	Err error
}

// TerminalErrEvent reports a fatal terminal input error.
type TerminalErrEvent struct {
	Err error
}

func (InputEvent) watchEvent()       {}
func (FileChangeEvent) watchEvent()  {}
func (ResizeEvent) watchEvent()      {}
func (NotifyErrEvent) watchEvent()   {}
func (TerminalErrEvent) watchEvent() {}
