package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/drillhq/drill/internal/app"
	"github.com/drillhq/drill/internal/applog"
	"github.com/drillhq/drill/internal/exercise"
	"github.com/drillhq/drill/internal/term"
)

// Exit reports why a watch session ended.
type Exit int

const (
	// ExitShutdown means quit, or all exercises are done.
	ExitShutdown Exit = iota
	// ExitList hands control over to the interactive list. The caller
	// starts a fresh session when the list closes.
	ExitList
)

// Options configures one watch session.
type Options struct {
	Tracker   Tracker
	Root      string
	Exercises []exercise.Exercise
	ManualRun bool
	Debounce  time.Duration
	Out       *os.File
	In        io.Reader
}

// Run drives one watch session until quit, completion or a switch to
// the list. The terminal must already be in cbreak mode.
func Run(ctx context.Context, opts Options) (Exit, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}

	events := make(chan Event, 8)
	quit := make(chan struct{})
	defer close(quit)

	pause := NewInputPause()
	go readTerminalEvents(opts.In, events, pause, quit, opts.ManualRun)

	stopResize := notifyResize(opts.Out, events, quit)
	defer stopResize()

	if !opts.ManualRun {
		watcher, err := StartFileWatcher(opts.Root, opts.Exercises, events, opts.Debounce)
		if err != nil {
			return ExitShutdown, fmt.Errorf("watch the exercise files: %w", err)
		}
		defer watcher.Stop()
	}

	state := NewWatchState(opts.Tracker, opts.Out, opts.In, opts.ManualRun, term.Width(opts.Out), pause, quit)

	if err := state.RunCurrentExercise(ctx); err != nil {
		return ExitShutdown, err
	}

	for {
		var ev Event
		select {
		case <-ctx.Done():
			return ExitShutdown, ctx.Err()
		case ev = <-events:
		}

		switch ev := ev.(type) {
		case InputEvent:
			exit, done, err := handleInput(ctx, state, ev.Action)
			if err != nil || done {
				return exit, err
			}
		case FileChangeEvent:
			if err := state.HandleFileChange(ctx, ev.ExerciseInd); err != nil {
				return ExitShutdown, err
			}
		case ResizeEvent:
			if err := state.UpdateTermWidth(ev.Width); err != nil {
				return ExitShutdown, err
			}
		case NotifyErrEvent:
			return ExitShutdown, fmt.Errorf("watch the exercise files: %w", ev.Err)
		case TerminalErrEvent:
			return ExitShutdown, fmt.Errorf("read terminal events: %w", ev.Err)
		}
	}
}

// handleInput dispatches one key action. done reports that the session
// is over and exit says how.
func handleInput(ctx context.Context, state *WatchState, action KeyAction) (exit Exit, done bool, err error) {
	switch action {
	case ActionRun:
		err = state.RunCurrentExercise(ctx)
	case ActionNext:
		var progress app.ExercisesProgress
		progress, err = state.NextExercise()
		if err != nil {
			break
		}
		switch progress {
		case app.ProgressNewPending:
			err = state.RunCurrentExercise(ctx)
		case app.ProgressAllDone:
			return ExitShutdown, true, nil
		}
	case ActionHint:
		err = state.ShowHint()
	case ActionList:
		// The terminal reader self-paused after this event; closing the
		// quit channel on return lets it exit.
		return ExitList, true, nil
	case ActionCheckAll:
		var progress app.ExercisesProgress
		progress, err = state.CheckAllExercises(ctx)
		if err != nil {
			break
		}
		switch progress {
		case app.ProgressNewPending:
			err = state.RunCurrentExercise(ctx)
		case app.ProgressAllDone:
			return ExitShutdown, true, nil
		}
	case ActionReset:
		err = state.ResetExercise(ctx)
	case ActionQuit:
		applog.Log.Debug("quit requested")
		return ExitShutdown, true, nil
	}
	return ExitShutdown, err != nil, err
}
