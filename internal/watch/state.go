package watch

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/drillhq/drill/internal/app"
	"github.com/drillhq/drill/internal/exercise"
	"github.com/drillhq/drill/internal/i18n"
	"github.com/drillhq/drill/internal/term"
)

// Tracker is the progress bookkeeping the coordinator drives.
// *app.State implements it; tests substitute a fake.
type Tracker interface {
	CurrentExercise() *exercise.Exercise
	CurrentExerciseInd() int
	SetCurrentExerciseInd(ind int) error
	SetPending(ind int) error
	RunCurrentExercise(ctx context.Context, out *bytes.Buffer) (bool, error)
	DoneCurrentExercise(w io.Writer) (app.ExercisesProgress, error)
	CheckAllExercises(ctx context.Context, w io.Writer) (firstFail int, found bool, err error)
	CurrentSolutionPath() (path string, ok bool, err error)
	ResetCurrentExercise() error
	NDone() int
	Total() int
	RenderFinalMessage(w io.Writer) error
}

// WatchState is the watch-mode coordinator. It owns the done status,
// the reused output capture buffer and the render state, and it is the
// only place that mutates them. All methods run on the watch loop
// goroutine.
type WatchState struct {
	tracker    Tracker
	out        io.Writer
	stdin      io.Reader // read only inside the reset confirmation
	output     bytes.Buffer
	showHint   bool
	doneStatus DoneStatus
	manualRun  bool
	termWidth  int
	pause      *InputPause
	quit       <-chan struct{}
}

// NewWatchState builds the coordinator for one watch session.
func NewWatchState(tracker Tracker, out io.Writer, stdin io.Reader, manualRun bool, termWidth int, pause *InputPause, quit <-chan struct{}) *WatchState {
	s := &WatchState{
		tracker:    tracker,
		out:        out,
		stdin:      stdin,
		doneStatus: StatusPending{},
		manualRun:  manualRun,
		termWidth:  termWidth,
		pause:      pause,
		quit:       quit,
	}
	s.output.Grow(exercise.OutputCapacity)
	return s
}

// RunCurrentExercise runs the displayed exercise and recomputes the
// done status from the outcome. Input is ignored for the duration. The
// screen is always redrawn afterwards, pass or fail.
func (s *WatchState) RunCurrentExercise(ctx context.Context) error {
	guard := s.pause.Scoped()
	defer guard.Release()

	s.showHint = false

	if _, err := fmt.Fprintf(s.out, "\n%s\n",
		i18n.Tf("watch.checking", "Checking the exercise `%s`. Please wait…", s.tracker.CurrentExercise().Name)); err != nil {
		return err
	}

	success, err := s.tracker.RunCurrentExercise(ctx, &s.output)
	if err != nil {
		return err
	}
	s.output.WriteByte('\n')

	if success {
		solutionPath, ok, err := s.tracker.CurrentSolutionPath()
		if err != nil {
			return err
		}
		if ok {
			s.doneStatus = StatusDoneWithSolution{Path: solutionPath}
		} else {
			s.doneStatus = StatusDoneWithoutSolution{}
		}
	} else {
		if err := s.tracker.SetPending(s.tracker.CurrentExerciseInd()); err != nil {
			return err
		}
		s.doneStatus = StatusPending{}
	}

	return s.Render()
}

// ResetExercise asks for confirmation and restores the exercise file to
// its template. The terminal reader self-paused before this runs, so
// reading stdin here races with nothing; the Resume at the end is the
// one matching resume for that pause.
func (s *WatchState) ResetExercise(ctx context.Context) error {
	if err := term.ClearScreen(s.out); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.out, "%s%s\n%s",
		i18n.T("watch.reset_undo", "Resetting will undo all your changes to the file "),
		s.tracker.CurrentExercise().Path(),
		i18n.T("watch.reset_confirm", "Reset (y/n)? ")); err != nil {
		return err
	}

	var answer [1]byte
	for {
		if _, err := io.ReadFull(s.stdin, answer[:]); err != nil {
			return fmt.Errorf("read the user's input: %w", err)
		}

		switch answer[0] {
		case 'y', 'Y':
			if err := s.tracker.ResetCurrentExercise(); err != nil {
				return err
			}
			// The file watcher would rerun the exercise otherwise.
			if s.manualRun {
				if err := s.RunCurrentExercise(ctx); err != nil {
					return err
				}
			}
		case 'n', 'N':
			if err := s.Render(); err != nil {
				return err
			}
		default:
			continue
		}

		break
	}

	return s.pause.Resume(s.quit)
}

// HandleFileChange reruns the displayed exercise when its file changed;
// edits to any other exercise are ignored.
func (s *WatchState) HandleFileChange(ctx context.Context, exerciseInd int) error {
	if s.tracker.CurrentExerciseInd() != exerciseInd {
		return nil
	}
	return s.RunCurrentExercise(ctx)
}

// NextExercise moves on to the next exercise if the current one is done.
func (s *WatchState) NextExercise() (app.ExercisesProgress, error) {
	if isPending(s.doneStatus) {
		return app.ProgressCurrentPending, nil
	}
	return s.tracker.DoneCurrentExercise(s.out)
}

// ShowHint reveals the hint. Hints stay revealed for the rest of the
// exercise; a second request changes nothing and does not redraw.
func (s *WatchState) ShowHint() error {
	if s.showHint {
		return nil
	}
	s.showHint = true
	return s.Render()
}

// CheckAllExercises verifies the whole set. On a failure the displayed
// exercise switches to the first failing one, but only if the current
// one was already done — a pending exercise in progress is never
// abandoned. It still reports NewPending either way to force a refresh.
func (s *WatchState) CheckAllExercises(ctx context.Context) (app.ExercisesProgress, error) {
	if _, err := io.WriteString(s.out, "\n"); err != nil {
		return app.ProgressCurrentPending, err
	}

	firstFail, found, err := s.tracker.CheckAllExercises(ctx, s.out)
	if err != nil {
		return app.ProgressCurrentPending, err
	}

	if found {
		if s.tracker.CurrentExercise().Done {
			if err := s.tracker.SetCurrentExerciseInd(firstFail); err != nil {
				return app.ProgressCurrentPending, err
			}
		}
		return app.ProgressNewPending, nil
	}

	if err := s.tracker.RenderFinalMessage(s.out); err != nil {
		return app.ProgressCurrentPending, err
	}
	return app.ProgressAllDone, nil
}

// UpdateTermWidth records a new terminal width and redraws. Duplicate
// notifications are dropped to avoid flicker.
func (s *WatchState) UpdateTermWidth(width int) error {
	if s.termWidth == width {
		return nil
	}
	s.termWidth = width
	return s.Render()
}

// Render paints the whole screen from the current state in one pass.
// It accumulates no drawing state between calls.
func (s *WatchState) Render() error {
	bw := bufio.NewWriter(s.out)

	// Prevent having the first line shifted if clearing wasn't successful.
	bw.WriteString("\n")
	term.ClearScreen(bw)

	bw.Write(s.output.Bytes())

	styles := term.GetStyles()

	if s.showHint {
		bw.WriteString(styles.HintTitle.Render(i18n.T("watch.hint_title", "Hint")))
		bw.WriteString("\n")
		bw.WriteString(s.tracker.CurrentExercise().Hint)
		bw.WriteString("\n\n")
	}

	if !isPending(s.doneStatus) {
		bw.WriteString(styles.DoneBanner.Render(i18n.T("watch.done_banner", "Exercise done ✓")))
		bw.WriteString("\n")

		if done, ok := s.doneStatus.(StatusDoneWithSolution); ok {
			term.SolutionLinkLine(bw, done.Path)
		}

		bw.WriteString(i18n.T("watch.next_instruction",
			"When done experimenting, enter `n` to move on to the next exercise"))
		bw.WriteString("\n\n")
	}

	if err := term.ProgressBar(bw, s.tracker.NDone(), s.tracker.Total(), s.termWidth); err != nil {
		return err
	}

	bw.WriteString("\n")
	bw.WriteString(i18n.T("watch.current_exercise", "Current exercise: "))
	term.FileLink(bw, s.tracker.CurrentExercise().Path())
	bw.WriteString("\n\n")

	s.writePrompt(bw)

	return bw.Flush()
}

// writePrompt emits the action prompt. Which options appear depends on
// state; the styling is cosmetic.
func (s *WatchState) writePrompt(w *bufio.Writer) {
	styles := term.GetStyles()

	if !isPending(s.doneStatus) {
		w.WriteString(styles.Key.Render("n"))
		w.WriteString(":")
		w.WriteString(styles.Option.Render("next"))
		w.WriteString(" / ")
	}

	if s.manualRun {
		w.WriteString(styles.Key.Render("r"))
		w.WriteString(":run / ")
	}

	if !s.showHint {
		w.WriteString(styles.Key.Render("h"))
		w.WriteString(":hint / ")
	}

	w.WriteString(styles.Key.Render("l"))
	w.WriteString(":list / ")
	w.WriteString(styles.Key.Render("c"))
	w.WriteString(":check all / ")
	w.WriteString(styles.Key.Render("x"))
	w.WriteString(":reset / ")
	w.WriteString(styles.Key.Render("q"))
	w.WriteString(":quit ? ")
}
