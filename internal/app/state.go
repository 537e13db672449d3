// Package app owns the exercise progress bookkeeping: which exercise is
// current, which are done, and the state file that persists both.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/drillhq/drill/internal/embedded"
	"github.com/drillhq/drill/internal/exercise"
)

// ExercisesProgress is the overall progress signal returned by
// operations that may advance past the current exercise.
type ExercisesProgress int

const (
	// ProgressCurrentPending means the current exercise is not done yet.
	ProgressCurrentPending ExercisesProgress = iota
	// ProgressNewPending means a new pending exercise is now current.
	ProgressNewPending
	// ProgressAllDone means every exercise is done.
	ProgressAllDone
)

// State tracks the exercise set and the learner's progress through it.
type State struct {
	root       string
	exercises  []exercise.Exercise
	currentInd int
	welcome    string
	final      string
	runner     exercise.CmdRunner
}

// Load builds the State for the workspace at root, reading info.toml
// and the persisted state file. Every exercise file named by the
// manifest must exist.
func Load(root string, runner exercise.CmdRunner) (*State, error) {
	info, err := exercise.LoadInfo(filepath.Join(root, exercise.InfoFile))
	if err != nil {
		return nil, err
	}

	s, err := New(root, info, runner)
	if err != nil {
		return nil, err
	}
	if err := s.restoreMissingFiles(); err != nil {
		return nil, err
	}
	return s, nil
}

// restoreMissingFiles materializes deleted exercise files from their
// embedded templates. A missing file with no template is an error.
func (s *State) restoreMissingFiles() error {
	for i := range s.exercises {
		ex := &s.exercises[i]
		full := filepath.Join(s.root, ex.Path())
		if _, err := os.Stat(full); err == nil {
			continue
		}

		src, ok := embedded.ExerciseSource(ex.Dir, ex.Name)
		if !ok {
			return fmt.Errorf("exercise file %s is missing and has no template", ex.Path())
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return fmt.Errorf("restore %s: %w", ex.Path(), err)
		}
		if err := os.WriteFile(full, src, 0644); err != nil {
			return fmt.Errorf("restore %s: %w", ex.Path(), err)
		}
	}
	return nil
}

// New builds the State from an already-parsed manifest.
func New(root string, info *exercise.Info, runner exercise.CmdRunner) (*State, error) {
	s := &State{
		root:      root,
		exercises: info.Build(),
		welcome:   info.WelcomeMessage,
		final:     info.FinalMessage,
		runner:    runner,
	}
	if err := s.loadStateFile(); err != nil {
		return nil, err
	}
	return s, nil
}

// Exercises returns the full exercise set.
func (s *State) Exercises() []exercise.Exercise {
	return s.exercises
}

// Total returns the number of exercises.
func (s *State) Total() int {
	return len(s.exercises)
}

// NDone returns the number of completed exercises.
func (s *State) NDone() int {
	n := 0
	for i := range s.exercises {
		if s.exercises[i].Done {
			n++
		}
	}
	return n
}

// CurrentExercise returns the currently selected exercise.
func (s *State) CurrentExercise() *exercise.Exercise {
	return &s.exercises[s.currentInd]
}

// CurrentExerciseInd returns the index of the current exercise.
func (s *State) CurrentExerciseInd() int {
	return s.currentInd
}

// SetCurrentExerciseInd switches the current exercise and persists the
// change.
func (s *State) SetCurrentExerciseInd(ind int) error {
	if ind < 0 || ind >= len(s.exercises) {
		return fmt.Errorf("exercise index %d out of range", ind)
	}
	s.currentInd = ind
	return s.saveStateFile()
}

// ExerciseInd looks up an exercise index by name.
func (s *State) ExerciseInd(name string) (int, error) {
	for i := range s.exercises {
		if s.exercises[i].Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no exercise named %q", name)
}

// SetPending clears the done flag of the exercise at ind and persists.
func (s *State) SetPending(ind int) error {
	if ind < 0 || ind >= len(s.exercises) {
		return fmt.Errorf("exercise index %d out of range", ind)
	}
	s.exercises[ind].Done = false
	return s.saveStateFile()
}

// MarkDone sets the done flag of the exercise at ind and persists.
func (s *State) MarkDone(ind int) error {
	if ind < 0 || ind >= len(s.exercises) {
		return fmt.Errorf("exercise index %d out of range", ind)
	}
	s.exercises[ind].Done = true
	return s.saveStateFile()
}

// RunCurrentExercise runs the current exercise, capturing combined
// output into out. A failing exercise is success=false, not an error.
func (s *State) RunCurrentExercise(ctx context.Context, out *bytes.Buffer) (bool, error) {
	return s.CurrentExercise().Run(ctx, out, s.runner)
}

// RunExercise runs the exercise at ind.
func (s *State) RunExercise(ctx context.Context, ind int, out *bytes.Buffer) (bool, error) {
	if ind < 0 || ind >= len(s.exercises) {
		return false, fmt.Errorf("exercise index %d out of range", ind)
	}
	return s.exercises[ind].Run(ctx, out, s.runner)
}

// DoneCurrentExercise marks the current exercise done and advances to
// the next pending one, wrapping around the end of the set. When no
// pending exercise remains it writes the final message to w.
func (s *State) DoneCurrentExercise(w io.Writer) (ExercisesProgress, error) {
	s.exercises[s.currentInd].Done = true

	next, found := s.nextPendingFrom(s.currentInd)
	if !found {
		if err := s.saveStateFile(); err != nil {
			return ProgressAllDone, err
		}
		return ProgressAllDone, s.RenderFinalMessage(w)
	}

	s.currentInd = next
	if err := s.saveStateFile(); err != nil {
		return ProgressNewPending, err
	}
	return ProgressNewPending, nil
}

// nextPendingFrom searches for a pending exercise starting after ind,
// wrapping around. The exercise at ind itself is not considered.
func (s *State) nextPendingFrom(ind int) (int, bool) {
	n := len(s.exercises)
	for off := 1; off <= n; off++ {
		i := (ind + off) % n
		if !s.exercises[i].Done {
			return i, true
		}
	}
	return 0, false
}

// CurrentSolutionPath returns the path of the reference solution for
// the current exercise, materializing it from the embedded set on first
// use. ok is false when no solution exists.
func (s *State) CurrentSolutionPath() (path string, ok bool, err error) {
	ex := s.CurrentExercise()
	src, ok := embedded.SolutionSource(ex.Dir, ex.Name)
	if !ok {
		return "", false, nil
	}

	rel := filepath.Join("solutions", ex.Dir, ex.Name+".go")
	full := filepath.Join(s.root, rel)
	if _, err := os.Stat(full); err == nil {
		return rel, true, nil
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", false, fmt.Errorf("create solution dir: %w", err)
	}
	if err := os.WriteFile(full, src, 0644); err != nil {
		return "", false, fmt.Errorf("write solution file: %w", err)
	}
	return rel, true, nil
}

// ResetCurrentExercise restores the current exercise file to its
// pristine template and marks it pending.
func (s *State) ResetCurrentExercise() error {
	return s.ResetExercise(s.currentInd)
}

// ResetExercise restores the exercise at ind to its pristine template.
func (s *State) ResetExercise(ind int) error {
	if ind < 0 || ind >= len(s.exercises) {
		return fmt.Errorf("exercise index %d out of range", ind)
	}
	ex := &s.exercises[ind]

	src, ok := embedded.ExerciseSource(ex.Dir, ex.Name)
	if !ok {
		return fmt.Errorf("no template for exercise %q", ex.Name)
	}
	if err := os.WriteFile(filepath.Join(s.root, ex.Path()), src, 0644); err != nil {
		return fmt.Errorf("reset %s: %w", ex.Path(), err)
	}
	return s.SetPending(ind)
}

// WelcomeMessage returns the manifest welcome message.
func (s *State) WelcomeMessage() string {
	return s.welcome
}

// RenderFinalMessage writes the manifest final message once everything
// is done.
func (s *State) RenderFinalMessage(w io.Writer) error {
	if s.final == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s\n", s.final)
	return err
}
