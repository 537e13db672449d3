package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/drillhq/drill/internal/exercise"
)

// CheckAllExercises runs every exercise, updates the done flags from
// the results and reports the lowest-index failure. found is false when
// everything passes. Exercises run in parallel; output is discarded
// since only pass/fail matters here.
func (s *State) CheckAllExercises(ctx context.Context, w io.Writer) (firstFail int, found bool, err error) {
	results := make([]bool, len(s.exercises))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range s.exercises {
		g.Go(func() error {
			var out bytes.Buffer
			out.Grow(exercise.OutputCapacity)
			success, err := s.exercises[i].Run(ctx, &out, s.runner)
			if err != nil {
				return fmt.Errorf("run %s: %w", s.exercises[i].Name, err)
			}
			results[i] = success
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, false, err
	}

	firstFail, found = -1, false
	nDone := 0
	for i, success := range results {
		s.exercises[i].Done = success
		if success {
			nDone++
		} else if !found {
			firstFail, found = i, true
		}
	}
	if err := s.saveStateFile(); err != nil {
		return 0, false, err
	}

	if _, err := fmt.Fprintf(w, "Checked %d exercises: %d done\n", len(s.exercises), nDone); err != nil {
		return 0, false, err
	}
	return firstFail, found, nil
}
