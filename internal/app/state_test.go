package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drillhq/drill/internal/embedded"
	"github.com/drillhq/drill/internal/exercise"
)

const testManifest = `
welcome_message = "Welcome!"
final_message = "You made it!"

[[exercises]]
name = "intro1"
dir = "00_intro"
hint = "Save the file."

[[exercises]]
name = "variables1"
dir = "01_variables"
hint = "Declare x."

[[exercises]]
name = "variables2"
dir = "01_variables"
hint = "Use the variable."
`

// pathRunner fakes command execution, deciding pass/fail by the
// exercise path in the command arguments.
type pathRunner struct {
	fail map[string]bool // exercise name -> should fail
}

func (r *pathRunner) Run(ctx context.Context, out *bytes.Buffer, name string, args ...string) (bool, error) {
	out.Reset()
	path := args[len(args)-1]
	for ex, fail := range r.fail {
		if fail && strings.Contains(path, ex) {
			out.WriteString("build failed: " + ex)
			return false, nil
		}
	}
	out.WriteString("ok")
	return true, nil
}

func newTestState(t *testing.T, runner exercise.CmdRunner) *State {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, exercise.InfoFile), []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if runner == nil {
		runner = &pathRunner{}
	}
	s, err := Load(root, runner)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFreshWorkspace(t *testing.T) {
	s := newTestState(t, nil)

	if s.CurrentExerciseInd() != 0 {
		t.Errorf("CurrentExerciseInd = %d, want 0", s.CurrentExerciseInd())
	}
	if s.NDone() != 0 {
		t.Errorf("NDone = %d, want 0", s.NDone())
	}
	if s.Total() != 3 {
		t.Errorf("Total = %d, want 3", s.Total())
	}
	if s.WelcomeMessage() != "Welcome!" {
		t.Errorf("WelcomeMessage = %q", s.WelcomeMessage())
	}
}

func TestLoadRestoresMissingFiles(t *testing.T) {
	s := newTestState(t, nil)

	for i := range s.Exercises() {
		path := filepath.Join(s.root, s.Exercises()[i].Path())
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not restored from the template: %v", s.Exercises()[i].Path(), err)
		}
	}

	// Deleting a file and reloading brings it back.
	path := filepath.Join(s.root, s.Exercises()[0].Path())
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(s.root, &pathRunner{}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("deleted exercise file not restored: %v", err)
	}
}

func TestStateFileRoundTrip(t *testing.T) {
	s := newTestState(t, nil)

	if err := s.MarkDone(0); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCurrentExerciseInd(1); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(s.root, &pathRunner{})
	if err != nil {
		t.Fatal(err)
	}
	if !reloaded.Exercises()[0].Done {
		t.Error("done flag lost on reload")
	}
	if reloaded.CurrentExerciseInd() != 1 {
		t.Errorf("CurrentExerciseInd = %d, want 1", reloaded.CurrentExerciseInd())
	}
}

func TestStateFileIgnoresUnknownNames(t *testing.T) {
	s := newTestState(t, nil)

	sf := `{"current": "removed_exercise", "done": ["intro1", "also_removed"]}`
	if err := os.WriteFile(filepath.Join(s.root, StateFile), []byte(sf), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(s.root, &pathRunner{})
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.CurrentExerciseInd() != 0 {
		t.Errorf("CurrentExerciseInd = %d, want 0", reloaded.CurrentExerciseInd())
	}
	if !reloaded.Exercises()[0].Done {
		t.Error("known done name not applied")
	}
	if reloaded.NDone() != 1 {
		t.Errorf("NDone = %d, want 1", reloaded.NDone())
	}
}

func TestDoneCurrentExerciseWrapsAround(t *testing.T) {
	s := newTestState(t, nil)
	if err := s.MarkDone(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCurrentExerciseInd(2); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	progress, err := s.DoneCurrentExercise(&out)
	if err != nil {
		t.Fatal(err)
	}
	if progress != ProgressNewPending {
		t.Fatalf("progress = %v, want ProgressNewPending", progress)
	}
	if s.CurrentExerciseInd() != 0 {
		t.Errorf("CurrentExerciseInd = %d, want 0 (wrap-around)", s.CurrentExerciseInd())
	}
}

func TestDoneCurrentExerciseAllDone(t *testing.T) {
	s := newTestState(t, nil)
	if err := s.MarkDone(0); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkDone(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCurrentExerciseInd(2); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	progress, err := s.DoneCurrentExercise(&out)
	if err != nil {
		t.Fatal(err)
	}
	if progress != ProgressAllDone {
		t.Fatalf("progress = %v, want ProgressAllDone", progress)
	}
	if !strings.Contains(out.String(), "You made it!") {
		t.Errorf("final message missing from %q", out.String())
	}
}

func TestCheckAllExercises(t *testing.T) {
	t.Run("reports the first failure", func(t *testing.T) {
		s := newTestState(t, &pathRunner{fail: map[string]bool{
			"variables1": true,
			"variables2": true,
		}})

		var out bytes.Buffer
		firstFail, found, err := s.CheckAllExercises(context.Background(), &out)
		if err != nil {
			t.Fatal(err)
		}
		if !found {
			t.Fatal("found = false with failing exercises")
		}
		if firstFail != 1 {
			t.Errorf("firstFail = %d, want 1", firstFail)
		}
		if !s.Exercises()[0].Done || s.Exercises()[1].Done || s.Exercises()[2].Done {
			t.Errorf("done flags not updated from results: %+v", s.Exercises())
		}
		if !strings.Contains(out.String(), "Checked 3 exercises: 1 done") {
			t.Errorf("summary missing from %q", out.String())
		}
	})

	t.Run("all passing", func(t *testing.T) {
		s := newTestState(t, nil)

		var out bytes.Buffer
		_, found, err := s.CheckAllExercises(context.Background(), &out)
		if err != nil {
			t.Fatal(err)
		}
		if found {
			t.Error("found = true with everything passing")
		}
		if s.NDone() != 3 {
			t.Errorf("NDone = %d, want 3", s.NDone())
		}
	})
}

func TestResetExercise(t *testing.T) {
	s := newTestState(t, nil)
	ex := &s.Exercises()[0]

	path := filepath.Join(s.root, ex.Path())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("package main // broken beyond repair\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkDone(0); err != nil {
		t.Fatal(err)
	}

	if err := s.ResetExercise(0); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, ok := embedded.ExerciseSource(ex.Dir, ex.Name)
	if !ok {
		t.Fatal("no embedded template for intro1")
	}
	if !bytes.Equal(got, want) {
		t.Error("file content does not match the pristine template")
	}
	if ex.Done {
		t.Error("exercise still done after reset")
	}
}

func TestCurrentSolutionPath(t *testing.T) {
	s := newTestState(t, nil)

	rel, ok, err := s.CurrentSolutionPath()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("no solution for intro1")
	}
	if rel != filepath.Join("solutions", "00_intro", "intro1.go") {
		t.Errorf("path = %q", rel)
	}

	full := filepath.Join(s.root, rel)
	first, err := os.ReadFile(full)
	if err != nil {
		t.Fatalf("solution not materialized: %v", err)
	}

	// Second call must reuse the file, not rewrite it.
	if _, _, err := s.CurrentSolutionPath(); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(full)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("solution file changed on the second call")
	}
}

func TestExerciseInd(t *testing.T) {
	s := newTestState(t, nil)

	ind, err := s.ExerciseInd("variables2")
	if err != nil {
		t.Fatal(err)
	}
	if ind != 2 {
		t.Errorf("ind = %d, want 2", ind)
	}

	if _, err := s.ExerciseInd("nope"); err == nil {
		t.Error("no error for an unknown name")
	}
}
