package embedded

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drillhq/drill/internal/exercise"
)

func TestManifestMatchesEmbeddedFiles(t *testing.T) {
	info, err := exercise.ParseInfo(InfoTOML())
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Exercises) == 0 {
		t.Fatal("empty official exercise set")
	}

	for _, e := range info.Exercises {
		if _, ok := ExerciseSource(e.Dir, e.Name); !ok {
			t.Errorf("no template for %s/%s", e.Dir, e.Name)
		}
		if e.Hint == "" {
			t.Errorf("%s has no hint", e.Name)
		}
	}
	if info.WelcomeMessage == "" {
		t.Error("no welcome message")
	}
	if info.FinalMessage == "" {
		t.Error("no final message")
	}
}

func TestEverySolutionHasAnExercise(t *testing.T) {
	info, err := exercise.ParseInfo(InfoTOML())
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range info.Exercises {
		if _, ok := SolutionSource(e.Dir, e.Name); !ok {
			t.Errorf("no solution for %s/%s", e.Dir, e.Name)
		}
	}
}

func TestWriteWorkspace(t *testing.T) {
	root := filepath.Join(t.TempDir(), "drill")
	if err := WriteWorkspace(root); err != nil {
		t.Fatal(err)
	}

	for _, f := range []string{"info.toml", "go.mod"} {
		if _, err := os.Stat(filepath.Join(root, f)); err != nil {
			t.Errorf("%s not written: %v", f, err)
		}
	}

	info, err := exercise.ParseInfo(InfoTOML())
	if err != nil {
		t.Fatal(err)
	}
	exercises := info.Build()
	for i := range exercises {
		path := filepath.Join(root, exercises[i].Path())
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("%s not materialized: %v", exercises[i].Path(), err)
			continue
		}
		if strings.HasSuffix(path, tmplSuffix) {
			t.Errorf("template suffix kept on %s", path)
		}
		want, _ := ExerciseSource(exercises[i].Dir, exercises[i].Name)
		if string(data) != string(want) {
			t.Errorf("%s differs from the embedded template", exercises[i].Path())
		}
	}

	// Solutions appear lazily, never at setup.
	if _, err := os.Stat(filepath.Join(root, "solutions")); !os.IsNotExist(err) {
		t.Error("solutions written at setup")
	}
}

func TestMissingSourceLookups(t *testing.T) {
	if _, ok := ExerciseSource("99_missing", "nope"); ok {
		t.Error("found a template that does not exist")
	}
	if _, ok := SolutionSource("99_missing", "nope"); ok {
		t.Error("found a solution that does not exist")
	}
}
