package exercise

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validManifest = `
welcome_message = "Welcome!"
final_message = "Congratulations!"

[[exercises]]
name = "intro1"
dir = "00_intro"
hint = "Just save the file."

[[exercises]]
name = "if1"
dir = "03_if"
test = true
hint = "Compare the numbers."
`

func TestParseInfo(t *testing.T) {
	info, err := ParseInfo([]byte(validManifest))
	if err != nil {
		t.Fatal(err)
	}

	if info.WelcomeMessage != "Welcome!" {
		t.Errorf("WelcomeMessage = %q", info.WelcomeMessage)
	}
	if len(info.Exercises) != 2 {
		t.Fatalf("len(Exercises) = %d, want 2", len(info.Exercises))
	}
	if info.Exercises[0].Test {
		t.Error("intro1 unexpectedly marked as a test exercise")
	}
	if !info.Exercises[1].Test {
		t.Error("if1 not marked as a test exercise")
	}
}

func TestParseInfoInvalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "empty",
			manifest: `welcome_message = "hi"`,
			wantErr:  "no exercises",
		},
		{
			name: "missing name",
			manifest: `[[exercises]]
dir = "00_intro"`,
			wantErr: "has no name",
		},
		{
			name: "missing dir",
			manifest: `[[exercises]]
name = "intro1"`,
			wantErr: "has no dir",
		},
		{
			name: "duplicate name",
			manifest: `[[exercises]]
name = "intro1"
dir = "00_intro"

[[exercises]]
name = "intro1"
dir = "00_intro"`,
			wantErr: "duplicate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInfo([]byte(tt.manifest))
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, InfoFile)
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := LoadInfo(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Exercises) != 2 {
		t.Errorf("len(Exercises) = %d, want 2", len(info.Exercises))
	}

	if _, err := LoadInfo(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("no error for a missing manifest")
	}
}

func TestBuild(t *testing.T) {
	info, err := ParseInfo([]byte(validManifest))
	if err != nil {
		t.Fatal(err)
	}

	exercises := info.Build()
	if len(exercises) != 2 {
		t.Fatalf("len = %d, want 2", len(exercises))
	}
	for i := range exercises {
		if exercises[i].Done {
			t.Errorf("%s starts done", exercises[i].Name)
		}
	}
	if got := exercises[0].Path(); got != filepath.Join("exercises", "00_intro", "intro1.go") {
		t.Errorf("Path() = %q", got)
	}
	if got := exercises[1].TestDir(); got != filepath.Join("exercises", "03_if") {
		t.Errorf("TestDir() = %q", got)
	}
}
