package term

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFileLink(t *testing.T) {
	var buf bytes.Buffer
	if err := FileLink(&buf, "exercises/00_intro/intro1.go"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	abs, err := filepath.Abs("exercises/00_intro/intro1.go")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\x1b]8;;file://"+abs+"\x1b\\") {
		t.Errorf("hyperlink target missing in %q", out)
	}
	if !strings.HasSuffix(out, "\x1b]8;;\x1b\\") {
		t.Errorf("hyperlink not closed in %q", out)
	}
	if got := ansi.Strip(out); got != "exercises/00_intro/intro1.go" {
		t.Errorf("visible text = %q, want the relative path", got)
	}
}

func TestSolutionLinkLine(t *testing.T) {
	var buf bytes.Buffer
	if err := SolutionLinkLine(&buf, "solutions/00_intro/intro1.go"); err != nil {
		t.Fatal(err)
	}
	got := ansi.Strip(buf.String())
	want := "Solution for comparison: solutions/00_intro/intro1.go\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
