package term

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/drillhq/drill/internal/i18n"
)

// FileLink writes path as an OSC-8 terminal hyperlink so supporting
// terminals make it clickable. The visible text stays the relative path.
func FileLink(w io.Writer, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		// Fall back to plain text; the link is a convenience only.
		_, err = io.WriteString(w, GetStyles().Link.Render(path))
		return err
	}

	_, err = fmt.Fprintf(w, "\x1b]8;;file://%s\x1b\\%s\x1b]8;;\x1b\\",
		abs, GetStyles().Link.Render(path))
	return err
}

// SolutionLinkLine writes the "solution for comparison" line shown under
// the done banner.
func SolutionLinkLine(w io.Writer, path string) error {
	if _, err := io.WriteString(w, i18n.T("term.solution_link", "Solution for comparison: ")); err != nil {
		return err
	}
	if err := FileLink(w, path); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
