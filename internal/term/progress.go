package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/drillhq/drill/internal/i18n"
)

// minBarWidth is the narrowest bar worth drawing; below that only the
// counts are shown.
const minBarWidth = 4

// ProgressBar writes a progress bar scaled to the terminal width:
//
//	Progress: [#####>--------------] 5/20
func ProgressBar(w io.Writer, progress, total, termWidth int) error {
	if total == 0 || progress > total {
		return fmt.Errorf("invalid progress %d/%d", progress, total)
	}

	label := i18n.T("term.progress", "Progress")
	counts := fmt.Sprintf(" %d/%d", progress, total)

	// "Progress: [" + bar + "]" + " n/total"
	barWidth := termWidth - len(label) - len(counts) - 4
	if barWidth < minBarWidth {
		_, err := fmt.Fprintf(w, "%s:%s", label, counts)
		return err
	}

	filled := barWidth * progress / total
	var bar strings.Builder
	bar.WriteString(strings.Repeat("#", filled))
	if filled < barWidth {
		bar.WriteString(">")
		bar.WriteString(strings.Repeat("-", barWidth-filled-1))
	}

	s := GetStyles()
	rendered := s.BarFilled.Render(bar.String()[:filled]) +
		s.BarRemaining.Render(bar.String()[filled:])

	_, err := fmt.Fprintf(w, "%s: [%s]%s", label, rendered, counts)
	return err
}
