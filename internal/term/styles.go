package term

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Styles holds the computed lipgloss styles for watch-mode output.
// The styling is cosmetic; all state lives in the plain text.
type Styles struct {
	Key          lipgloss.Style // bold prompt key letters
	Option       lipgloss.Style // underlined prompt option words
	HintTitle    lipgloss.Style
	DoneBanner   lipgloss.Style
	Link         lipgloss.Style
	BarFilled    lipgloss.Style
	BarRemaining lipgloss.Style
}

var (
	stylesOnce sync.Once
	styles     Styles
)

// GetStyles returns the style set, building it on first use.
func GetStyles() *Styles {
	stylesOnce.Do(func() {
		styles = buildStyles()
	})
	return &styles
}

func buildStyles() Styles {
	return Styles{
		Key:    lipgloss.NewStyle().Bold(true),
		Option: lipgloss.NewStyle().Underline(true),

		HintTitle: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("6")),

		DoneBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2")),

		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color("4")),

		BarFilled:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		BarRemaining: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
