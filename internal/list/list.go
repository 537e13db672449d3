package list

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/drillhq/drill/internal/app"
	"github.com/drillhq/drill/internal/exercise"
	"github.com/drillhq/drill/internal/i18n"
)

// exerciseItem wraps an exercise for the list.
type exerciseItem struct {
	ex      *exercise.Exercise
	ind     int
	current bool
}

func (i exerciseItem) Title() string {
	marker := " "
	if i.current {
		marker = ">"
	}
	return fmt.Sprintf("%s %s", marker, i.ex.Name)
}

func (i exerciseItem) Description() string {
	status := "PENDING"
	if i.ex.Done {
		status = "DONE"
	}
	return fmt.Sprintf("%s  %s", status, i.ex.Path())
}

func (i exerciseItem) FilterValue() string {
	return i.ex.Name + " " + i.ex.Dir
}

type keyMap struct {
	Continue key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue at"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "back to watch"),
		),
	}
}

// Model is the interactive exercise list.
type Model struct {
	list     list.Model
	state    *app.State
	quitting bool
	width    int
	height   int
	ready    bool
	err      error
}

// NewModel builds the list positioned on the current exercise.
func NewModel(state *app.State) Model {
	exercises := state.Exercises()
	items := make([]list.Item, len(exercises))
	for i := range exercises {
		items[i] = exerciseItem{
			ex:      &exercises[i],
			ind:     i,
			current: i == state.CurrentExerciseInd(),
		}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = i18n.T("list.title", "Exercises")
	l.SetShowStatusBar(true)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.Select(state.CurrentExerciseInd())

	return Model{
		list:  l,
		state: state,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keys := defaultKeyMap()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Continue):
			if item, ok := m.list.SelectedItem().(exerciseItem); ok {
				if err := m.state.SetCurrentExerciseInd(item.ind); err != nil {
					m.err = err
				}
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Reset):
			if item, ok := m.list.SelectedItem().(exerciseItem); ok {
				if err := m.state.ResetExercise(item.ind); err != nil {
					m.err = err
					m.quitting = true
					return m, tea.Quit
				}
				return m, m.list.NewStatusMessage(
					i18n.Tf("list.reset_done", "reset %s", item.ex.Name))
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

var listStyle = lipgloss.NewStyle().Padding(1, 2)

func (m Model) View() tea.View {
	if !m.ready {
		v := tea.NewView("Loading...")
		v.AltScreen = true
		return v
	}

	if m.quitting {
		return tea.NewView("")
	}

	content := listStyle.Render(m.list.View())
	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// Show runs the interactive list until the user leaves it. Selection
// and resets are applied to the state directly.
func Show(state *app.State) error {
	model := NewModel(state)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run the exercise list: %w", err)
	}
	if m, ok := finalModel.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
