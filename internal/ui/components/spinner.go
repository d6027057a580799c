package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// Spinner wraps bubbles/spinner for in-flight indicators such as
// question generation and test submission.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a themed spinner with the given label.
func NewSpinner(label string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{Model: s, Label: label}
}

// Init starts the spinner animation.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner with its label.
func (s Spinner) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
	return s.Model.View() + " " + label
}
