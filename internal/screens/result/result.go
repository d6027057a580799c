// Package result renders the scored outcome of a mock test. Everything
// shown here is server-owned; the screen never recomputes the score or
// the star threshold.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// ResultScreen displays one TestResult.
type ResultScreen struct {
	result        *api.TestResult
	questionCount int
	elapsedSecs   int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen.
func New(result *api.TestResult, questionCount, elapsedSecs int) *ResultScreen {
	return &ResultScreen{
		result:        result,
		questionCount: questionCount,
		elapsedSecs:   elapsedSecs,
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Results"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Finish"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "enter", "esc":
			return r, tea.Quit
		}
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	var b strings.Builder
	res := r.result

	b.WriteString("\n\n")

	scoreStyle := theme.Correct
	if res.Score < 50 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("Score: %.0f%%", res.Score))))
	b.WriteString("\n")

	if res.StarEarned {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("★ Star earned!"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d correct · %d incorrect · %d questions · %02d:%02d",
			res.CorrectCount, res.IncorrectCount, r.questionCount,
			r.elapsedSecs/60, r.elapsedSecs%60)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderBreakdown()))

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to finish."))

	return b.String()
}

// renderBreakdown groups per-question correctness by question source.
func (r *ResultScreen) renderBreakdown() string {
	bySource := r.result.BySource()
	if len(bySource) == 0 {
		return ""
	}

	var b strings.Builder
	for _, source := range []api.QuestionSource{api.SourceAI, api.SourcePreviousYear} {
		results, ok := bySource[source]
		if !ok {
			continue
		}
		correct := 0
		for _, qr := range results {
			if qr.Correct {
				correct++
			}
		}

		name := "Generated"
		if source == api.SourcePreviousYear {
			name = "Previous year"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("%-14s", name)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("  %d/%d  ", correct, len(results))))

		for _, qr := range results {
			if qr.Correct {
				b.WriteString(theme.Correct.Render("●"))
			} else {
				b.WriteString(theme.Incorrect.Render("○"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
