package mocktest

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

func (t *TestScreen) View(width, height int) string {
	if t.inFlight {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n\n" + t.spin.View())
	}
	if t.submitErr != "" {
		return t.renderSubmitError(width)
	}

	var b strings.Builder

	q := t.attempt.Current()

	// Status line: position, answered count, stopwatch.
	elapsed := t.attempt.ElapsedSeconds()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", t.attempt.Index()+1, t.attempt.Len()))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("answered %d/%d   %02d:%02d",
			t.attempt.AnsweredCount(), t.attempt.Len(), elapsed/60, elapsed%60))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Source tag.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sourceTag(q.Source)))
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.options.View()))

	// Answered progress across the set.
	pct := float64(t.attempt.AnsweredCount()) / float64(t.attempt.Len())
	bar := components.NewProgressBar("", pct, false, minInt(width-8, 50))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	if t.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.confirm.View()))
	}

	return b.String()
}

func (t *TestScreen) renderSubmitError(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf(
			"\n\n\n  Submission failed: %s\n\n  Your answers are saved.\n  Press R to retry, Esc to keep answering.",
			t.submitErr,
		))
}

func sourceTag(source api.QuestionSource) string {
	switch source {
	case api.SourcePreviousYear:
		return "[ previous year ]"
	default:
		return "[ generated ]"
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
