package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width)
	}
	if s.noQuestions {
		return renderNoQuestions(width)
	}

	switch s.ctrl.State() {
	case sess.StateStarting:
		return renderCentered(width, "\n\n\n"+s.spin.View())
	case sess.StateEnding, sess.StateCompleted:
		return renderCentered(width, "\n\n\n"+s.spin.View())
	}

	return s.renderActive(width, height)
}

// renderActive renders the countdown with generation progress.
func (s *SessionScreen) renderActive(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")

	remaining := s.countdown.Remaining()
	timerStr := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)

	timerStyle := theme.Timer
	if s.countdown.Paused() {
		timerStyle = theme.TimerPaused
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(timerStyle.Render(timerStr)))
	b.WriteString("\n")

	if s.countdown.Paused() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("paused"))
	}
	b.WriteString("\n\n")

	// Elapsed progress.
	total := s.countdown.Total()
	var pct float64
	if total > 0 {
		pct = float64(s.countdown.ElapsedSeconds()) / float64(total)
	}
	bar := components.NewProgressBar("", pct, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.generationLine()))

	if s.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.confirm.View()))
	}

	return b.String()
}

// generationLine describes the background question generation.
func (s *SessionScreen) generationLine() string {
	if s.ctrl.GenerationDone() {
		return "Question set ready"
	}
	count := s.ctrl.GeneratedCount()
	if count > 0 {
		return fmt.Sprintf("Generating questions... %d ready", count)
	}
	return "Generating questions..."
}

func (s *SessionScreen) renderError(width int) string {
	msg := fmt.Sprintf("\n\n\n  Error: %s\n\n", s.errMsg)
	if s.errRetry {
		msg += "  Press R to retry, Esc to go back."
	} else {
		msg += "  Press any key to go back."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(msg)
}

// renderNoQuestions renders the hard-empty dead end.
func renderNoQuestions(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  No questions are available for this topic yet.\n\n  Press any key to go back.")
}

func renderCentered(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
