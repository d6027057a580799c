package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// Confirm is a yes/no dialog. The caller shows it as an overlay and
// reads the Decided/Accepted pair after each update.
type Confirm struct {
	Prompt   string
	Detail   string
	yes      bool
	decided  bool
	accepted bool
}

// NewConfirm creates a confirm dialog with "No" preselected.
func NewConfirm(prompt, detail string) Confirm {
	return Confirm{Prompt: prompt, Detail: detail}
}

// Update handles navigation and the decision keys.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "right", "tab", "h", "l":
		c.yes = !c.yes
	case "y":
		c.decided = true
		c.accepted = true
	case "n", "esc":
		c.decided = true
		c.accepted = false
	case "enter":
		c.decided = true
		c.accepted = c.yes
	}

	return c, nil
}

// Decided reports whether the user has answered the dialog.
func (c Confirm) Decided() bool { return c.decided }

// Accepted reports whether the user confirmed.
func (c Confirm) Accepted() bool { return c.accepted }

// View renders the dialog card.
func (c Confirm) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt)

	body := prompt
	if c.Detail != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Detail)
	}

	yes := "  Yes  "
	no := "  No  "
	if c.yes {
		yes = theme.Selected.Render("▸ Yes  ")
		no = theme.Unselected.Render("  No  ")
	} else {
		yes = theme.Unselected.Render("  Yes  ")
		no = theme.Selected.Render("▸ No  ")
	}

	body += "\n\n" + yes + "   " + no

	return theme.Card.Render(body)
}
