package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// Option is a single labeled answer choice.
type Option struct {
	Label string
	Text  string
}

// OptionList is a labeled answer selector. Choosing an option records
// its label; choosing again overwrites. Correctness is never shown here,
// scoring happens server-side after submission.
type OptionList struct {
	Options []Option
	Cursor  int
	Chosen  string // chosen label, "" when unanswered
	Locked  bool
}

// NewOptionList creates an option list with the cursor on the first
// option, or on the previously chosen one if any.
func NewOptionList(options []Option, chosen string) OptionList {
	cursor := 0
	for i, opt := range options {
		if chosen != "" && opt.Label == chosen {
			cursor = i
		}
	}
	return OptionList{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = o.Options[o.Cursor].Label
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var s string

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}

		marker := "( )"
		if o.Chosen == opt.Label {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, opt.Label, opt.Text)

		switch {
		case o.Chosen == opt.Label:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == o.Cursor && !o.Locked:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Answered returns true once an option has been chosen.
func (o OptionList) Answered() bool {
	return o.Chosen != ""
}
