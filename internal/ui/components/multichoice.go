package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/egfinancefx/exam/internal/ui/theme"
)

// MultiChoice is a multiple-choice option selector. Correctness is never
// revealed while answering; a choice stays changeable until the
// assessment is submitted.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int // -1 until a choice is made
}

// NewMultiChoice creates a selector with no choice made.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// WithChosen restores a previously made choice, for revisiting a question.
func (m MultiChoice) WithChosen(idx int) MultiChoice {
	if idx >= 0 && idx < len(m.Options) {
		m.Chosen = idx
		m.Cursor = idx
	}
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space":
		m.Chosen = m.Cursor
	}

	return m, nil
}

// View renders the selector.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E"}

	for i, opt := range m.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		marker := "( )"
		if i == m.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == m.Chosen:
			s += theme.Selected.Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// HasChoice reports whether an option has been picked.
func (m MultiChoice) HasChoice() bool {
	return m.Chosen >= 0
}
