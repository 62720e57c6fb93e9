// Package start collects the trader's name before the assessment begins.
package start

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/egfinancefx/exam/internal/router"
	"github.com/egfinancefx/exam/internal/screen"
	sess "github.com/egfinancefx/exam/internal/session"
	"github.com/egfinancefx/exam/internal/ui/components"
	"github.com/egfinancefx/exam/internal/ui/layout"
	"github.com/egfinancefx/exam/internal/ui/theme"
)

const banner = `  ╔═══════════════════════════════╗
  ║   TRADING SKILLS ASSESSMENT   ║
  ╚═══════════════════════════════╝`

// StartScreen asks for the trader's name and opens the quiz.
type StartScreen struct {
	state       *sess.State
	quizFactory func(*sess.State) screen.Screen
	input       components.TextInput
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen. quizFactory builds the quiz screen once the
// session has begun.
func New(state *sess.State, quizFactory func(*sess.State) screen.Screen) *StartScreen {
	return &StartScreen{
		state:       state,
		quizFactory: quizFactory,
		input:       components.NewTextInput("Your name...", 40),
	}
}

func (s *StartScreen) Title() string {
	return "Welcome"
}

func (s *StartScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if err := s.state.Begin(s.input.Value()); err != nil {
			if errors.Is(err, sess.ErrNameTooShort) {
				s.input.SetError(fmt.Sprintf("Please enter at least %d characters.", sess.MinNameLen))
			}
			return s, nil
		}
		quizScreen := s.quizFactory(s.state)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: quizScreen}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StartScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner)
	sub := theme.Subtitle.Render("Ten questions. One attempt. A mentor's read on your trading.")
	prompt := theme.Body.Render("Enter your name to begin:")

	card := theme.Card.Render(prompt + "\n\n" + s.input.View())

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", sub, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
