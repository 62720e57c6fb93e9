package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/egfinancefx/exam/internal/feedback"
	"github.com/egfinancefx/exam/internal/quiz"
	"github.com/egfinancefx/exam/internal/router"
	"github.com/egfinancefx/exam/internal/screen"
	"github.com/egfinancefx/exam/internal/screens/blocked"
	"github.com/egfinancefx/exam/internal/screens/quizscreen"
	"github.com/egfinancefx/exam/internal/screens/start"
	sess "github.com/egfinancefx/exam/internal/session"
	"github.com/egfinancefx/exam/internal/store"
	"github.com/egfinancefx/exam/internal/ui/layout"
)

// Deps is everything the TUI needs wired before it starts.
type Deps struct {
	Ctx      context.Context
	Bank     []quiz.Question
	Feedback *feedback.Service
	Markers  store.MarkerRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel picks the initial screen: blocked when a completion
// marker exists, the name prompt otherwise.
func newAppModel(deps Deps) AppModel {
	marker, err := deps.Markers.Get(deps.Ctx)
	if err == nil && marker != nil {
		return AppModel{router: router.New(blocked.New(marker))}
	}

	state := sess.New(len(deps.Bank))
	quizFactory := func(s *sess.State) screen.Screen {
		return quizscreen.New(deps.Ctx, s, deps.Bank, deps.Feedback, deps.Markers)
	}
	return AppModel{router: router.New(start.New(state, quizFactory))}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	current, total := 0, 0
	if pp, ok := active.(screen.ProgressProvider); ok {
		current, total = pp.Progress()
	}

	header := layout.RenderHeader(title, current, total, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
