// Package blocked shows the one-attempt lockout when a completion
// marker already exists.
package blocked

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/egfinancefx/exam/internal/screen"
	"github.com/egfinancefx/exam/internal/store"
	"github.com/egfinancefx/exam/internal/ui/layout"
	"github.com/egfinancefx/exam/internal/ui/theme"
)

// BlockedScreen is terminal: the only ways out are quitting or the
// reset command.
type BlockedScreen struct {
	marker *store.Marker
}

var _ screen.Screen = (*BlockedScreen)(nil)
var _ screen.KeyHintProvider = (*BlockedScreen)(nil)

// New creates a BlockedScreen for an existing marker.
func New(marker *store.Marker) *BlockedScreen {
	return &BlockedScreen{marker: marker}
}

func (b *BlockedScreen) Title() string {
	return "Assessment Completed"
}

func (b *BlockedScreen) Init() tea.Cmd {
	return nil
}

func (b *BlockedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (b *BlockedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return b, nil
}

func (b *BlockedScreen) View(width, height int) string {
	title := theme.Title.Render("You have already completed this assessment.")

	var details string
	if b.marker != nil {
		details = theme.Body.Render(fmt.Sprintf(
			"Trader: %s\nCompleted: %s\nScore: %d%%",
			b.marker.Name,
			b.marker.Date.Local().Format("2 Jan 2006"),
			b.marker.Score,
		))
	}

	hint := theme.Hint.Render("The assessment allows a single attempt per machine.\nRun `exam reset` to clear the record.")

	card := theme.Card.Render(details + "\n\n" + hint)
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
