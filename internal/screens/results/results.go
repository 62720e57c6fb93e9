// Package results renders the dashboard for a completed assessment:
// score, radar, the mentor's analysis, and the share actions.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/egfinancefx/exam/internal/feedback"
	"github.com/egfinancefx/exam/internal/quiz"
	"github.com/egfinancefx/exam/internal/report"
	"github.com/egfinancefx/exam/internal/screen"
	"github.com/egfinancefx/exam/internal/scoring"
	sess "github.com/egfinancefx/exam/internal/session"
	"github.com/egfinancefx/exam/internal/ui/components"
	"github.com/egfinancefx/exam/internal/ui/layout"
	"github.com/egfinancefx/exam/internal/ui/theme"
)

// sectionTitles maps each analysis tag to its dashboard heading.
var sectionTitles = map[feedback.Section]string{
	feedback.SectionLevel:      "Level",
	feedback.SectionStrengths:  "Strengths",
	feedback.SectionWeaknesses: "Weaknesses",
	feedback.SectionRoadmap:    "Roadmap",
	feedback.SectionPsychology: "Psychology",
}

// ResultsScreen shows the finished session. Everything on it derives
// from the session state; nothing mutates.
type ResultsScreen struct {
	state  *sess.State
	bank   []quiz.Question
	result scoring.Result
	notice string
	scroll int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen over a completed session.
func New(state *sess.State, bank []quiz.Question) *ResultsScreen {
	return &ResultsScreen{
		state:  state,
		bank:   bank,
		result: scoring.Score(state.Answers, bank),
	}
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "C", Description: "Copy report"},
		{Key: "T", Description: "Telegram link"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.scroll > 0 {
			r.scroll--
		}
	case "down", "j":
		r.scroll++
	case "c":
		text := report.Compose(r.state.Name, r.result, r.state.Analysis)
		if _, ok := report.CopyToClipboard(text); ok {
			r.notice = "Report copied to clipboard."
		} else {
			r.notice = "Clipboard unavailable; report shown below."
		}
	case "t":
		text := report.Compose(r.state.Name, r.result, r.state.Analysis)
		r.notice = "Share link: " + report.TelegramShareURL(text)
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var sections []string

	headline := theme.Title.Render(fmt.Sprintf("%s — %d of %d correct",
		r.state.Name, r.result.Correct, r.result.Total))
	sections = append(sections, headline, "")

	sections = append(sections, components.NewGauge(r.result.Percentage).View(), "")

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}
	for _, c := range scoring.Categories {
		t := r.result.Categories[c]
		bar := components.NewProgressBar(
			fmt.Sprintf("%-18s", report.Label(c)),
			float64(t.Percent())/100,
			true,
			barWidth,
		)
		sections = append(sections, bar.View())
	}
	sections = append(sections, "")

	sections = append(sections, components.NewRadar(r.result.Categories).View(), "")

	if r.state.Analysis != nil {
		for _, tag := range feedback.Sections {
			if !r.state.Analysis.Has(tag) {
				continue
			}
			heading := theme.SectionTag.Render(sectionTitles[tag])
			body := theme.Body.Render(r.state.Analysis.Get(tag))
			sections = append(sections, heading, body, "")
		}
	}

	if r.notice != "" {
		sections = append(sections, theme.Hint.Render(r.notice))
	}

	content := strings.Join(sections, "\n")
	content = clipLines(content, r.scroll, height)

	return lipgloss.NewStyle().Width(width).Padding(0, 2).Render(content)
}

// clipLines applies vertical scrolling within the content area.
func clipLines(content string, scroll, height int) string {
	lines := strings.Split(content, "\n")
	if scroll >= len(lines) {
		scroll = len(lines) - 1
	}
	if scroll < 0 {
		scroll = 0
	}
	lines = lines[scroll:]
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
