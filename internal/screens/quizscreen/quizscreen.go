// Package quizscreen drives the answering loop: option selection,
// optional reasoning and chart attachments, and the final submission
// that requests the mentor analysis.
package quizscreen

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/egfinancefx/exam/internal/attach"
	"github.com/egfinancefx/exam/internal/feedback"
	"github.com/egfinancefx/exam/internal/logging"
	"github.com/egfinancefx/exam/internal/quiz"
	"github.com/egfinancefx/exam/internal/router"
	"github.com/egfinancefx/exam/internal/screen"
	"github.com/egfinancefx/exam/internal/screens/results"
	"github.com/egfinancefx/exam/internal/scoring"
	sess "github.com/egfinancefx/exam/internal/session"
	"github.com/egfinancefx/exam/internal/store"
	"github.com/egfinancefx/exam/internal/ui/components"
	"github.com/egfinancefx/exam/internal/ui/layout"
	"github.com/egfinancefx/exam/internal/ui/theme"
)

// mode is the active input focus within the screen.
type mode int

const (
	modeAnswer mode = iota
	modeReasoning
	modeAttach
)

// analysisDoneMsg carries the outcome of the outbound analysis call.
type analysisDoneMsg struct {
	Analysis *feedback.Analysis
	Err      error
}

// QuizScreen implements screen.Screen for the answering phase.
type QuizScreen struct {
	ctx     context.Context
	state   *sess.State
	bank    []quiz.Question
	svc     *feedback.Service
	markers store.MarkerRepo

	choice    components.MultiChoice
	reasoning components.TextInput
	attachIn  components.TextInput
	mode      mode
	notice    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a begun session.
func New(ctx context.Context, state *sess.State, bank []quiz.Question, svc *feedback.Service, markers store.MarkerRepo) *QuizScreen {
	q := &QuizScreen{
		ctx:       ctx,
		state:     state,
		bank:      bank,
		svc:       svc,
		markers:   markers,
		reasoning: components.NewTextInput("Why did you choose that?", 280),
		attachIn:  components.NewTextInput("Path to chart image...", 200),
	}
	q.syncQuestion()
	return q
}

func (q *QuizScreen) Title() string {
	return "Assessment"
}

func (q *QuizScreen) Progress() (int, int) {
	return q.state.Cursor + 1, len(q.bank)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.state.Requesting {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	switch q.mode {
	case modeReasoning, modeAttach:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Options"},
		{Key: "Enter", Description: "Choose"},
		{Key: "←→", Description: "Question"},
		{Key: "R", Description: "Reasoning"},
		{Key: "A", Description: "Attach"},
	}
	if q.onFinalSubmit() {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
	}
	return hints
}

// syncQuestion rebuilds the per-question widgets after cursor moves.
func (q *QuizScreen) syncQuestion() {
	question := q.bank[q.state.Cursor]
	q.choice = components.NewMultiChoice(question.Text, question.Options)
	if chosen, ok := q.state.Answers[q.state.Cursor]; ok {
		q.choice = q.choice.WithChosen(chosen)
	}
	q.reasoning.SetValue(q.state.Reasoning[q.state.Cursor])
	q.attachIn.SetValue("")
	q.mode = modeAnswer
	q.notice = ""
}

// onFinalSubmit reports whether every question is answered and the
// cursor sits on the last one.
func (q *QuizScreen) onFinalSubmit() bool {
	return q.state.OnLast() && len(q.state.Answers) == len(q.bank)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(analysisDoneMsg); ok {
		return q.handleAnalysisDone(done)
	}

	if q.state.Requesting {
		return q, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)

	switch q.mode {
	case modeReasoning:
		if isKey {
			switch kmsg.String() {
			case "enter":
				q.state.SetReasoning(q.reasoning.Value())
				q.mode = modeAnswer
				return q, nil
			case "esc":
				q.reasoning.SetValue(q.state.Reasoning[q.state.Cursor])
				q.mode = modeAnswer
				return q, nil
			}
		}
		var cmd tea.Cmd
		q.reasoning, cmd = q.reasoning.Update(msg)
		return q, cmd

	case modeAttach:
		if isKey {
			switch kmsg.String() {
			case "enter":
				return q, q.attachFile(q.attachIn.Value())
			case "esc":
				q.mode = modeAnswer
				return q, nil
			}
		}
		var cmd tea.Cmd
		q.attachIn, cmd = q.attachIn.Update(msg)
		return q, cmd
	}

	if !isKey {
		return q, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if err := q.state.Prev(); err == nil {
			q.syncQuestion()
		}
		return q, nil
	case "right", "l", "n":
		if err := q.state.Next(); err != nil {
			q.notice = err.Error()
		} else {
			q.syncQuestion()
		}
		return q, nil
	case "r":
		q.mode = modeReasoning
		return q, q.reasoning.Init()
	case "a":
		q.mode = modeAttach
		return q, q.attachIn.Init()
	case "x":
		q.state.ClearAttachment()
		q.notice = ""
		return q, nil
	case "s":
		if q.onFinalSubmit() {
			return q.submit()
		}
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)
	if q.choice.HasChoice() {
		q.state.SelectAnswer(q.choice.Chosen)
	}
	return q, cmd
}

// attachFile loads a local image and stores it on the current question.
func (q *QuizScreen) attachFile(path string) tea.Cmd {
	att, err := attach.FromFile(path)
	if err != nil {
		q.notice = err.Error()
		q.mode = modeAnswer
		return nil
	}
	q.state.Attach(att.Encode())
	q.notice = fmt.Sprintf("Attached %s (%d bytes)", att.MediaType, len(att.Data))
	q.mode = modeAnswer
	return nil
}

// submit fires the single outbound analysis request.
func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	if err := q.state.BeginRequest(); err != nil {
		q.notice = err.Error()
		return q, nil
	}
	q.notice = ""

	transcript := feedback.Transcript{
		Name:        q.state.Name,
		Questions:   q.bank,
		Answers:     q.state.Answers,
		Reasoning:   q.state.Reasoning,
		Attachments: q.state.Attachments,
	}

	ctx := q.ctx
	svc := q.svc
	return q, func() tea.Msg {
		a, err := svc.Analyze(ctx, transcript)
		return analysisDoneMsg{Analysis: a, Err: err}
	}
}

// handleAnalysisDone completes the session on success or surfaces the
// failure and lets the trader retry.
func (q *QuizScreen) handleAnalysisDone(msg analysisDoneMsg) (screen.Screen, tea.Cmd) {
	log := logging.FromContext(q.ctx)

	if msg.Err != nil {
		q.state.RequestFailed()
		q.notice = "Analysis request failed. Press S to retry."
		log.Error().Err(msg.Err).Msg("analysis request failed")
		return q, nil
	}

	if err := q.state.Complete(msg.Analysis); err != nil {
		log.Error().Err(err).Msg("complete session")
		return q, nil
	}

	result := scoring.Score(q.state.Answers, q.bank)
	marker := &store.Marker{
		SessionID: q.state.ID,
		Name:      q.state.Name,
		Date:      time.Now().UTC(),
		Score:     result.Percentage,
	}

	ctx := q.ctx
	markers := q.markers
	state := q.state
	bank := q.bank
	return q, func() tea.Msg {
		if err := markers.Save(ctx, marker); err != nil {
			logger := logging.FromContext(ctx)
			logger.Error().Err(err).Msg("save completion marker")
		}
		return router.ReplaceScreenMsg{Screen: results.New(state, bank)}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.state.Requesting {
		spinner := theme.Title.Render("Analyzing your answers...")
		sub := theme.Subtitle.Render("The mentor is reviewing your transcript.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, spinner, "", sub))
	}

	question := q.bank[q.state.Cursor]
	var sections []string

	sections = append(sections, q.choice.View())

	if question.Image != "" {
		sections = append(sections, theme.Hint.Render("Chart: "+question.Image))
	}

	if question.RequiresReasoning {
		sections = append(sections, theme.Hint.Render("This question asks for your reasoning (press R)."))
	}

	switch q.mode {
	case modeReasoning:
		sections = append(sections, "", theme.Body.Render("Your reasoning:"), q.reasoning.View())
	case modeAttach:
		sections = append(sections, "", theme.Body.Render("Attach a chart image:"), q.attachIn.View())
	default:
		if r := q.state.Reasoning[q.state.Cursor]; r != "" {
			sections = append(sections, "", theme.Hint.Render("Reasoning: "+r))
		}
		if _, ok := q.state.Attachments[q.state.Cursor]; ok {
			sections = append(sections, theme.Hint.Render("Chart attached (press X to remove)."))
		}
	}

	if q.notice != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Error).Render(q.notice))
	}

	if q.onFinalSubmit() {
		sections = append(sections, "", theme.Selected.Render("All questions answered — press S to submit."))
	}

	card := theme.Card.Width(width - 8).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
