// Package session tracks one run through the assessment: the trader's
// identity, their answers and reasoning, and the phase the run is in.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/egfinancefx/exam/internal/feedback"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	// PhaseStart collects the trader's name.
	PhaseStart Phase = iota
	// PhaseQuiz is the answering loop.
	PhaseQuiz
	// PhaseCompleted means the analysis arrived and results are showing.
	PhaseCompleted
	// PhaseBlocked means a prior completion marker was found.
	PhaseBlocked
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseQuiz:
		return "quiz"
	case PhaseCompleted:
		return "completed"
	case PhaseBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MinNameLen is the minimum trimmed length for a trader name.
const MinNameLen = 3

var (
	// ErrNameTooShort rejects names under MinNameLen trimmed characters.
	ErrNameTooShort = errors.New("name must be at least 3 characters")
	// ErrWrongPhase rejects an operation outside its phase.
	ErrWrongPhase = errors.New("not allowed in this phase")
	// ErrAlreadyCompleted rejects a second completion of the same session.
	ErrAlreadyCompleted = errors.New("session already completed")
)

// State is one trader's run. Answers, Reasoning and Attachments are keyed
// by question position; Attachments hold data URLs.
type State struct {
	ID     string
	Phase  Phase
	Name   string
	Cursor int

	Answers     map[int]int
	Reasoning   map[int]string
	Attachments map[int]string

	// Analysis is set exactly once, on completion.
	Analysis *feedback.Analysis

	// Requesting is true while the outbound analysis call is in flight.
	Requesting bool

	questionCount int
}

// New starts a fresh session over a bank of questionCount questions.
func New(questionCount int) *State {
	return &State{
		ID:            uuid.NewString(),
		Phase:         PhaseStart,
		Answers:       make(map[int]int),
		Reasoning:     make(map[int]string),
		Attachments:   make(map[int]string),
		questionCount: questionCount,
	}
}

// NewBlocked starts a session already in the blocked phase, for when a
// completion marker exists before the trader types anything.
func NewBlocked() *State {
	s := New(0)
	s.Phase = PhaseBlocked
	return s
}

// Begin records the trader's name and enters the quiz. Names shorter
// than MinNameLen after trimming are rejected.
func (s *State) Begin(name string) error {
	if s.Phase != PhaseStart {
		return fmt.Errorf("begin: %w", ErrWrongPhase)
	}
	name = strings.TrimSpace(name)
	if len([]rune(name)) < MinNameLen {
		return ErrNameTooShort
	}
	s.Name = name
	s.Phase = PhaseQuiz
	return nil
}

// SelectAnswer records the option chosen for the current question.
// Re-selecting overwrites; answers can be changed until completion.
func (s *State) SelectAnswer(option int) error {
	if s.Phase != PhaseQuiz || s.Requesting {
		return fmt.Errorf("select answer: %w", ErrWrongPhase)
	}
	if option < 0 {
		return fmt.Errorf("select answer: negative option %d", option)
	}
	s.Answers[s.Cursor] = option
	return nil
}

// SetReasoning stores free-form reasoning for the current question.
// An all-whitespace note clears any prior one.
func (s *State) SetReasoning(text string) error {
	if s.Phase != PhaseQuiz || s.Requesting {
		return fmt.Errorf("set reasoning: %w", ErrWrongPhase)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		delete(s.Reasoning, s.Cursor)
		return nil
	}
	s.Reasoning[s.Cursor] = text
	return nil
}

// Attach stores an image data URL for the current question, replacing
// any prior attachment.
func (s *State) Attach(dataURL string) error {
	if s.Phase != PhaseQuiz || s.Requesting {
		return fmt.Errorf("attach: %w", ErrWrongPhase)
	}
	s.Attachments[s.Cursor] = dataURL
	return nil
}

// ClearAttachment removes the current question's attachment.
func (s *State) ClearAttachment() error {
	if s.Phase != PhaseQuiz || s.Requesting {
		return fmt.Errorf("clear attachment: %w", ErrWrongPhase)
	}
	delete(s.Attachments, s.Cursor)
	return nil
}

// Answered reports whether the current question has a selected option.
func (s *State) Answered() bool {
	_, ok := s.Answers[s.Cursor]
	return ok
}

// OnLast reports whether the cursor sits on the final question.
func (s *State) OnLast() bool {
	return s.Cursor >= s.questionCount-1
}

// Next advances the cursor. It refuses to move past an unanswered
// question or past the end of the bank.
func (s *State) Next() error {
	if s.Phase != PhaseQuiz || s.Requesting {
		return fmt.Errorf("next: %w", ErrWrongPhase)
	}
	if !s.Answered() {
		return errors.New("answer the question before moving on")
	}
	if s.OnLast() {
		return errors.New("already on the last question")
	}
	s.Cursor++
	return nil
}

// Prev moves the cursor back one question.
func (s *State) Prev() error {
	if s.Phase != PhaseQuiz || s.Requesting {
		return fmt.Errorf("prev: %w", ErrWrongPhase)
	}
	if s.Cursor == 0 {
		return errors.New("already on the first question")
	}
	s.Cursor--
	return nil
}

// BeginRequest marks the outbound analysis call as in flight. Allowed
// only from the last question with every question answered.
func (s *State) BeginRequest() error {
	if s.Phase != PhaseQuiz {
		return fmt.Errorf("begin request: %w", ErrWrongPhase)
	}
	if s.Requesting {
		return errors.New("analysis request already in flight")
	}
	if len(s.Answers) < s.questionCount {
		return fmt.Errorf("begin request: %d of %d questions answered", len(s.Answers), s.questionCount)
	}
	s.Requesting = true
	return nil
}

// Complete stores the analysis and moves to the completed phase. A
// session completes at most once.
func (s *State) Complete(a *feedback.Analysis) error {
	if s.Phase == PhaseCompleted {
		return ErrAlreadyCompleted
	}
	if s.Phase != PhaseQuiz {
		return fmt.Errorf("complete: %w", ErrWrongPhase)
	}
	s.Analysis = a
	s.Requesting = false
	s.Phase = PhaseCompleted
	return nil
}

// RequestFailed clears the in-flight flag and leaves the session in the
// quiz phase so the trader can retry.
func (s *State) RequestFailed() {
	s.Requesting = false
}
