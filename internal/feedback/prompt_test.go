package feedback

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/egfinancefx/exam/internal/llm"
	"github.com/egfinancefx/exam/internal/quiz"
)

func promptQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:            1,
			Text:          "Price sweeps the prior low and closes back inside the range. What happened?",
			Options:       []string{"A breakout", "A liquidity sweep", "A trend change"},
			CorrectAnswer: 1,
		},
		{
			ID:            2,
			Text:          "Where does an order block form?",
			Options:       []string{"At the last opposing candle before displacement", "At the session open"},
			CorrectAnswer: 0,
		},
	}
}

func TestBuildRequest_TranscriptLines(t *testing.T) {
	req := BuildRequest(Transcript{
		Name:      "Sara",
		Questions: promptQuestions(),
		Answers:   map[int]int{0: 1},
		Reasoning: map[int]string{0: "Stops below the low were taken before the reversal."},
	}, 0.4, 0.8)

	if len(req.Parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(req.Parts))
	}
	prompt := req.Parts[0].Text

	if !strings.Contains(prompt, "Trader's answer: A liquidity sweep") {
		t.Error("selected option text missing from transcript")
	}
	if !strings.Contains(prompt, "Result: Correct") {
		t.Error("correct result label missing")
	}
	if !strings.Contains(prompt, "Trader's reasoning: Stops below the low were taken before the reversal.") {
		t.Error("reasoning line missing")
	}
	if !strings.Contains(prompt, "Trader's answer: "+noAnswer) {
		t.Error("unanswered placeholder missing for skipped question")
	}
	if strings.Count(prompt, "Trader's reasoning:") != 1 {
		t.Error("reasoning line should only appear where reasoning was written")
	}
	if !strings.Contains(prompt, "trader named Sara") {
		t.Error("trader name missing from instructions")
	}
	for _, tag := range []string{"[LEVEL]", "[STRENGTHS]", "[WEAKNESSES]", "[ROADMAP]", "[PSYCHOLOGY]"} {
		if !strings.Contains(prompt, tag) {
			t.Errorf("instructions missing %s tag", tag)
		}
	}
	if req.Temperature != 0.4 || req.TopP != 0.8 {
		t.Errorf("sampling = (%v, %v), want (0.4, 0.8)", req.Temperature, req.TopP)
	}
}

func TestBuildRequest_UnansweredIsIncorrect(t *testing.T) {
	req := BuildRequest(Transcript{
		Name:      "Omar",
		Questions: promptQuestions()[:1],
	}, 0.4, 0.8)

	prompt := req.Parts[0].Text
	if !strings.Contains(prompt, "Result: Incorrect") {
		t.Error("unanswered question should read as incorrect")
	}
}

func TestBuildRequest_AttachmentsAndMalformedDrop(t *testing.T) {
	valid := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("chart"))
	req := BuildRequest(Transcript{
		Name:      "Sara",
		Questions: promptQuestions(),
		Answers:   map[int]int{0: 1, 1: 0},
		Attachments: map[int]string{
			0: valid,
			1: "data:image/png;base64,%%%not-base64%%%",
		},
	}, 0.4, 0.8)

	if len(req.Parts) != 2 {
		t.Fatalf("parts = %d, want text + one valid image", len(req.Parts))
	}
	img := req.Parts[1]
	if img.IsText() {
		t.Fatal("second part should be image data")
	}
	if img.MediaType != "image/png" {
		t.Errorf("media type = %q", img.MediaType)
	}
	if string(img.Data) != "chart" {
		t.Errorf("payload = %q", img.Data)
	}
}

func TestService_AnalyzeParsesReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "[LEVEL]: Intermediate\n[STRENGTHS]: Structure reads\n[WEAKNESSES]: Sizing\n[ROADMAP]: Journal daily\n[PSYCHOLOGY]: Patient",
	})
	svc := NewService(mock, llm.DefaultConfig())

	a, err := svc.Analyze(context.Background(), Transcript{
		Name:      "Sara",
		Questions: promptQuestions(),
		Answers:   map[int]int{0: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Get(SectionLevel) != "Intermediate" {
		t.Errorf("LEVEL = %q", a.Get(SectionLevel))
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want exactly one outbound request", mock.CallCount())
	}
}

func TestService_AnalyzePropagatesFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, llm.DefaultConfig())

	if _, err := svc.Analyze(context.Background(), Transcript{Questions: promptQuestions()}); err == nil {
		t.Fatal("expected error")
	}
}
