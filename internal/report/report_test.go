package report

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egfinancefx/exam/internal/feedback"
	"github.com/egfinancefx/exam/internal/scoring"
)

func sampleResult() scoring.Result {
	return scoring.Result{
		Correct:    7,
		Total:      10,
		Percentage: 70,
		Categories: map[scoring.Category]scoring.Tally{
			scoring.CategoryStructure:    {Correct: 4, Total: 5},
			scoring.CategoryTechnical:    {Correct: 2, Total: 3},
			scoring.CategoryRisk:         {Correct: 1, Total: 1},
			scoring.CategoryFundamentals: {Correct: 0, Total: 1},
		},
	}
}

func TestCompose_WithAnalysis(t *testing.T) {
	a := &feedback.Analysis{
		Raw: "[LEVEL]: Intermediate\n[STRENGTHS]: Structure reads",
		Sections: map[feedback.Section]string{
			feedback.SectionLevel:     "Intermediate",
			feedback.SectionStrengths: "Structure reads",
		},
	}

	text := Compose("Sara", sampleResult(), a)

	for _, want := range []string{
		"Trader: Sara",
		"Overall accuracy: 70% (7/10)",
		"Level: Intermediate",
		"- Market Structure: 80%",
		"- Technical Analysis: 67%",
		"- Risk Management: 100%",
		"- Fundamentals: 0%",
		"[STRENGTHS]: Structure reads",
		signature,
	} {
		assert.Contains(t, text, want)
	}
}

func TestCompose_WithoutAnalysis(t *testing.T) {
	text := Compose("Omar", sampleResult(), nil)

	assert.Contains(t, text, "Level: "+pendingLevel)
	assert.Contains(t, text, pendingAnalysis)
}

func TestCompose_Deterministic(t *testing.T) {
	r := sampleResult()
	a := &feedback.Analysis{Raw: "[LEVEL]: Pro", Sections: map[feedback.Section]string{feedback.SectionLevel: "Pro"}}

	first := Compose("Sara", r, a)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Compose("Sara", r, a), "Compose must be byte-identical across calls")
	}
}

func TestCompose_CategoryOrderFixed(t *testing.T) {
	text := Compose("Sara", sampleResult(), nil)

	idx := func(s string) int { return strings.Index(text, s) }
	assert.Less(t, idx("Market Structure"), idx("Technical Analysis"))
	assert.Less(t, idx("Technical Analysis"), idx("Risk Management"))
	assert.Less(t, idx("Risk Management"), idx("Fundamentals"))
}

func TestTelegramShareURL(t *testing.T) {
	share := TelegramShareURL("my report\nwith lines & symbols")

	u, err := url.Parse(share)
	require.NoError(t, err)
	assert.Equal(t, "t.me", u.Host)
	assert.Equal(t, "/share/url", u.Path)

	q := u.Query()
	assert.Equal(t, siteURL, q.Get("url"))
	assert.Equal(t, "my report\nwith lines & symbols", q.Get("text"))
}
