// Package report renders a completed assessment as shareable plain text
// and hands it to outbound sinks (clipboard, Telegram share link).
package report

import (
	"fmt"
	"strings"

	"github.com/egfinancefx/exam/internal/feedback"
	"github.com/egfinancefx/exam/internal/scoring"
)

// labels maps each skill category to its display name in the report.
var labels = map[scoring.Category]string{
	scoring.CategoryStructure:    "Market Structure",
	scoring.CategoryTechnical:    "Technical Analysis",
	scoring.CategoryRisk:         "Risk Management",
	scoring.CategoryFundamentals: "Fundamentals",
}

// Label returns the display name for a category.
func Label(c scoring.Category) string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

const (
	header    = "Trading Skills Assessment — Results"
	signature = "EG Finance FX — Trading Skills Assessment"

	pendingLevel    = "Pending analysis"
	pendingAnalysis = "Analysis not available."
)

// Compose renders the fixed plain-text report. The same inputs always
// produce the same bytes, so re-sharing never drifts.
func Compose(name string, result scoring.Result, analysis *feedback.Analysis) string {
	var b strings.Builder

	b.WriteString(header + "\n\n")
	fmt.Fprintf(&b, "Trader: %s\n", name)
	fmt.Fprintf(&b, "Overall accuracy: %d%% (%d/%d)\n", result.Percentage, result.Correct, result.Total)

	level := pendingLevel
	if analysis.Has(feedback.SectionLevel) {
		level = analysis.Get(feedback.SectionLevel)
	}
	fmt.Fprintf(&b, "Level: %s\n", level)

	b.WriteString("\nSkill breakdown:\n")
	for _, c := range scoring.Categories {
		fmt.Fprintf(&b, "- %s: %d%%\n", Label(c), result.Categories[c].Percent())
	}

	b.WriteString("\nMentor analysis:\n")
	if analysis != nil && analysis.Raw != "" {
		b.WriteString(analysis.Raw + "\n")
	} else {
		b.WriteString(pendingAnalysis + "\n")
	}

	b.WriteString("\n" + signature + "\n")
	return b.String()
}
