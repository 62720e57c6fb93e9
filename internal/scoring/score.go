package scoring

import (
	"math"

	"github.com/egfinancefx/exam/internal/quiz"
)

// Category is one of the four fixed trading-skill groupings.
type Category string

const (
	CategoryStructure    Category = "structure"
	CategoryTechnical    Category = "technical"
	CategoryRisk         Category = "risk"
	CategoryFundamentals Category = "fundamentals"
)

// Categories lists the four groupings in display order.
var Categories = []Category{
	CategoryStructure,
	CategoryTechnical,
	CategoryRisk,
	CategoryFundamentals,
}

// categoryByID is the fixed partition from question id to skill category.
// Ids absent from this table count toward the overall total only, so the
// sum of category totals may be strictly less than the question count.
// Must stay in sync with the bank.
var categoryByID = map[int]Category{
	1: CategoryStructure,
	4: CategoryStructure,
	6: CategoryStructure,
	8: CategoryStructure,
	9: CategoryStructure,

	2:  CategoryTechnical,
	5:  CategoryTechnical,
	10: CategoryTechnical,

	3: CategoryRisk,

	7: CategoryFundamentals,
}

// CategoryFor returns the category a question id belongs to, if any.
func CategoryFor(id int) (Category, bool) {
	c, ok := categoryByID[id]
	return c, ok
}

// Tally holds per-category correct/total counts.
type Tally struct {
	Correct int
	Total   int
}

// Percent returns the rounded category percentage, 0 when the tally is empty.
func (t Tally) Percent() int {
	if t.Total == 0 {
		return 0
	}
	return int(math.Round(float64(t.Correct) / float64(t.Total) * 100))
}

// Result is the derived scoring output, recomputed on every answers change.
type Result struct {
	Correct    int
	Total      int
	Percentage int
	Categories map[Category]Tally
}

// Score maps the answers mapping and the question bank to a Result.
// Answers are keyed by bank position (0-based); absence means unanswered,
// which is simply not correct.
func Score(answers map[int]int, bank []quiz.Question) Result {
	cats := make(map[Category]Tally, len(Categories))
	for _, c := range Categories {
		cats[c] = Tally{}
	}

	correct := 0
	for idx, q := range bank {
		chosen, answered := answers[idx]
		isCorrect := answered && chosen == q.CorrectAnswer
		if isCorrect {
			correct++
		}

		cat, ok := categoryByID[q.ID]
		if !ok {
			continue
		}
		tally := cats[cat]
		tally.Total++
		if isCorrect {
			tally.Correct++
		}
		cats[cat] = tally
	}

	pct := 0
	if len(bank) > 0 {
		pct = int(math.Round(float64(correct) / float64(len(bank)) * 100))
	}

	return Result{
		Correct:    correct,
		Total:      len(bank),
		Percentage: pct,
		Categories: cats,
	}
}
