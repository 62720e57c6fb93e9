package scoring

import (
	"testing"

	"github.com/egfinancefx/exam/internal/quiz"
)

func testBank() []quiz.Question {
	return []quiz.Question{
		{ID: 1, Options: []string{"a", "b", "c"}, CorrectAnswer: 0}, // structure
		{ID: 2, Options: []string{"a", "b"}, CorrectAnswer: 1},      // technical
		{ID: 3, Options: []string{"a", "b"}, CorrectAnswer: 0},      // risk
		{ID: 7, Options: []string{"a", "b"}, CorrectAnswer: 1},      // fundamentals
		{ID: 99, Options: []string{"a", "b"}, CorrectAnswer: 0},     // outside the partition
	}
}

func TestScore_Empty(t *testing.T) {
	res := Score(nil, testBank())

	if res.Correct != 0 {
		t.Errorf("Correct = %d, want 0", res.Correct)
	}
	if res.Percentage != 0 {
		t.Errorf("Percentage = %d, want 0", res.Percentage)
	}
	for _, c := range Categories {
		if res.Categories[c].Correct != 0 {
			t.Errorf("%s.Correct = %d, want 0", c, res.Categories[c].Correct)
		}
	}
}

func TestScore_AllCorrect(t *testing.T) {
	answers := map[int]int{0: 0, 1: 1, 2: 0, 3: 1, 4: 0}
	res := Score(answers, testBank())

	if res.Correct != 5 {
		t.Errorf("Correct = %d, want 5", res.Correct)
	}
	if res.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", res.Percentage)
	}
}

func TestScore_Partial(t *testing.T) {
	// Correct on structure and risk, wrong on technical, fundamentals unanswered.
	answers := map[int]int{0: 0, 1: 0, 2: 0}
	res := Score(answers, testBank())

	if res.Correct != 2 {
		t.Fatalf("Correct = %d, want 2", res.Correct)
	}
	if res.Percentage != 40 {
		t.Errorf("Percentage = %d, want 40", res.Percentage)
	}

	want := map[Category]Tally{
		CategoryStructure:    {Correct: 1, Total: 1},
		CategoryTechnical:    {Correct: 0, Total: 1},
		CategoryRisk:         {Correct: 1, Total: 1},
		CategoryFundamentals: {Correct: 0, Total: 1},
	}
	for c, w := range want {
		if res.Categories[c] != w {
			t.Errorf("%s = %+v, want %+v", c, res.Categories[c], w)
		}
	}
}

func TestScore_OutsidePartitionCountsOverallOnly(t *testing.T) {
	res := Score(map[int]int{4: 0}, testBank())

	if res.Correct != 1 {
		t.Fatalf("Correct = %d, want 1", res.Correct)
	}

	catTotal := 0
	for _, tally := range res.Categories {
		catTotal += tally.Total
	}
	if catTotal >= res.Total {
		t.Errorf("sum of category totals = %d, want < %d", catTotal, res.Total)
	}
}

func TestScore_FullBankPartition(t *testing.T) {
	bank, err := quiz.Bank()
	if err != nil {
		t.Fatalf("Bank() error: %v", err)
	}

	res := Score(nil, bank)

	// Every id in the shipped bank falls into exactly one category.
	catTotal := 0
	for _, tally := range res.Categories {
		catTotal += tally.Total
	}
	if catTotal != len(bank) {
		t.Errorf("sum of category totals = %d, want %d", catTotal, len(bank))
	}
	if res.Categories[CategoryStructure].Total != 5 {
		t.Errorf("structure total = %d, want 5", res.Categories[CategoryStructure].Total)
	}
	if res.Categories[CategoryTechnical].Total != 3 {
		t.Errorf("technical total = %d, want 3", res.Categories[CategoryTechnical].Total)
	}
	if res.Categories[CategoryRisk].Total != 1 {
		t.Errorf("risk total = %d, want 1", res.Categories[CategoryRisk].Total)
	}
	if res.Categories[CategoryFundamentals].Total != 1 {
		t.Errorf("fundamentals total = %d, want 1", res.Categories[CategoryFundamentals].Total)
	}
}

func TestRoundedPercentage(t *testing.T) {
	bank := []quiz.Question{
		{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: 0},
		{ID: 2, Options: []string{"a", "b"}, CorrectAnswer: 0},
		{ID: 3, Options: []string{"a", "b"}, CorrectAnswer: 0},
	}
	res := Score(map[int]int{0: 0}, bank)
	if res.Percentage != 33 {
		t.Errorf("Percentage = %d, want 33", res.Percentage)
	}

	res = Score(map[int]int{0: 0, 1: 0}, bank)
	if res.Percentage != 67 {
		t.Errorf("Percentage = %d, want 67", res.Percentage)
	}
}
