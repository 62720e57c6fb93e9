package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egfinancefx/exam/internal/quiz"
	"github.com/egfinancefx/exam/internal/scoring"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.Bank()
		if err != nil {
			return err
		}

		for i, q := range bank {
			cat := "general"
			if c, ok := scoring.CategoryFor(q.ID); ok {
				cat = string(c)
			}
			fmt.Printf("%2d. [%s] %s\n", i+1, cat, q.Text)
			for j, opt := range q.Options {
				fmt.Printf("      %c) %s\n", 'A'+j, opt)
			}
			if q.RequiresReasoning {
				fmt.Println("      (asks for reasoning)")
			}
		}
		return nil
	},
}
