package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egfinancefx/exam/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the completion record and allow a fresh attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		markers := st.MarkerRepo()
		marker, err := markers.Get(ctx)
		if err != nil {
			return err
		}
		if marker == nil {
			fmt.Println("No completion record found.")
			return nil
		}

		if err := markers.Clear(ctx); err != nil {
			return err
		}
		fmt.Printf("Cleared completion record for %s (%s).\n",
			marker.Name, marker.Date.Local().Format("2 Jan 2006"))
		return nil
	},
}
