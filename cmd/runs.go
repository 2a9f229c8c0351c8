package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List saved analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runs, err := s.RunRepo().ListRuns(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No saved runs. Run 'kopya analyze --save' first.")
			return nil
		}

		fmt.Printf("%-8s  %-16s  %-24s  %-9s  %-7s  %s\n",
			"Run", "Created", "Key", "Examinees", "Flagged", "Source")
		fmt.Println(strings.Repeat("─", 92))
		for _, r := range runs {
			fmt.Printf("%-8s  %-16s  %-24s  %-9d  %-7d  %s\n",
				shortRunID(r.RunID),
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				truncate(r.KeyName, 24),
				r.TotalExaminees,
				r.TotalFlagged,
				r.Source,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().Int("limit", 20, "maximum runs to list (0 for all)")
}
