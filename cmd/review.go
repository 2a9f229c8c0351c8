package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/serkanatas/kopya/internal/app"
	"github.com/serkanatas/kopya/internal/store"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [run-id]",
	Short: "Review flagged pairs of a saved run in the terminal UI",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		var runID string
		if len(args) == 1 {
			runID, err = resolveRunID(cmd.Context(), s.RunRepo(), args[0])
			if err != nil {
				return err
			}
		}

		return app.Run(s, runID)
	},
}

// resolveRunID expands a run ID prefix (as printed by 'kopya runs') to the
// full ID. Ambiguous prefixes are an error.
func resolveRunID(ctx context.Context, repo store.RunRepo, prefix string) (string, error) {
	runs, err := repo.ListRuns(ctx, 0)
	if err != nil {
		return "", fmt.Errorf("list runs: %w", err)
	}

	var match string
	for _, r := range runs {
		if !strings.HasPrefix(r.RunID, prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("run ID %q is ambiguous", prefix)
		}
		match = r.RunID
	}
	if match == "" {
		return "", fmt.Errorf("no run matches %q", prefix)
	}
	return match, nil
}
