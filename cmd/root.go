package cmd

import (
	"github.com/serkanatas/kopya/internal/app"
	"github.com/serkanatas/kopya/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kopya",
	Short: "Answer-copying detection for multiple-choice exams",
	Long: "Kopya analyzes OMR exam results for statistically improbable answer\n" +
		"similarity between examinee pairs: K-index, GBT z-score, Harpp-Hogan\n" +
		"ratio, and rarity-weighted shared wrong answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return app.Run(s, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOPYA_DB env var)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using the --db flag first,
// then KOPYA_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
