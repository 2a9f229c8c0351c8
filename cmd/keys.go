package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/serkanatas/kopya/internal/exam"
	"github.com/serkanatas/kopya/internal/store"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage saved answer keys",
}

var keysImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an answer key from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open key file: %w", err)
		}
		defer f.Close()

		kf, err := exam.ParseKeyFile(f)
		if err != nil {
			return fmt.Errorf("parse key file: %w", err)
		}

		if name == "" {
			name = kf.Name
		}
		if name == "" {
			return fmt.Errorf("key file has no name; pass one with --name")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rec := store.AnswerKeyRecord{
			Name:          name,
			QuestionCount: len(kf.Answers),
			Answers:       kf.Answers,
		}
		if err := s.KeyRepo().Save(context.Background(), rec); err != nil {
			return fmt.Errorf("save key: %w", err)
		}

		fmt.Printf("Imported key %q (%d questions)\n", name, len(kf.Answers))
		return nil
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved answer keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		keys, err := s.KeyRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list keys: %w", err)
		}
		if len(keys) == 0 {
			fmt.Println("No saved keys. Import one with 'kopya keys import'.")
			return nil
		}

		fmt.Printf("%-24s  %-9s  %s\n", "Name", "Questions", "Created")
		fmt.Println(strings.Repeat("─", 56))
		for _, k := range keys {
			fmt.Printf("%-24s  %-9d  %s\n",
				truncate(k.Name, 24),
				k.QuestionCount,
				k.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

var keysShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the answers of a saved key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rec, err := s.KeyRepo().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get key: %w", err)
		}

		fmt.Printf("Key:       %s\n", rec.Name)
		fmt.Printf("Questions: %d\n", rec.QuestionCount)
		fmt.Printf("Created:   %s\n\n", rec.CreatedAt.Local().Format("2006-01-02 15:04"))

		labels := make([]string, 0, len(rec.Answers))
		for q := range rec.Answers {
			labels = append(labels, q)
		}
		sort.Slice(labels, func(i, j int) bool {
			return questionNumber(labels[i]) < questionNumber(labels[j])
		})
		for _, q := range labels {
			fmt.Printf("  %-5s %s\n", q, rec.Answers[q])
		}
		return nil
	},
}

var keysDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.KeyRepo().Delete(context.Background(), args[0]); err != nil {
			return fmt.Errorf("delete key: %w", err)
		}
		fmt.Printf("Deleted key %q\n", args[0])
		return nil
	},
}

// questionNumber extracts the number from a "qN" label for numeric sorting.
// Labels that do not parse sort last.
func questionNumber(label string) int {
	var n int
	if _, err := fmt.Sscanf(strings.ToLower(label), "q%d", &n); err != nil {
		return 1 << 30
	}
	return n
}

func init() {
	keysImportCmd.Flags().String("name", "", "name to save the key under (defaults to the file's name field)")

	keysCmd.AddCommand(keysImportCmd)
	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysShowCmd)
	keysCmd.AddCommand(keysDeleteCmd)
}
