package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/serkanatas/kopya/internal/collusion"
	"github.com/serkanatas/kopya/internal/exam"
	"github.com/serkanatas/kopya/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <results.csv>",
	Short: "Analyze a results CSV for answer-copying signals",
	Long: "Reads a response sheet (columns q1, q2, ... plus an ID column),\n" +
		"scores it against an answer key, and reports examinee pairs whose\n" +
		"answer similarity is statistically improbable.",
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("key", "", "Name of a saved answer key")
	analyzeCmd.Flags().String("key-file", "", "Path to a JSON answer key file")
	analyzeCmd.Flags().Bool("save", false, "Persist the run for later review")
	analyzeCmd.Flags().Bool("all", false, "Print every pair, not only flagged ones")
	analyzeCmd.Flags().Bool("json", false, "Emit the report as JSON")

	cfg := collusion.DefaultConfig()
	analyzeCmd.Flags().Float64("k-index", cfg.KIndexCeiling, "Flag pairs with K-index below this value")
	analyzeCmd.Flags().Float64("harpp-hogan", cfg.HarppHoganFloor, "Flag pairs with Harpp-Hogan ratio at or above this value")
	analyzeCmd.Flags().Float64("rarity", cfg.RarityFloor, "Flag pairs with rarity score at or above this value")
	analyzeCmd.Flags().Float64("gbt-z", cfg.GBTZFloor, "Report GBT z-scores at or above this value")
	analyzeCmd.Flags().Int("min-shared-wrong", cfg.MinSharedWrong, "Minimum identical wrong answers before K-index and Harpp-Hogan can flag")
	analyzeCmd.Flags().Bool("count-blank-matches", cfg.CountBlankMatches, "Count shared blanks as agreement")
	analyzeCmd.Flags().Int("workers", 0, "Pair comparison workers (0 = number of CPUs)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	keyName, _ := cmd.Flags().GetString("key")
	keyFile, _ := cmd.Flags().GetString("key-file")
	if (keyName == "") == (keyFile == "") {
		return fmt.Errorf("exactly one of --key or --key-file is required")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	sheet, err := exam.LoadCSV(f)
	if err != nil {
		return fmt.Errorf("parse results: %w", err)
	}

	key, keyLabel, err := loadKey(cmd, sheet.Questions, keyName, keyFile)
	if err != nil {
		return err
	}

	table, err := exam.BuildTable(sheet.Rows, len(sheet.Questions))
	if err != nil {
		return fmt.Errorf("build response table: %w", err)
	}

	cfg := configFromFlags(cmd)
	engine, err := collusion.NewEngine(table, key, cfg)
	if err != nil {
		return fmt.Errorf("prepare analysis: %w", err)
	}
	report := engine.Run()

	asJSON, _ := cmd.Flags().GetBool("json")
	showAll, _ := cmd.Flags().GetBool("all")
	if asJSON {
		if err := printReportJSON(cmd, report, showAll); err != nil {
			return err
		}
	} else {
		printReport(cmd, report, showAll)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		runID, err := saveRun(cmd, report, keyLabel, args[0], len(sheet.Questions))
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved run %s (review with 'kopya review %s')\n", runID, shortRunID(runID))
	}

	return nil
}

// loadKey resolves the answer key from the store or from a JSON file.
func loadKey(cmd *cobra.Command, questions []string, keyName, keyFile string) (*exam.AnswerKey, string, error) {
	if keyFile != "" {
		kf, err := openKeyFile(keyFile)
		if err != nil {
			return nil, "", err
		}
		key, err := kf.BuildKey(questions)
		if err != nil {
			return nil, "", fmt.Errorf("build answer key: %w", err)
		}
		label := kf.Name
		if label == "" {
			label = keyFile
		}
		return key, label, nil
	}

	s, err := openStore(cmd)
	if err != nil {
		return nil, "", fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	rec, err := s.KeyRepo().Get(context.Background(), keyName)
	if err != nil {
		return nil, "", err
	}

	raw := make(map[string]any, len(rec.Answers))
	for q, a := range rec.Answers {
		raw[strings.ToLower(q)] = a
	}
	key, err := exam.BuildKey(questions, raw)
	if err != nil {
		return nil, "", fmt.Errorf("build answer key: %w", err)
	}
	return key, rec.Name, nil
}

func openKeyFile(path string) (*exam.KeyFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}
	defer f.Close()
	return exam.ParseKeyFile(f)
}

func configFromFlags(cmd *cobra.Command) collusion.Config {
	cfg := collusion.DefaultConfig()
	cfg.KIndexCeiling, _ = cmd.Flags().GetFloat64("k-index")
	cfg.HarppHoganFloor, _ = cmd.Flags().GetFloat64("harpp-hogan")
	cfg.RarityFloor, _ = cmd.Flags().GetFloat64("rarity")
	cfg.GBTZFloor, _ = cmd.Flags().GetFloat64("gbt-z")
	cfg.MinSharedWrong, _ = cmd.Flags().GetInt("min-shared-wrong")
	cfg.CountBlankMatches, _ = cmd.Flags().GetBool("count-blank-matches")
	cfg.Workers, _ = cmd.Flags().GetInt("workers")
	return cfg
}

func printReport(cmd *cobra.Command, report *collusion.Report, showAll bool) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%d examinees, %d pairs compared, %d flagged\n\n",
		report.TotalExaminees, report.TotalPairs, report.TotalFlagged)

	pairs := report.Flagged()
	if showAll {
		pairs = report.Pairs
	}
	if len(pairs) == 0 {
		fmt.Fprintln(out, "No suspicious pairs.")
		return
	}

	fmt.Fprintf(out, "%-4s  %-10s  %-10s  %-9s  %-9s  %-6s  %-6s  %-6s  %s\n",
		"#", "A", "B", "Susp", "K-index", "HH", "Rarity", "GBT-z", "Reasons")
	fmt.Fprintln(out, strings.Repeat("─", 96))

	for i, p := range pairs {
		reason := p.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Fprintf(out, "%-4d  %-10s  %-10s  %-9.2f  %-9.4g  %-6.2f  %-6.2f  %-6.2f  %s\n",
			i+1, truncate(p.IDA, 10), truncate(p.IDB, 10),
			p.Suspicion, p.MinKIndex(), p.HarppHogan, p.RarityScore, p.GBTZ, reason)
	}
}

func printReportJSON(cmd *cobra.Command, report *collusion.Report, showAll bool) error {
	type jsonPair struct {
		ExamineeA       string   `json:"examinee_a"`
		ExamineeB       string   `json:"examinee_b"`
		Agreements      int      `json:"agreements"`
		WrongAgreements int      `json:"wrong_agreements"`
		Differences     int      `json:"differences"`
		KIndexAB        float64  `json:"k_index_ab"`
		KIndexBA        float64  `json:"k_index_ba"`
		GBTZ            float64  `json:"gbt_z"`
		HarppHogan      float64  `json:"harpp_hogan"`
		RarityScore     float64  `json:"rarity_score"`
		Flagged         bool     `json:"flagged"`
		Suspicion       float64  `json:"suspicion"`
		Reasons         []string `json:"reasons,omitempty"`
	}
	type jsonReport struct {
		TotalExaminees int        `json:"total_examinees"`
		TotalPairs     int        `json:"total_pairs"`
		TotalFlagged   int        `json:"total_flagged"`
		Pairs          []jsonPair `json:"pairs"`
	}

	pairs := report.Flagged()
	if showAll {
		pairs = report.Pairs
	}

	out := jsonReport{
		TotalExaminees: report.TotalExaminees,
		TotalPairs:     report.TotalPairs,
		TotalFlagged:   report.TotalFlagged,
		Pairs:          make([]jsonPair, len(pairs)),
	}
	for i, p := range pairs {
		out.Pairs[i] = jsonPair{
			ExamineeA:       p.IDA,
			ExamineeB:       p.IDB,
			Agreements:      p.Agreements,
			WrongAgreements: p.WrongAgreements,
			Differences:     p.Differences,
			KIndexAB:        p.KIndexAB,
			KIndexBA:        p.KIndexBA,
			GBTZ:            p.GBTZ,
			HarppHogan:      p.HarppHogan,
			RarityScore:     p.RarityScore,
			Flagged:         p.Flagged,
			Suspicion:       p.Suspicion,
			Reasons:         p.Reasons,
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func saveRun(cmd *cobra.Command, report *collusion.Report, keyLabel, source string, questions int) (string, error) {
	s, err := openStore(cmd)
	if err != nil {
		return "", err
	}
	defer s.Close()

	runID := uuid.NewString()
	run := store.RunRecord{
		RunID:          runID,
		KeyName:        keyLabel,
		Source:         source,
		TotalExaminees: report.TotalExaminees,
		QuestionCount:  questions,
		TotalPairs:     report.TotalPairs,
		TotalFlagged:   report.TotalFlagged,
		Thresholds: store.Thresholds{
			KIndexCeiling:     report.Config.KIndexCeiling,
			HarppHoganFloor:   report.Config.HarppHoganFloor,
			RarityFloor:       report.Config.RarityFloor,
			GBTZFloor:         report.Config.GBTZFloor,
			MinSharedWrong:    report.Config.MinSharedWrong,
			CountBlankMatches: report.Config.CountBlankMatches,
		},
	}

	flagged := report.Flagged()
	pairs := make([]store.FlaggedPairRecord, len(flagged))
	for i, p := range flagged {
		pairs[i] = store.FlaggedPairRecord{
			Rank:            i,
			ExamineeA:       p.IDA,
			ExamineeB:       p.IDB,
			Agreements:      p.Agreements,
			WrongAgreements: p.WrongAgreements,
			Differences:     p.Differences,
			KIndexAB:        p.KIndexAB,
			KIndexBA:        p.KIndexBA,
			GBTZ:            p.GBTZ,
			HarppHogan:      p.HarppHogan,
			RarityScore:     p.RarityScore,
			Suspicion:       p.Suspicion,
			Reason:          p.Reason,
		}
	}

	if err := s.RunRepo().SaveRun(context.Background(), run, pairs); err != nil {
		return "", err
	}
	return runID, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
