package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/serkanatas/kopya/internal/collusion"
	"github.com/serkanatas/kopya/internal/explain"
	"github.com/serkanatas/kopya/internal/llm"
	"github.com/serkanatas/kopya/internal/store"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [run-id]",
	Short: "Explain a flagged pair in plain language",
	Long: "Generates a short narrative for one flagged pair of a saved run.\n" +
		"With an LLM provider configured (KOPYA_LLM_PROVIDER or a standard\n" +
		"API key env var) the narrative comes from the model; otherwise a\n" +
		"deterministic template is used. Defaults to the most recent run.",
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().Int("rank", 1, "Flagged pair to explain, by suspicion rank")
	explainCmd.Flags().Bool("offline", false, "Skip the LLM and use the deterministic template")
}

func runExplain(cmd *cobra.Command, args []string) error {
	rank, _ := cmd.Flags().GetInt("rank")
	offline, _ := cmd.Flags().GetBool("offline")

	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()

	var (
		run   *store.RunRecord
		pairs []store.FlaggedPairRecord
	)
	if len(args) == 1 {
		runID, err := resolveRunID(ctx, s.RunRepo(), args[0])
		if err != nil {
			return err
		}
		run, pairs, err = s.RunRepo().GetRun(ctx, runID)
		if err != nil {
			return fmt.Errorf("load run: %w", err)
		}
	} else {
		run, pairs, err = s.RunRepo().LatestRun(ctx)
		if err != nil {
			return fmt.Errorf("load latest run: %w", err)
		}
	}

	if len(pairs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Run %s has no flagged pairs.\n", shortRunID(run.RunID))
		return nil
	}
	if rank < 1 || rank > len(pairs) {
		return fmt.Errorf("rank %d out of range: run has %d flagged pairs", rank, len(pairs))
	}

	req := explainRequest(run, pairs[rank-1])

	expl, fromModel, err := generateExplanation(ctx, req, offline)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:      %s\n", shortRunID(run.RunID))
	fmt.Fprintf(out, "Pair:     %s × %s (rank %d of %d)\n", req.Pair.IDA, req.Pair.IDB, rank, len(pairs))
	fmt.Fprintf(out, "Severity: %s\n\n", expl.Severity)
	fmt.Fprintln(out, expl.Summary)
	if len(expl.Caveats) > 0 {
		fmt.Fprintln(out)
		for _, c := range expl.Caveats {
			fmt.Fprintf(out, "  • %s\n", c)
		}
	}
	if !fromModel {
		fmt.Fprintln(out, "\n(deterministic explanation; configure an LLM provider for a narrative one)")
	}
	return nil
}

// explainRequest rebuilds the explanation input from the persisted records.
func explainRequest(run *store.RunRecord, p store.FlaggedPairRecord) explain.Request {
	pair := collusion.ScoredPair{
		PairMetrics: collusion.PairMetrics{
			IDA:             p.ExamineeA,
			IDB:             p.ExamineeB,
			Agreements:      p.Agreements,
			WrongAgreements: p.WrongAgreements,
			Differences:     p.Differences,
			KIndexAB:        p.KIndexAB,
			KIndexBA:        p.KIndexBA,
			GBTZ:            p.GBTZ,
			HarppHogan:      p.HarppHogan,
			RarityScore:     p.RarityScore,
		},
		Flagged:   true,
		Suspicion: p.Suspicion,
		Reason:    p.Reason,
		Reasons:   splitReasons(p.Reason),
	}

	return explain.Request{
		Pair:           pair,
		TotalExaminees: run.TotalExaminees,
		Questions:      run.QuestionCount,
		Thresholds: collusion.Config{
			KIndexCeiling:     run.Thresholds.KIndexCeiling,
			HarppHoganFloor:   run.Thresholds.HarppHoganFloor,
			RarityFloor:       run.Thresholds.RarityFloor,
			GBTZFloor:         run.Thresholds.GBTZFloor,
			MinSharedWrong:    run.Thresholds.MinSharedWrong,
			CountBlankMatches: run.Thresholds.CountBlankMatches,
		},
	}
}

func generateExplanation(ctx context.Context, req explain.Request, offline bool) (*explain.Explanation, bool, error) {
	if offline {
		return explain.Deterministic(req), false, nil
	}

	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		return explain.Deterministic(req), false, nil
	}

	explainer := explain.NewExplainer(provider, explain.DefaultConfig())
	expl, err := explainer.Explain(ctx, req)
	if err != nil {
		return nil, false, fmt.Errorf("generate explanation: %w", err)
	}
	return expl, true, nil
}

func splitReasons(reason string) []string {
	if reason == "" {
		return nil
	}
	parts := strings.Split(reason, " | ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
