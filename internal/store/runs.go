package store

import (
	"context"
	"fmt"

	"github.com/serkanatas/kopya/ent"
	"github.com/serkanatas/kopya/ent/analysisrun"
	"github.com/serkanatas/kopya/ent/flaggedpair"
	entschema "github.com/serkanatas/kopya/ent/schema"
)

type runRepo struct {
	client *ent.Client
}

func (r *runRepo) SaveRun(ctx context.Context, run RunRecord, pairs []FlaggedPairRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.AnalysisRun.Create().
		SetRunID(run.RunID).
		SetKeyName(run.KeyName).
		SetSource(run.Source).
		SetTotalExaminees(run.TotalExaminees).
		SetQuestionCount(run.QuestionCount).
		SetTotalPairs(run.TotalPairs).
		SetTotalFlagged(run.TotalFlagged).
		SetThresholds(entschema.ThresholdSnapshot{
			KIndexCeiling:     run.Thresholds.KIndexCeiling,
			HarppHoganFloor:   run.Thresholds.HarppHoganFloor,
			RarityFloor:       run.Thresholds.RarityFloor,
			GBTZFloor:         run.Thresholds.GBTZFloor,
			MinSharedWrong:    run.Thresholds.MinSharedWrong,
			CountBlankMatches: run.Thresholds.CountBlankMatches,
		}).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save run %s: %w", run.RunID, err)
	}

	bulk := make([]*ent.FlaggedPairCreate, len(pairs))
	for i, p := range pairs {
		bulk[i] = tx.FlaggedPair.Create().
			SetRunID(run.RunID).
			SetRank(p.Rank).
			SetExamineeA(p.ExamineeA).
			SetExamineeB(p.ExamineeB).
			SetAgreements(p.Agreements).
			SetWrongAgreements(p.WrongAgreements).
			SetDifferences(p.Differences).
			SetKIndexAb(p.KIndexAB).
			SetKIndexBa(p.KIndexBA).
			SetGbtZ(p.GBTZ).
			SetHarppHogan(p.HarppHogan).
			SetRarityScore(p.RarityScore).
			SetSuspicion(p.Suspicion).
			SetReason(p.Reason)
	}
	if _, err := tx.FlaggedPair.CreateBulk(bulk...).Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("save flagged pairs for run %s: %w", run.RunID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", run.RunID, err)
	}
	return nil
}

func (r *runRepo) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := r.client.AnalysisRun.Query().
		Order(ent.Desc(analysisrun.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	records := make([]RunRecord, len(rows))
	for i, row := range rows {
		records[i] = runRecord(row)
	}
	return records, nil
}

func (r *runRepo) GetRun(ctx context.Context, runID string) (*RunRecord, []FlaggedPairRecord, error) {
	row, err := r.client.AnalysisRun.Query().
		Where(analysisrun.RunID(runID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil, fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return r.withPairs(ctx, row)
}

func (r *runRepo) LatestRun(ctx context.Context) (*RunRecord, []FlaggedPairRecord, error) {
	row, err := r.client.AnalysisRun.Query().
		Order(ent.Desc(analysisrun.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("latest run: %w", err)
	}
	return r.withPairs(ctx, row)
}

func (r *runRepo) withPairs(ctx context.Context, row *ent.AnalysisRun) (*RunRecord, []FlaggedPairRecord, error) {
	pairRows, err := r.client.FlaggedPair.Query().
		Where(flaggedpair.RunID(row.RunID)).
		Order(ent.Asc(flaggedpair.FieldRank)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("pairs for run %s: %w", row.RunID, err)
	}

	pairs := make([]FlaggedPairRecord, len(pairRows))
	for i, p := range pairRows {
		pairs[i] = FlaggedPairRecord{
			Rank:            p.Rank,
			ExamineeA:       p.ExamineeA,
			ExamineeB:       p.ExamineeB,
			Agreements:      p.Agreements,
			WrongAgreements: p.WrongAgreements,
			Differences:     p.Differences,
			KIndexAB:        p.KIndexAb,
			KIndexBA:        p.KIndexBa,
			GBTZ:            p.GbtZ,
			HarppHogan:      p.HarppHogan,
			RarityScore:     p.RarityScore,
			Suspicion:       p.Suspicion,
			Reason:          p.Reason,
		}
	}

	rec := runRecord(row)
	return &rec, pairs, nil
}

func runRecord(row *ent.AnalysisRun) RunRecord {
	return RunRecord{
		RunID:          row.RunID,
		KeyName:        row.KeyName,
		Source:         row.Source,
		TotalExaminees: row.TotalExaminees,
		QuestionCount:  row.QuestionCount,
		TotalPairs:     row.TotalPairs,
		TotalFlagged:   row.TotalFlagged,
		Thresholds: Thresholds{
			KIndexCeiling:     row.Thresholds.KIndexCeiling,
			HarppHoganFloor:   row.Thresholds.HarppHoganFloor,
			RarityFloor:       row.Thresholds.RarityFloor,
			GBTZFloor:         row.Thresholds.GBTZFloor,
			MinSharedWrong:    row.Thresholds.MinSharedWrong,
			CountBlankMatches: row.Thresholds.CountBlankMatches,
		},
		CreatedAt: row.CreatedAt,
	}
}
