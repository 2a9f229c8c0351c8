package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKeyRepo_SaveGetListDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.KeyRepo()
	ctx := context.Background()

	rec := AnswerKeyRecord{
		Name:          "2026-spring-math",
		QuestionCount: 2,
		Answers:       map[string]string{"q1": "A", "q2": "B"},
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, "2026-spring-math")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.QuestionCount != 2 || got.Answers["q1"] != "A" {
		t.Errorf("Get returned %+v", got)
	}

	// Save with the same name replaces, not duplicates.
	rec.Answers["q2"] = "C"
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("re-Save: %v", err)
	}
	keys, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("List returned %d keys, want 1", len(keys))
	}
	if keys[0].Answers["q2"] != "C" {
		t.Errorf("replacement not applied: %+v", keys[0])
	}

	if err := repo.Delete(ctx, "2026-spring-math"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "2026-spring-math"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
	if _, err := repo.Get(ctx, "2026-spring-math"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestRunRepo_SaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	run := RunRecord{
		RunID:          "run-1",
		KeyName:        "2026-spring-math",
		Source:         "results.csv",
		TotalExaminees: 3,
		QuestionCount:  10,
		TotalPairs:     3,
		TotalFlagged:   1,
		Thresholds:     Thresholds{KIndexCeiling: 0.01, HarppHoganFloor: 1.0, MinSharedWrong: 2},
	}
	pairs := []FlaggedPairRecord{
		{Rank: 0, ExamineeA: "2", ExamineeB: "3", WrongAgreements: 2, HarppHogan: 2.0, Suspicion: 1.0, Reason: "Harpp-Hogan 2.00"},
	}
	if err := repo.SaveRun(ctx, run, pairs); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, gotPairs, err := repo.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.TotalFlagged != 1 || got.Thresholds.KIndexCeiling != 0.01 {
		t.Errorf("run = %+v", got)
	}
	if len(gotPairs) != 1 || gotPairs[0].ExamineeA != "2" {
		t.Errorf("pairs = %+v", gotPairs)
	}

	runs, err := repo.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("ListRuns returned %d, want 1", len(runs))
	}

	latest, _, err := repo.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if latest.RunID != "run-1" {
		t.Errorf("LatestRun = %s", latest.RunID)
	}
}

func TestRunRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, _, err := s.RunRepo().GetRun(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRun = %v, want ErrNotFound", err)
	}
	if _, _, err := s.RunRepo().LatestRun(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("LatestRun = %v, want ErrNotFound", err)
	}
}
