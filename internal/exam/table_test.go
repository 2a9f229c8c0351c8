package exam

import (
	"errors"
	"testing"
)

func TestBuildTable_Normalizes(t *testing.T) {
	table, err := BuildTable([]Row{
		{ID: "1001", Cells: []any{"a", " b ", "-"}},
		{ID: "1002", Cells: []any{"C", nil, "*"}},
	}, 3)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if got := table.Examinees[0].Answers; got[0] != "A" || got[1] != "B" || got[2] != Blank {
		t.Errorf("row 0 answers = %v", got)
	}
	if got := table.Examinees[1].Answers; got[0] != "C" || got[1] != Blank || got[2] != Blank {
		t.Errorf("row 1 answers = %v", got)
	}
}

func TestBuildTable_EmptyIDBecomesUnknown(t *testing.T) {
	table, err := BuildTable([]Row{{Cells: []any{"A"}}}, 1)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if table.Examinees[0].ID != "unknown" {
		t.Errorf("ID = %q, want unknown", table.Examinees[0].ID)
	}
}

func TestBuildTable_RaggedRow(t *testing.T) {
	_, err := BuildTable([]Row{
		{ID: "1001", Cells: []any{"A", "B"}},
		{ID: "1002", Cells: []any{"A"}},
	}, 2)
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DataError", err)
	}
}

func TestBuildTable_Empty(t *testing.T) {
	_, err := BuildTable(nil, 3)
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DataError", err)
	}
}

func TestScore_CountsOnlyValidQuestions(t *testing.T) {
	key, err := BuildKey([]string{"q1", "q2", "q3", "q4"}, map[string]any{
		"q1": "A", "q2": "B", "q3": "-", "q4": "D",
	})
	if err != nil {
		t.Fatalf("BuildKey: %v", err)
	}
	table, err := BuildTable([]Row{
		{ID: "s1", Cells: []any{"A", "X", "C", ""}},
	}, 4)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if err := table.Score(key); err != nil {
		t.Fatalf("Score: %v", err)
	}

	e := table.Examinees[0]
	if e.Correct != 1 {
		t.Errorf("Correct = %d, want 1", e.Correct)
	}
	if e.Wrong != 1 {
		t.Errorf("Wrong = %d, want 1 (q3 is unscoreable)", e.Wrong)
	}
	if e.Blank != 1 {
		t.Errorf("Blank = %d, want 1", e.Blank)
	}
}

func TestScore_KeyShapeMismatch(t *testing.T) {
	key, _ := BuildKey([]string{"q1"}, map[string]any{"q1": "A"})
	table, _ := BuildTable([]Row{{ID: "s1", Cells: []any{"A", "B"}}}, 2)
	if err := table.Score(key); err == nil {
		t.Fatal("expected shape mismatch error")
	}
}
