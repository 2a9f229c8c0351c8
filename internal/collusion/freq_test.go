package collusion

import (
	"math"
	"testing"

	"github.com/serkanatas/kopya/internal/exam"
)

func buildFixture(t *testing.T, questions []string, rawKey map[string]any, rows []exam.Row) (*exam.ResponseTable, *exam.AnswerKey) {
	t.Helper()
	key, err := exam.BuildKey(questions, rawKey)
	if err != nil {
		t.Fatalf("BuildKey: %v", err)
	}
	table, err := exam.BuildTable(rows, len(questions))
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	return table, key
}

func TestEstimateFrequencies_BlankIsACategory(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1"}, map[string]any{"q1": "A"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A"}},
			{ID: "2", Cells: []any{"B"}},
			{ID: "3", Cells: []any{"-"}},
			{ID: "4", Cells: []any{"B"}},
		})

	f := EstimateFrequencies(table, key)
	if got := f.Prob(0, "A"); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Prob(A) = %g, want 0.25", got)
	}
	if got := f.Prob(0, "B"); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Prob(B) = %g, want 0.5", got)
	}
	// Blanks divide by the total examinee count, not the answered count.
	if got := f.Prob(0, exam.Blank); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Prob(blank) = %g, want 0.25", got)
	}
	if got := f.Prob(0, "Z"); got != 0 {
		t.Errorf("Prob(unseen) = %g, want 0", got)
	}
}

func TestEstimateFrequencies_InvalidQuestionSkipped(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1", "q2"}, map[string]any{"q1": "A", "q2": "-"},
		[]exam.Row{{ID: "1", Cells: []any{"A", "B"}}})

	f := EstimateFrequencies(table, key)
	if got := f.Prob(1, "B"); got != 0 {
		t.Errorf("invalid question Prob = %g, want 0", got)
	}
	if got := f.MatchProb(1, true); got != 0 {
		t.Errorf("invalid question MatchProb = %g, want 0", got)
	}
}

func TestMatchProb_BlankExclusion(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1"}, map[string]any{"q1": "A"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A"}},
			{ID: "2", Cells: []any{"-"}},
		})

	f := EstimateFrequencies(table, key)
	withBlank := f.MatchProb(0, true)
	withoutBlank := f.MatchProb(0, false)
	if math.Abs(withBlank-0.5) > 1e-12 {
		t.Errorf("MatchProb incl blank = %g, want 0.5", withBlank)
	}
	if math.Abs(withoutBlank-0.25) > 1e-12 {
		t.Errorf("MatchProb excl blank = %g, want 0.25", withoutBlank)
	}
}
