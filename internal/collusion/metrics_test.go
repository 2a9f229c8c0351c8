package collusion

import (
	"math"
	"testing"

	"github.com/serkanatas/kopya/internal/exam"
)

func TestKIndex_NoEvidenceIsOne(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1", "q2"}, map[string]any{"q1": "A", "q2": "B"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A", "B"}}, // all correct
			{ID: "2", Cells: []any{"X", "Y"}},
		})
	f := EstimateFrequencies(table, key)
	a := table.Examinees[0].Answers
	b := table.Examinees[1].Answers

	// Source has no wrong answers: K must be 1.
	if got := kIndex(b, a, key.Valid, key, f); got != 1.0 {
		t.Errorf("K with clean source = %g, want 1", got)
	}
	// Copier matches none of the source's wrong answers: K must be 1.
	if got := kIndex(a, b, key.Valid, key, f); got != 1.0 {
		t.Errorf("K with zero matches = %g, want 1", got)
	}
}

func TestKIndex_Bounds(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1", "q2", "q3"}, map[string]any{"q1": "A", "q2": "B", "q3": "C"},
		[]exam.Row{
			{ID: "1", Cells: []any{"X", "Y", "C"}},
			{ID: "2", Cells: []any{"X", "Y", "Z"}},
			{ID: "3", Cells: []any{"A", "B", "C"}},
		})
	f := EstimateFrequencies(table, key)
	for i := range table.Examinees {
		for j := range table.Examinees {
			if i == j {
				continue
			}
			got := kIndex(table.Examinees[i].Answers, table.Examinees[j].Answers, key.Valid, key, f)
			if got < 0 || got > 1 {
				t.Errorf("kIndex(%d, %d) = %g, out of [0, 1]", i, j, got)
			}
		}
	}
}

func TestKIndex_BlankSourceAnswersExcluded(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1", "q2"}, map[string]any{"q1": "A", "q2": "B"},
		[]exam.Row{
			{ID: "1", Cells: []any{"-", "X"}},
			{ID: "2", Cells: []any{"-", "X"}},
		})
	f := EstimateFrequencies(table, key)
	a := table.Examinees[0].Answers
	b := table.Examinees[1].Answers

	// Only q2 is in the source's wrong set; the blank on q1 is not a
	// wrong answer and a blank-blank match is no evidence.
	got := kIndex(a, b, key.Valid, key, f)
	want := binomSF(1, 1, 1.0) // both examinees chose X on q2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("kIndex = %g, want %g", got, want)
	}
}

func TestGBTZ_DegenerateVarianceIsZero(t *testing.T) {
	// Single question, everyone answers the same: p_match = 1, Var = 0.
	table, key := buildFixture(t,
		[]string{"q1"}, map[string]any{"q1": "A"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A"}},
			{ID: "2", Cells: []any{"A"}},
		})
	f := EstimateFrequencies(table, key)
	got := gbtZ(table.Examinees[0].Answers, table.Examinees[1].Answers, key.Valid, f, false)
	if got != 0.0 {
		t.Errorf("degenerate GBT z = %g, want 0", got)
	}
}

func TestGBTZ_Symmetric(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1", "q2", "q3"}, map[string]any{"q1": "A", "q2": "B", "q3": "C"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A", "X", "C"}},
			{ID: "2", Cells: []any{"A", "X", "-"}},
			{ID: "3", Cells: []any{"B", "B", "C"}},
		})
	f := EstimateFrequencies(table, key)
	a := table.Examinees[0].Answers
	b := table.Examinees[1].Answers
	if zab, zba := gbtZ(a, b, key.Valid, f, false), gbtZ(b, a, key.Valid, f, false); zab != zba {
		t.Errorf("GBT z not symmetric: %g vs %g", zab, zba)
	}
}

func TestGBTZ_BlankPolicyConsistent(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1", "q2"}, map[string]any{"q1": "A", "q2": "B"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A", "-"}},
			{ID: "2", Cells: []any{"A", "-"}},
			{ID: "3", Cells: []any{"B", "C"}},
		})
	f := EstimateFrequencies(table, key)
	a := table.Examinees[0].Answers
	b := table.Examinees[1].Answers

	// With blanks counted, the shared blank on q2 raises the observed
	// count and the expectation together; both modes stay well-defined.
	zIncl := gbtZ(a, b, key.Valid, f, true)
	zExcl := gbtZ(a, b, key.Valid, f, false)
	if math.IsNaN(zIncl) || math.IsNaN(zExcl) {
		t.Fatalf("z values: incl=%g excl=%g", zIncl, zExcl)
	}
	if zIncl == zExcl {
		t.Error("blank policy had no effect on a pair with a shared blank")
	}
}

func TestPairCounts_BlankNeverAgrees(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1", "q2", "q3"}, map[string]any{"q1": "A", "q2": "B", "q3": "C"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A", "-", "-"}},
			{ID: "2", Cells: []any{"A", "-", "X"}},
		})
	agreements, eeic, diffs := pairCounts(table.Examinees[0].Answers, table.Examinees[1].Answers, key.Valid, key)
	if agreements != 1 {
		t.Errorf("agreements = %d, want 1 (blank-blank is not agreement)", agreements)
	}
	if eeic != 0 {
		t.Errorf("eeic = %d, want 0", eeic)
	}
	// q3: blank vs X is a difference; q2: blank-blank is not.
	if diffs != 1 {
		t.Errorf("diffs = %d, want 1", diffs)
	}
}

func TestHarppHogan_Saturation(t *testing.T) {
	if got := harppHogan(3, 0); got != HHSaturated {
		t.Errorf("HH(3, 0) = %g, want saturation sentinel", got)
	}
	if got := harppHogan(0, 0); got != 0.0 {
		t.Errorf("HH(0, 0) = %g, want 0", got)
	}
	if got := harppHogan(2, 1); got != 2.0 {
		t.Errorf("HH(2, 1) = %g, want 2", got)
	}
	if got := harppHogan(0, 5); got != 0.0 {
		t.Errorf("HH(0, 5) = %g, want 0", got)
	}
}

func TestRarityScore_RarerIsStronger(t *testing.T) {
	// Same shared wrong answer, different population frequency: the
	// score must not decrease as the answer gets rarer.
	common, key := buildFixture(t,
		[]string{"q1"}, map[string]any{"q1": "A"},
		[]exam.Row{
			{ID: "1", Cells: []any{"X"}},
			{ID: "2", Cells: []any{"X"}},
		})
	rare, _ := buildFixture(t,
		[]string{"q1"}, map[string]any{"q1": "A"},
		[]exam.Row{
			{ID: "1", Cells: []any{"X"}},
			{ID: "2", Cells: []any{"X"}},
			{ID: "3", Cells: []any{"A"}},
			{ID: "4", Cells: []any{"A"}},
		})

	scoreCommon := rarityScore(common.Examinees[0].Answers, common.Examinees[1].Answers, key.Valid, key, EstimateFrequencies(common, key))
	scoreRare := rarityScore(rare.Examinees[0].Answers, rare.Examinees[1].Answers, key.Valid, key, EstimateFrequencies(rare, key))
	if scoreRare <= scoreCommon {
		t.Errorf("rarity score %g (freq 0.5) should exceed %g (freq 1.0)", scoreRare, scoreCommon)
	}
}

func TestRarityScore_ZeroFrequencyGuard(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1"}, map[string]any{"q1": "A"},
		[]exam.Row{
			{ID: "1", Cells: []any{"X"}},
			{ID: "2", Cells: []any{"X"}},
		})
	// Hand the scorer a frequency table that never saw X; the guard
	// assigns the fixed maximal weight instead of dividing by zero.
	empty := EstimateFrequencies(&exam.ResponseTable{Examinees: []exam.Examinee{{ID: "z", Answers: []string{"A"}}}, Questions: 1}, key)
	got := rarityScore(table.Examinees[0].Answers, table.Examinees[1].Answers, key.Valid, key, empty)
	if got != maxRarityWeight {
		t.Errorf("score = %g, want max weight %g", got, maxRarityWeight)
	}
}
