package collusion

import (
	"math"
	"reflect"
	"testing"

	"github.com/serkanatas/kopya/internal/exam"
)

// Three examinees, five valid questions. Examinee 2 and 3 share both of
// examinee 2's wrong answers exactly; examinee 1 is clean.
func classOfThree(t *testing.T) (*exam.ResponseTable, *exam.AnswerKey) {
	t.Helper()
	return buildFixture(t,
		[]string{"q1", "q2", "q3", "q4", "q5"},
		map[string]any{"q1": "A", "q2": "B", "q3": "C", "q4": "D", "q5": "E"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A", "B", "C", "D", "E"}},
			{ID: "2", Cells: []any{"A", "X", "C", "Y", "E"}},
			{ID: "3", Cells: []any{"A", "X", "C", "Y", "Z"}},
		})
}

func findPair(t *testing.T, r *Report, a, b string) *ScoredPair {
	t.Helper()
	for i := range r.Pairs {
		p := &r.Pairs[i]
		if (p.IDA == a && p.IDB == b) || (p.IDA == b && p.IDB == a) {
			return p
		}
	}
	t.Fatalf("pair (%s, %s) not in report", a, b)
	return nil
}

func TestEngine_EndToEnd(t *testing.T) {
	table, key := classOfThree(t)
	eng, err := NewEngine(table, key, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	r := eng.Run()

	if r.TotalExaminees != 3 || r.TotalPairs != 3 {
		t.Fatalf("totals = %d examinees, %d pairs", r.TotalExaminees, r.TotalPairs)
	}

	p23 := findPair(t, r, "2", "3")
	if p23.WrongAgreements != 2 {
		t.Errorf("pair(2,3) wrong agreements = %d, want 2", p23.WrongAgreements)
	}
	if p23.Differences != 1 {
		t.Errorf("pair(2,3) differences = %d, want 1 (only q5)", p23.Differences)
	}
	if p23.HarppHogan != 2.0 {
		t.Errorf("pair(2,3) Harpp-Hogan = %g, want 2.0", p23.HarppHogan)
	}
	if !p23.Flagged {
		t.Error("pair(2,3) should be flagged by Harpp-Hogan >= 1.0")
	}
	if p23.Reason == "" {
		t.Error("flagged pair must carry a reason string")
	}

	// K(3 copies 2): both of 2's wrong answers matched, each chosen by
	// two of three examinees.
	wantK := binomSF(2, 2, 2.0/3.0)
	if math.Abs(p23.KIndexBA-wantK) > 1e-12 && math.Abs(p23.KIndexAB-wantK) > 1e-12 {
		t.Errorf("pair(2,3) K-indices = (%g, %g), want one equal to %g", p23.KIndexAB, p23.KIndexBA, wantK)
	}

	for _, other := range []string{"2", "3"} {
		p := findPair(t, r, "1", other)
		if p.WrongAgreements != 0 {
			t.Errorf("pair(1,%s) wrong agreements = %d, want 0", other, p.WrongAgreements)
		}
		// Examinee 1 has no wrong answers, so K in the direction that
		// treats 1 as source must be 1.0; the other direction matched
		// nothing and is also 1.0.
		if p.KIndexAB != 1.0 || p.KIndexBA != 1.0 {
			t.Errorf("pair(1,%s) K-indices = (%g, %g), want 1.0 both ways", other, p.KIndexAB, p.KIndexBA)
		}
		if p.Flagged {
			t.Errorf("pair(1,%s) should not be flagged", other)
		}
	}

	if r.TotalFlagged != 1 {
		t.Errorf("TotalFlagged = %d, want 1", r.TotalFlagged)
	}
	if r.Pairs[0].IDA != "2" || r.Pairs[0].IDB != "3" {
		t.Errorf("flagged pair should rank first, got (%s, %s)", r.Pairs[0].IDA, r.Pairs[0].IDB)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	runOnce := func() *Report {
		table, key := classOfThree(t)
		eng, err := NewEngine(table, key, DefaultConfig())
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		return eng.Run()
	}
	first := runOnce()
	second := runOnce()
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over identical input differ")
	}
}

func TestEngine_SymmetricMetricsIgnoreRowOrder(t *testing.T) {
	table, key := classOfThree(t)
	eng, err := NewEngine(table, key, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	forward := eng.Run()

	reversed, key2 := buildFixture(t,
		[]string{"q1", "q2", "q3", "q4", "q5"},
		map[string]any{"q1": "A", "q2": "B", "q3": "C", "q4": "D", "q5": "E"},
		[]exam.Row{
			{ID: "3", Cells: []any{"A", "X", "C", "Y", "Z"}},
			{ID: "2", Cells: []any{"A", "X", "C", "Y", "E"}},
			{ID: "1", Cells: []any{"A", "B", "C", "D", "E"}},
		})
	eng2, err := NewEngine(reversed, key2, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	backward := eng2.Run()

	a := findPair(t, forward, "2", "3")
	b := findPair(t, backward, "2", "3")
	if a.Agreements != b.Agreements || a.WrongAgreements != b.WrongAgreements {
		t.Errorf("agreement counts depend on row order: %+v vs %+v", a.PairMetrics, b.PairMetrics)
	}
	if a.GBTZ != b.GBTZ || a.HarppHogan != b.HarppHogan {
		t.Errorf("symmetric indices depend on row order")
	}
	// The directional K-indices swap with the pair orientation.
	ks := map[float64]bool{a.KIndexAB: true, a.KIndexBA: true}
	if !ks[b.KIndexAB] || !ks[b.KIndexBA] {
		t.Errorf("K-index set changed: (%g, %g) vs (%g, %g)", a.KIndexAB, a.KIndexBA, b.KIndexAB, b.KIndexBA)
	}
}

func TestEngine_AllBlankExaminee(t *testing.T) {
	table, key := buildFixture(t,
		[]string{"q1", "q2", "q3"},
		map[string]any{"q1": "A", "q2": "B", "q3": "C"},
		[]exam.Row{
			{ID: "1", Cells: []any{"A", "X", "C"}},
			{ID: "2", Cells: []any{"-", "", "*"}},
		})
	eng, err := NewEngine(table, key, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	r := eng.Run()

	p := findPair(t, r, "1", "2")
	if p.Agreements != 0 || p.WrongAgreements != 0 {
		t.Errorf("all-blank examinee produced agreements: %+v", p.PairMetrics)
	}
	if p.BlankB != 3 {
		t.Errorf("BlankB = %d, want 3", p.BlankB)
	}
	if p.Flagged {
		t.Error("all-blank pair must not be flagged")
	}
}

func TestEngine_SingleWorkerMatchesParallel(t *testing.T) {
	cfgSerial := DefaultConfig()
	cfgSerial.Workers = 1
	cfgParallel := DefaultConfig()
	cfgParallel.Workers = 8

	run := func(cfg Config) *Report {
		table, key := classOfThree(t)
		eng, err := NewEngine(table, key, cfg)
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		return eng.Run()
	}

	serial := run(cfgSerial)
	parallel := run(cfgParallel)
	if !reflect.DeepEqual(serial.Pairs, parallel.Pairs) {
		t.Error("worker count changed the report")
	}
}
