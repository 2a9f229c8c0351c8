package collusion

import (
	"strings"
	"testing"
)

func TestClassify_KIndexSignal(t *testing.T) {
	cfg := DefaultConfig()
	m := PairMetrics{
		IDA: "1", IDB: "2",
		WrongAgreements: 4,
		KIndexAB:        0.002,
		KIndexBA:        0.4,
	}
	sp := classify(m, cfg)
	if !sp.Flagged {
		t.Fatal("K-index below ceiling with enough shared wrongs must flag")
	}
	if len(sp.Reasons) != 1 || !strings.Contains(sp.Reasons[0], "K-index") {
		t.Errorf("Reasons = %v", sp.Reasons)
	}
	if sp.Suspicion <= 0 || sp.Suspicion > 1 {
		t.Errorf("Suspicion = %g, want in (0, 1]", sp.Suspicion)
	}
}

func TestClassify_MinSharedWrongGatesKAndHH(t *testing.T) {
	cfg := DefaultConfig()
	m := PairMetrics{
		IDA: "1", IDB: "2",
		WrongAgreements: cfg.MinSharedWrong - 1,
		KIndexAB:        0.0001,
		KIndexBA:        0.0001,
		HarppHogan:      5.0,
	}
	sp := classify(m, cfg)
	if sp.Flagged {
		t.Error("too few shared wrong answers must suppress the K and HH signals")
	}
}

func TestClassify_RarityIsUngated(t *testing.T) {
	cfg := DefaultConfig()
	m := PairMetrics{
		IDA: "1", IDB: "2",
		WrongAgreements: 1,
		KIndexAB:        1.0,
		KIndexBA:        1.0,
		RarityScore:     cfg.RarityFloor + 1,
	}
	sp := classify(m, cfg)
	if !sp.Flagged {
		t.Error("rarity score above floor flags regardless of shared-wrong count")
	}
}

func TestClassify_GBTNeverFlagsAlone(t *testing.T) {
	cfg := DefaultConfig()
	m := PairMetrics{
		IDA: "1", IDB: "2",
		GBTZ: cfg.GBTZFloor + 10,
	}
	sp := classify(m, cfg)
	if sp.Flagged {
		t.Error("GBT is reason-only; it must not flag by itself")
	}
	if len(sp.Reasons) != 1 || !strings.Contains(sp.Reasons[0], "GBT") {
		t.Errorf("Reasons = %v, want the GBT fragment", sp.Reasons)
	}
	if sp.Suspicion == 0 {
		t.Error("a triggered GBT signal should still contribute suspicion")
	}
}

func TestClassify_ReasonOrderIsStable(t *testing.T) {
	cfg := DefaultConfig()
	m := PairMetrics{
		IDA: "1", IDB: "2",
		WrongAgreements: 5,
		KIndexAB:        0.001,
		KIndexBA:        0.001,
		HarppHogan:      3.0,
		RarityScore:     cfg.RarityFloor + 1,
		GBTZ:            cfg.GBTZFloor + 1,
	}
	sp := classify(m, cfg)
	if len(sp.Reasons) != 4 {
		t.Fatalf("Reasons = %v, want 4 fragments", sp.Reasons)
	}
	wantOrder := []string{"K-index", "Harpp-Hogan", "rarity", "GBT"}
	for i, frag := range wantOrder {
		if !strings.Contains(sp.Reasons[i], frag) {
			t.Errorf("Reasons[%d] = %q, want %s fragment", i, sp.Reasons[i], frag)
		}
	}
	if sp.Reason != strings.Join(sp.Reasons, " | ") {
		t.Errorf("Reason = %q", sp.Reason)
	}
}

func TestSortPairs_PriorityThenStrengthThenIDs(t *testing.T) {
	cfg := DefaultConfig()
	hhWeak := classify(PairMetrics{IDA: "5", IDB: "6", WrongAgreements: 3, KIndexAB: 1, KIndexBA: 1, HarppHogan: 1.5}, cfg)
	hhStrong := classify(PairMetrics{IDA: "3", IDB: "4", WrongAgreements: 3, KIndexAB: 1, KIndexBA: 1, HarppHogan: 4.0}, cfg)
	kFlag := classify(PairMetrics{IDA: "9", IDB: "10", WrongAgreements: 3, KIndexAB: 0.005, KIndexBA: 1}, cfg)
	clean := classify(PairMetrics{IDA: "1", IDB: "2", KIndexAB: 1, KIndexBA: 1}, cfg)

	pairs := []ScoredPair{clean, hhWeak, hhStrong, kFlag}
	sortPairs(pairs)

	wantIDs := [][2]string{{"9", "10"}, {"3", "4"}, {"5", "6"}, {"1", "2"}}
	for i, want := range wantIDs {
		if pairs[i].IDA != want[0] || pairs[i].IDB != want[1] {
			t.Errorf("pairs[%d] = (%s, %s), want (%s, %s)", i, pairs[i].IDA, pairs[i].IDB, want[0], want[1])
		}
	}
}

func TestSuspicion_Bounded(t *testing.T) {
	cfg := DefaultConfig()
	m := PairMetrics{
		IDA: "1", IDB: "2",
		WrongAgreements: 20,
		KIndexAB:        0.0,
		KIndexBA:        0.0,
		HarppHogan:      HHSaturated,
		RarityScore:     1e6,
		GBTZ:            50,
	}
	sp := classify(m, cfg)
	if sp.Suspicion < 0 || sp.Suspicion > 1 {
		t.Errorf("Suspicion = %g, out of [0, 1]", sp.Suspicion)
	}
}
