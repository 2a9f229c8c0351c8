package collusion

import (
	"fmt"
	"sort"
	"strings"
)

// Config holds the classifier thresholds. They are supplied by the
// caller so grading policies can tune sensitivity; DefaultConfig gives
// the defaults used by the CLI.
type Config struct {
	// KIndexCeiling flags pairs whose best-direction K-index falls
	// below it (together with MinSharedWrong).
	KIndexCeiling float64

	// HarppHoganFloor flags pairs at or above it (together with
	// MinSharedWrong). The historical threshold is 1.0.
	HarppHoganFloor float64

	// RarityFloor flags pairs whose rarity-weighted error score
	// reaches it, regardless of shared-wrong count.
	RarityFloor float64

	// GBTZFloor adds a reason fragment when the GBT Z-score reaches
	// it. GBT never flags a pair on its own.
	GBTZFloor float64

	// MinSharedWrong gates the K-index and Harpp-Hogan signals: below
	// this many shared wrong answers they carry too little evidence.
	MinSharedWrong int

	// CountBlankMatches counts blank-blank positions as agreement in
	// the GBT observed-match count and its expectation. Off by
	// default: two students skipping the same question is not
	// evidence of copying.
	CountBlankMatches bool

	// Workers bounds the pair-comparison worker pool. 0 means one
	// worker per CPU.
	Workers int
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		KIndexCeiling:   0.01,
		HarppHoganFloor: 1.0,
		RarityFloor:     5.0,
		GBTZFloor:       3.0,
		MinSharedWrong:  2,
	}
}

// Signal priority order for ranking and reason ordering. GBT is
// reason-only and never becomes a pair's primary signal.
const (
	signalKIndex = iota
	signalHarppHogan
	signalRarity
	signalNone
)

// ScoredPair is a PairMetrics record with the classifier's verdict
// attached: whether the pair is flagged, a bounded suspicion score, and
// one human-readable reason fragment per triggered signal.
type ScoredPair struct {
	PairMetrics

	Flagged   bool
	Suspicion float64
	Reasons   []string
	Reason    string

	primary  int
	strength float64
}

// classify applies the thresholds to one pair. A pair is flagged when any
// of the three primary signals trigger; the GBT signal only contributes a
// reason fragment and the suspicion score.
func classify(m PairMetrics, cfg Config) ScoredPair {
	sp := ScoredPair{PairMetrics: m, primary: signalNone}

	minK := m.MinKIndex()
	kTrig := minK < cfg.KIndexCeiling && m.WrongAgreements >= cfg.MinSharedWrong
	hhTrig := m.HarppHogan >= cfg.HarppHoganFloor && m.WrongAgreements >= cfg.MinSharedWrong
	rarTrig := m.RarityScore >= cfg.RarityFloor
	gbtTrig := cfg.GBTZFloor > 0 && m.GBTZ >= cfg.GBTZFloor

	if kTrig {
		sp.Reasons = append(sp.Reasons, fmt.Sprintf("K-index %.4g below %.4g on %d shared wrong answers", minK, cfg.KIndexCeiling, m.WrongAgreements))
		sp.suspect(signalKIndex, 1-minK)
	}
	if hhTrig {
		sp.Reasons = append(sp.Reasons, fmt.Sprintf("Harpp-Hogan %.2f (%d errors in common, %d differences)", m.HarppHogan, m.WrongAgreements, m.Differences))
		sp.suspect(signalHarppHogan, m.HarppHogan)
	}
	if rarTrig {
		sp.Reasons = append(sp.Reasons, fmt.Sprintf("rarity-weighted error score %.1f", m.RarityScore))
		sp.suspect(signalRarity, m.RarityScore)
	}
	if gbtTrig {
		sp.Reasons = append(sp.Reasons, fmt.Sprintf("GBT z-score %.1f", m.GBTZ))
	}

	sp.Flagged = kTrig || hhTrig || rarTrig
	sp.Reason = strings.Join(sp.Reasons, " | ")
	sp.Suspicion = suspicion(m, cfg, kTrig, hhTrig, rarTrig, gbtTrig)
	return sp
}

// suspect records a triggered primary signal, keeping the
// highest-priority one as the pair's rank key.
func (sp *ScoredPair) suspect(signal int, strength float64) {
	if signal < sp.primary {
		sp.primary = signal
		sp.strength = strength
	}
}

// suspicion folds the triggered signals into a single bounded score in
// [0, 1] for display. Each signal contributes a component normalized
// against twice its threshold; the strongest component wins.
func suspicion(m PairMetrics, cfg Config, kTrig, hhTrig, rarTrig, gbtTrig bool) float64 {
	var s float64
	if kTrig {
		s = math01(1 - m.MinKIndex())
	}
	if hhTrig {
		s = max01(s, m.HarppHogan/(2*cfg.HarppHoganFloor))
	}
	if rarTrig {
		s = max01(s, m.RarityScore/(2*cfg.RarityFloor))
	}
	if gbtTrig {
		s = max01(s, m.GBTZ/(2*cfg.GBTZFloor))
	}
	return s
}

func math01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max01(a, b float64) float64 {
	b = math01(b)
	if b > a {
		return b
	}
	return a
}

// sortPairs orders pairs for reporting: by primary signal priority, then
// that signal's strength descending, with pair IDs as the deterministic
// tie-breaker. Unflagged pairs sort last, in ID order.
func sortPairs(pairs []ScoredPair) {
	sort.Slice(pairs, func(i, j int) bool {
		a, b := &pairs[i], &pairs[j]
		if a.primary != b.primary {
			return a.primary < b.primary
		}
		if a.strength != b.strength {
			return a.strength > b.strength
		}
		if a.IDA != b.IDA {
			return a.IDA < b.IDA
		}
		return a.IDB < b.IDB
	})
}
