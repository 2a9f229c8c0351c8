package collusion

import (
	"runtime"
	"sync"

	"github.com/serkanatas/kopya/internal/exam"
)

// Report is the output of one analysis run: every pair's metrics and
// verdict in rank order, plus run-level totals.
type Report struct {
	TotalExaminees int
	TotalPairs     int
	TotalFlagged   int
	Config         Config
	Pairs          []ScoredPair
}

// Flagged returns only the flagged pairs, in rank order.
func (r *Report) Flagged() []ScoredPair {
	out := make([]ScoredPair, 0, r.TotalFlagged)
	for _, p := range r.Pairs {
		if p.Flagged {
			out = append(out, p)
		}
	}
	return out
}

// Engine computes the pairwise collusion metrics for one batch. It snapshots
// its inputs at construction: the table is scored, the frequency table is
// built and frozen, and Run only reads from there on, so the C(N,2) pair
// loop can fan out across workers without coordination.
type Engine struct {
	table *exam.ResponseTable
	key   *exam.AnswerKey
	freq  *Frequencies
	cfg   Config
}

// NewEngine validates the inputs, scores every examinee, and builds the
// global frequency table. Returns a DataError when the inputs cannot be
// analyzed.
func NewEngine(table *exam.ResponseTable, key *exam.AnswerKey, cfg Config) (*Engine, error) {
	if err := table.Score(key); err != nil {
		return nil, err
	}
	return &Engine{
		table: table,
		key:   key,
		freq:  EstimateFrequencies(table, key),
		cfg:   cfg,
	}, nil
}

// Frequencies exposes the frozen null model, mainly for reporting.
func (e *Engine) Frequencies() *Frequencies {
	return e.freq
}

// Run compares every unordered pair of examinees and returns the ranked
// report. Identical inputs and configuration always produce identical
// output, ordering included.
func (e *Engine) Run() *Report {
	n := len(e.table.Examinees)
	total := n * (n - 1) / 2

	pairs := make([][2]int, 0, total)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	results := make([]ScoredPair, total)

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > total {
		workers = total
	}

	if workers > 0 {
		chunk := (total + workers - 1) / workers
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			start := w * chunk
			end := start + chunk
			if end > total {
				end = total
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for p := start; p < end; p++ {
					results[p] = e.comparePair(pairs[p][0], pairs[p][1])
				}
			}(start, end)
		}
		wg.Wait()
	}

	sortPairs(results)

	flagged := 0
	for i := range results {
		if results[i].Flagged {
			flagged++
		}
	}

	return &Report{
		TotalExaminees: n,
		TotalPairs:     total,
		TotalFlagged:   flagged,
		Config:         e.cfg,
		Pairs:          results,
	}
}

// comparePair computes all metrics for one pair. Each index is computed
// independently; only classify combines them.
func (e *Engine) comparePair(i, j int) ScoredPair {
	a := &e.table.Examinees[i]
	b := &e.table.Examinees[j]
	valid := e.key.Valid

	agreements, eeic, diffs := pairCounts(a.Answers, b.Answers, valid, e.key)

	m := PairMetrics{
		IDA:             a.ID,
		IDB:             b.ID,
		Agreements:      agreements,
		WrongAgreements: eeic,
		Differences:     diffs,
		CorrectA:        a.Correct,
		WrongA:          a.Wrong,
		BlankA:          a.Blank,
		CorrectB:        b.Correct,
		WrongB:          b.Wrong,
		BlankB:          b.Blank,
		KIndexAB:        kIndex(a.Answers, b.Answers, valid, e.key, e.freq),
		KIndexBA:        kIndex(b.Answers, a.Answers, valid, e.key, e.freq),
		GBTZ:            gbtZ(a.Answers, b.Answers, valid, e.freq, e.cfg.CountBlankMatches),
		HarppHogan:      harppHogan(eeic, diffs),
		RarityScore:     rarityScore(a.Answers, b.Answers, valid, e.key, e.freq),
	}

	return classify(m, e.cfg)
}
