package collusion

import "github.com/serkanatas/kopya/internal/exam"

// Frequencies is the per-question empirical distribution over observed
// options, the null model every chance-agreement calculation is measured
// against. Probabilities are occurrence counts divided by the total
// examinee count, so blank is a category like any other. A table is
// built once per batch, before any pair is compared, and is read-only
// from then on; every pair in the batch is judged against the same table.
type Frequencies struct {
	total       int
	perQuestion []map[string]float64
}

// EstimateFrequencies computes the option distribution for every valid
// question of the table. Invalid questions get a nil entry and must never
// be consulted.
func EstimateFrequencies(t *exam.ResponseTable, key *exam.AnswerKey) *Frequencies {
	f := &Frequencies{
		total:       len(t.Examinees),
		perQuestion: make([]map[string]float64, t.Questions),
	}
	if f.total == 0 {
		return f
	}

	n := float64(f.total)
	for q := 0; q < t.Questions; q++ {
		if !key.Valid[q] {
			continue
		}
		counts := make(map[string]float64)
		for i := range t.Examinees {
			counts[t.Examinees[i].Answers[q]]++
		}
		for opt := range counts {
			counts[opt] /= n
		}
		f.perQuestion[q] = counts
	}
	return f
}

// Total returns the examinee count the distribution was estimated over.
func (f *Frequencies) Total() int {
	return f.total
}

// Prob returns the empirical probability of option on question q, or 0
// when the option was never observed.
func (f *Frequencies) Prob(q int, option string) float64 {
	m := f.perQuestion[q]
	if m == nil {
		return 0
	}
	return m[option]
}

// MatchProb returns the chance that two independent random examinees give
// the same answer on question q: the sum of squared option frequencies.
// When includeBlank is false the blank category is left out, matching an
// observed-match count that ignores blank-blank positions.
func (f *Frequencies) MatchProb(q int, includeBlank bool) float64 {
	m := f.perQuestion[q]
	if m == nil {
		return 0
	}
	var p float64
	for opt, freq := range m {
		if !includeBlank && exam.IsBlank(opt) {
			continue
		}
		p += freq * freq
	}
	return p
}
