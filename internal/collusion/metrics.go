package collusion

import (
	"math"

	"github.com/serkanatas/kopya/internal/exam"
)

const (
	// HHSaturated is the Harpp-Hogan value assigned when a pair shares
	// wrong answers but differs nowhere: maximal suspicion, never a
	// division by zero.
	HHSaturated = 1000.0

	// maxRarityWeight caps the weight of a shared wrong answer whose
	// estimated frequency rounds to zero. The pair itself exhibits the
	// answer, so a true zero cannot occur; this guards the estimator.
	maxRarityWeight = 100.0
)

// kIndex computes the directional K-index: the exact binomial tail
// probability that the copier matched at least the observed number of the
// source's wrong answers by chance, given how often those specific wrong
// answers occur in the population. 1.0 means no evidence: the source has
// no wrong answers, or the copier matched none of them.
func kIndex(copier, source []string, valid []bool, key *exam.AnswerKey, freq *Frequencies) float64 {
	var n, k int
	var probSum float64

	for q := range valid {
		if !valid[q] {
			continue
		}
		src := source[q]
		if exam.IsBlank(src) || src == key.Answers[q] {
			continue
		}
		// Source is wrong on q. How likely is a random examinee to give
		// the source's exact answer here?
		n++
		probSum += freq.Prob(q, src)
		if copier[q] == src {
			k++
		}
	}

	if n == 0 || k == 0 {
		return 1.0
	}
	return binomSF(k, n, probSum/float64(n))
}

// gbtZ computes the Generalized Binomial Test Z-score: how far the
// observed total agreement lies above the agreement expected by chance.
// Zero when the variance degenerates to zero (single question, fully
// uniform column). Blank handling must match between the expectation and
// the observed count, so countBlank governs both.
func gbtZ(a, b []string, valid []bool, freq *Frequencies, countBlank bool) float64 {
	var observed int
	var expected, variance float64

	for q := range valid {
		if !valid[q] {
			continue
		}
		pMatch := freq.MatchProb(q, countBlank)
		expected += pMatch
		variance += pMatch * (1 - pMatch)

		if a[q] != b[q] {
			continue
		}
		if exam.IsBlank(a[q]) && !countBlank {
			continue
		}
		observed++
	}

	if variance == 0 {
		return 0.0
	}
	return (float64(observed) - expected) / math.Sqrt(variance)
}

// pairCounts tallies the symmetric raw counts for a pair: agreements,
// exact errors in common, and differences. Positions where both are
// blank count as neither an agreement nor a difference.
func pairCounts(a, b []string, valid []bool, key *exam.AnswerKey) (agreements, eeic, diffs int) {
	for q := range valid {
		if !valid[q] {
			continue
		}
		if a[q] != b[q] {
			diffs++
			continue
		}
		if exam.IsBlank(a[q]) {
			continue
		}
		agreements++
		if a[q] != key.Answers[q] {
			eeic++
		}
	}
	return agreements, eeic, diffs
}

// harppHogan is the ratio of exact errors in common to differing answers.
// Historically HH >= 1.0 marks a suspicious pair.
func harppHogan(eeic, diffs int) float64 {
	if diffs > 0 {
		return float64(eeic) / float64(diffs)
	}
	if eeic > 0 {
		return HHSaturated
	}
	return 0.0
}

// rarityScore weights each shared wrong answer by 1/sqrt of its empirical
// frequency: a wrong answer half the class chose is weak evidence, one
// only this pair chose is strong evidence.
func rarityScore(a, b []string, valid []bool, key *exam.AnswerKey, freq *Frequencies) float64 {
	var score float64
	for q := range valid {
		if !valid[q] {
			continue
		}
		if a[q] != b[q] || exam.IsBlank(a[q]) || a[q] == key.Answers[q] {
			continue
		}
		f := freq.Prob(q, a[q])
		if f <= 0 {
			score += maxRarityWeight
			continue
		}
		w := 1 / math.Sqrt(f)
		if w > maxRarityWeight {
			w = maxRarityWeight
		}
		score += w
	}
	return score
}
