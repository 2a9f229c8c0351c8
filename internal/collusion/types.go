package collusion

// PairMetrics is the immutable result record for one unordered pair of
// examinees. All four suspicion indices are computed independently; only
// the classifier combines them.
type PairMetrics struct {
	IDA string
	IDB string

	// Raw agreement: valid questions where both answered and agree.
	Agreements int

	// Wrong agreement (EEIC): agreements whose shared answer differs
	// from a valid key.
	WrongAgreements int

	// Differences: valid questions where the two answers differ.
	// Blank-blank positions count as neither agreement nor difference.
	Differences int

	CorrectA, WrongA, BlankA int
	CorrectB, WrongB, BlankB int

	// KIndexAB is P(A's matches on B's wrong answers arose by chance):
	// A is the presumed copier, B the source. KIndexBA is the reverse
	// direction. Low values are suspicious.
	KIndexAB float64
	KIndexBA float64

	// GBTZ is the Generalized Binomial Test Z-score for total agreement.
	// High values are suspicious.
	GBTZ float64

	// HarppHogan is WrongAgreements / Differences, saturating to
	// HHSaturated when there are shared wrong answers but no differences.
	HarppHogan float64

	// RarityScore is the sum of 1/sqrt(freq) over shared wrong answers,
	// rewarding rare shared errors.
	RarityScore float64
}

// MinKIndex returns the more suspicious of the two K-index directions.
func (m *PairMetrics) MinKIndex() float64 {
	if m.KIndexAB < m.KIndexBA {
		return m.KIndexAB
	}
	return m.KIndexBA
}
