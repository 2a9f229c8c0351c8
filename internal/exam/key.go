package exam

// AnswerKey holds the canonical correct option per question, parallel to
// the columns of a ResponseTable, plus a validity mask. A question is
// valid only when its normalized key is not a sentinel empty token;
// invalid questions are excluded from scoring, frequency estimation, and
// every suspicion index.
type AnswerKey struct {
	Answers []string
	Valid   []bool

	validCount int
}

// BuildKey constructs an AnswerKey from a loosely-typed key mapping and
// the ordered question identifiers. Questions absent from the mapping, or
// whose value normalizes to a sentinel token, are marked invalid.
// Returns a DataError when there are no questions or no valid keys at all.
func BuildKey(questions []string, raw map[string]any) (*AnswerKey, error) {
	if len(questions) == 0 {
		return nil, dataErrorf("no questions to score")
	}

	k := &AnswerKey{
		Answers: make([]string, len(questions)),
		Valid:   make([]bool, len(questions)),
	}
	for i, q := range questions {
		v, ok := raw[q]
		if !ok {
			k.Answers[i] = Blank
			continue
		}
		ans := Normalize(v)
		k.Answers[i] = ans
		if !IsBlank(ans) {
			k.Valid[i] = true
			k.validCount++
		}
	}

	if k.validCount == 0 {
		return nil, dataErrorf("answer key has no scoreable questions")
	}
	return k, nil
}

// Questions returns the number of questions the key covers.
func (k *AnswerKey) Questions() int {
	return len(k.Answers)
}

// ValidCount returns the number of scoreable questions.
func (k *AnswerKey) ValidCount() int {
	return k.validCount
}

// IsCorrect reports whether ans is the correct answer to question q.
// Always false for invalid questions and blank answers.
func (k *AnswerKey) IsCorrect(q int, ans string) bool {
	return k.Valid[q] && !IsBlank(ans) && ans == k.Answers[q]
}
