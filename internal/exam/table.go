package exam

// Examinee is one exam taker: a stable identifier and one normalized
// answer per question, in key order.
type Examinee struct {
	ID      string
	Answers []string

	// Per-examinee totals over valid questions, filled by Score.
	Correct int
	Wrong   int
	Blank   int
}

// Row is one raw record from the upstream results table. Cells may be
// strings, numbers, or nil; they are coerced during table construction.
type Row struct {
	ID    string
	Cells []any
}

// ResponseTable is the rectangular matrix of normalized answers:
// one row per examinee, one column per question.
type ResponseTable struct {
	Examinees []Examinee
	Questions int
}

// BuildTable normalizes raw rows into a ResponseTable with exactly
// questions columns. Returns a DataError when the table is empty or any
// row has the wrong number of cells.
func BuildTable(rows []Row, questions int) (*ResponseTable, error) {
	if questions == 0 {
		return nil, dataErrorf("no questions to score")
	}
	if len(rows) == 0 {
		return nil, dataErrorf("response table is empty")
	}

	t := &ResponseTable{
		Examinees: make([]Examinee, len(rows)),
		Questions: questions,
	}
	for i, row := range rows {
		if len(row.Cells) != questions {
			return nil, dataErrorf("row %q has %d cells, want %d", row.ID, len(row.Cells), questions)
		}
		id := row.ID
		if id == "" {
			id = "unknown"
		}
		answers := make([]string, questions)
		for j, c := range row.Cells {
			answers[j] = Normalize(c)
		}
		t.Examinees[i] = Examinee{ID: id, Answers: answers}
	}
	return t, nil
}

// Score fills each examinee's correct/wrong/blank totals against the key.
// Only valid questions count; a blank answer is never correct or wrong.
func (t *ResponseTable) Score(key *AnswerKey) error {
	if key.Questions() != t.Questions {
		return dataErrorf("key covers %d questions, table has %d", key.Questions(), t.Questions)
	}
	for i := range t.Examinees {
		e := &t.Examinees[i]
		e.Correct, e.Wrong, e.Blank = 0, 0, 0
		for q, ans := range e.Answers {
			if !key.Valid[q] {
				continue
			}
			switch {
			case IsBlank(ans):
				e.Blank++
			case ans == key.Answers[q]:
				e.Correct++
			default:
				e.Wrong++
			}
		}
	}
	return nil
}
