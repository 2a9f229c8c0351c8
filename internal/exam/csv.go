package exam

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// questionColumn matches response-sheet question headers: q1, Q12, ...
var questionColumn = regexp.MustCompile(`^[qQ](\d+)$`)

// idColumnNames are tried in order when looking for the examinee ID
// column.
var idColumnNames = []string{"id", "student_id", "examinee", "examinee_id", "roll", "roll_no", "name"}

// CSVSheet is a parsed response sheet: one row per examinee, question
// columns in ascending question order.
type CSVSheet struct {
	Questions []string
	Rows      []Row
}

// LoadCSV parses a response sheet. The header must contain at least one
// question column (q1, q2, ...). The examinee ID comes from a known ID
// column when present, otherwise from the first non-question column,
// otherwise from the row number.
func LoadCSV(r io.Reader) (*CSVSheet, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, dataErrorf("empty CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	type qcol struct {
		index  int
		number int
		label  string
	}
	var qcols []qcol
	for i, h := range header {
		h = strings.TrimSpace(h)
		if m := questionColumn.FindStringSubmatch(h); m != nil {
			n := 0
			fmt.Sscanf(m[1], "%d", &n)
			qcols = append(qcols, qcol{index: i, number: n, label: strings.ToLower(h)})
		}
	}
	if len(qcols) == 0 {
		return nil, dataErrorf("no question columns (q1, q2, ...) in CSV header")
	}
	sort.Slice(qcols, func(i, j int) bool { return qcols[i].number < qcols[j].number })

	idCol := findIDColumn(header, qcols[0].index)

	questions := make([]string, len(qcols))
	for i, q := range qcols {
		questions[i] = q.label
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV line %d: %w", line, err)
		}

		id := fmt.Sprintf("%d", len(rows)+1)
		if idCol >= 0 && idCol < len(record) {
			if v := strings.TrimSpace(record[idCol]); v != "" {
				id = v
			}
		}

		cells := make([]any, len(qcols))
		for i, q := range qcols {
			if q.index < len(record) {
				cells[i] = record[q.index]
			}
		}
		rows = append(rows, Row{ID: id, Cells: cells})
	}

	if len(rows) == 0 {
		return nil, dataErrorf("CSV has a header but no examinee rows")
	}
	return &CSVSheet{Questions: questions, Rows: rows}, nil
}

// findIDColumn prefers a known ID header, then any non-question column
// before the first question column. -1 means no usable column.
func findIDColumn(header []string, firstQuestion int) int {
	for _, want := range idColumnNames {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i
			}
		}
	}
	for i := 0; i < firstQuestion; i++ {
		if !questionColumn.MatchString(strings.TrimSpace(header[i])) {
			return i
		}
	}
	return -1
}
