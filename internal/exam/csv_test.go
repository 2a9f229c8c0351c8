package exam

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadCSV_Basic(t *testing.T) {
	in := "student_id,q1,q2,q3\n101,A,B,C\n102,a, b,-\n"
	sheet, err := LoadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	if len(sheet.Questions) != 3 || sheet.Questions[0] != "q1" || sheet.Questions[2] != "q3" {
		t.Errorf("questions = %v", sheet.Questions)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("rows = %d", len(sheet.Rows))
	}
	if sheet.Rows[0].ID != "101" || sheet.Rows[1].ID != "102" {
		t.Errorf("IDs = %q, %q", sheet.Rows[0].ID, sheet.Rows[1].ID)
	}
	if sheet.Rows[1].Cells[2] != "-" {
		t.Errorf("cell passed through raw, got %v", sheet.Rows[1].Cells[2])
	}
}

func TestLoadCSV_QuestionColumnsSortedNumerically(t *testing.T) {
	in := "id,q10,Q2,q1\nx,J,B,A\n"
	sheet, err := LoadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	want := []string{"q1", "q2", "q10"}
	for i, q := range want {
		if sheet.Questions[i] != q {
			t.Fatalf("questions = %v, want %v", sheet.Questions, want)
		}
	}
	// Cells follow question order, not header order.
	if sheet.Rows[0].Cells[0] != "A" || sheet.Rows[0].Cells[2] != "J" {
		t.Errorf("cells = %v", sheet.Rows[0].Cells)
	}
}

func TestLoadCSV_IDColumnHeuristics(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		wantID string
	}{
		{"known id header wins", "roll_no,q1\n55,A\n", "55"},
		{"leading non-question column", "candidate,q1\nfoo,A\n", "foo"},
		{"no id column falls back to row number", "q1,q2\nA,B\n", "1"},
		{"empty id cell falls back to row number", "id,q1\n,A\n", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := LoadCSV(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("LoadCSV: %v", err)
			}
			if sheet.Rows[0].ID != tt.wantID {
				t.Errorf("ID = %q, want %q", sheet.Rows[0].ID, tt.wantID)
			}
		})
	}
}

func TestLoadCSV_ShortRecordYieldsNilCells(t *testing.T) {
	in := "id,q1,q2\nx,A\n"
	sheet, err := LoadCSV(strings.NewReader(in))
	// encoding/csv rejects ragged records by default; either outcome is
	// a refusal to silently misalign columns.
	if err != nil {
		return
	}
	if sheet.Rows[0].Cells[1] != nil {
		t.Errorf("expected nil cell for missing column, got %v", sheet.Rows[0].Cells[1])
	}
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"no question columns", "id,name\n1,x\n"},
		{"header only", "id,q1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.in))
			var de *DataError
			if !errors.As(err, &de) {
				t.Fatalf("expected DataError, got %v", err)
			}
		})
	}
}

func TestLoadCSV_FeedsBuildTable(t *testing.T) {
	in := "id,q1,q2\n1,A,B\n2,A,*\n"
	sheet, err := LoadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	table, err := BuildTable(sheet.Rows, len(sheet.Questions))
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if table.Examinees[1].Answers[1] != Blank {
		t.Errorf("sentinel not normalized: %q", table.Examinees[1].Answers[1])
	}
}
