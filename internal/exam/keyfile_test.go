package exam

import (
	"errors"
	"strings"
	"testing"
)

func TestParseKeyFile_Valid(t *testing.T) {
	in := `{"name":"2026-spring","answers":{"q1":"A","q2":"B","q10":"E"}}`
	kf, err := ParseKeyFile(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseKeyFile: %v", err)
	}
	if kf.Name != "2026-spring" || len(kf.Answers) != 3 {
		t.Errorf("parsed = %+v", kf)
	}
}

func TestParseKeyFile_NameOptional(t *testing.T) {
	in := `{"answers":{"q1":"A"}}`
	if _, err := ParseKeyFile(strings.NewReader(in)); err != nil {
		t.Fatalf("ParseKeyFile: %v", err)
	}
}

func TestParseKeyFile_Rejected(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `{broken`},
		{"missing answers", `{"name":"x"}`},
		{"empty answers", `{"answers":{}}`},
		{"bad question label", `{"answers":{"question1":"A"}}`},
		{"non-string answer", `{"answers":{"q1":1}}`},
		{"unknown top-level field", `{"answers":{"q1":"A"},"extra":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeyFile(strings.NewReader(tt.in))
			var de *DataError
			if !errors.As(err, &de) {
				t.Fatalf("expected DataError, got %v", err)
			}
		})
	}
}

func TestKeyFile_QuestionsSorted(t *testing.T) {
	kf := &KeyFile{Answers: map[string]string{"q10": "E", "q2": "B", "Q1": "A"}}
	got := kf.Questions()
	want := []string{"q1", "q2", "q10"}
	if len(got) != len(want) {
		t.Fatalf("questions = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("questions = %v, want %v", got, want)
		}
	}
}

func TestKeyFile_BuildKey(t *testing.T) {
	kf := &KeyFile{Answers: map[string]string{"q1": "a", "q2": "-"}}
	key, err := kf.BuildKey([]string{"q1", "q2", "q3"})
	if err != nil {
		t.Fatalf("BuildKey: %v", err)
	}
	if !key.Valid[0] || key.Answers[0] != "A" {
		t.Errorf("q1 = %q valid=%v", key.Answers[0], key.Valid[0])
	}
	// Sentinel key and missing question are both invalid.
	if key.Valid[1] || key.Valid[2] {
		t.Errorf("valid mask = %v", key.Valid)
	}
}
