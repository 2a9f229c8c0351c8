package exam

import (
	"errors"
	"testing"
)

func TestBuildKey_Normalizes(t *testing.T) {
	key, err := BuildKey([]string{"q1", "q2", "q3"}, map[string]any{
		"q1": " a ",
		"q2": "B",
		"q3": 4,
	})
	if err != nil {
		t.Fatalf("BuildKey: %v", err)
	}
	if key.Answers[0] != "A" || key.Answers[1] != "B" || key.Answers[2] != "4" {
		t.Errorf("Answers = %v", key.Answers)
	}
	if key.ValidCount() != 3 {
		t.Errorf("ValidCount = %d, want 3", key.ValidCount())
	}
}

func TestBuildKey_InvalidQuestions(t *testing.T) {
	key, err := BuildKey([]string{"q1", "q2", "q3", "q4"}, map[string]any{
		"q1": "A",
		"q2": "-",
		"q3": "*",
		// q4 absent from the key.
	})
	if err != nil {
		t.Fatalf("BuildKey: %v", err)
	}
	want := []bool{true, false, false, false}
	for i, v := range want {
		if key.Valid[i] != v {
			t.Errorf("Valid[%d] = %v, want %v", i, key.Valid[i], v)
		}
	}
	if key.ValidCount() != 1 {
		t.Errorf("ValidCount = %d, want 1", key.ValidCount())
	}
}

func TestBuildKey_FullyInvalid(t *testing.T) {
	_, err := BuildKey([]string{"q1", "q2"}, map[string]any{"q1": "-", "q2": ""})
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DataError", err)
	}
}

func TestBuildKey_NoQuestions(t *testing.T) {
	_, err := BuildKey(nil, map[string]any{"q1": "A"})
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DataError", err)
	}
}

func TestIsCorrect_BlankNeverCorrect(t *testing.T) {
	key, err := BuildKey([]string{"q1", "q2"}, map[string]any{"q1": "A", "q2": "-"})
	if err != nil {
		t.Fatalf("BuildKey: %v", err)
	}
	if key.IsCorrect(0, Blank) {
		t.Error("blank answer must not be correct")
	}
	if key.IsCorrect(1, Blank) {
		t.Error("invalid question must never score correct")
	}
	if !key.IsCorrect(0, "A") {
		t.Error("A should be correct on q1")
	}
}
