package explain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/serkanatas/kopya/internal/collusion"
	"github.com/serkanatas/kopya/internal/llm"
)

func flaggedPairFixture() collusion.ScoredPair {
	return collusion.ScoredPair{
		PairMetrics: collusion.PairMetrics{
			IDA:             "1042",
			IDB:             "1055",
			Agreements:      18,
			WrongAgreements: 6,
			Differences:     2,
			CorrectA:        12, WrongA: 7, BlankA: 1,
			CorrectB: 12, WrongB: 8, BlankB: 0,
			KIndexAB:    0.002,
			KIndexBA:    0.004,
			GBTZ:        3.4,
			HarppHogan:  3.0,
			RarityScore: 7.2,
		},
		Flagged:   true,
		Suspicion: 0.91,
		Reason:    "K-index 0.0020 | Harpp-Hogan 3.00",
	}
}

func testRequest() Request {
	return Request{
		Pair:           flaggedPairFixture(),
		TotalExaminees: 40,
		Questions:      20,
		Thresholds:     collusion.DefaultConfig(),
	}
}

func TestExplain_ParsesModelOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Strong overlap in wrong answers.","severity":"high","caveats":["seating unknown"]}`),
	})
	e := NewExplainer(mock, DefaultConfig())

	out, err := e.Explain(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Severity != "high" {
		t.Errorf("severity = %q", out.Severity)
	}
	if out.Summary == "" || len(out.Caveats) != 1 {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestExplain_PromptCarriesPairContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"s","severity":"low","caveats":[]}`),
	})
	e := NewExplainer(mock, DefaultConfig())

	if _, err := e.Explain(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "pair-explanation" {
		t.Errorf("schema not attached: %+v", req.Schema)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"1042", "1055", "identical wrong answers: 6", "20 questions, 40 examinees"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestExplain_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue
	e := NewExplainer(mock, DefaultConfig())

	if _, err := e.Explain(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error")
	}
}

func TestDeterministic_HighSeverityOnKIndex(t *testing.T) {
	out := Deterministic(testRequest())
	if out.Severity != "high" {
		t.Errorf("severity = %q, want high", out.Severity)
	}
	if !strings.Contains(out.Summary, "1042") || !strings.Contains(out.Summary, "1055") {
		t.Errorf("summary missing examinee IDs: %s", out.Summary)
	}
	if !strings.Contains(out.Summary, "not proof") {
		t.Errorf("summary missing review framing: %s", out.Summary)
	}
}

func TestDeterministic_ModerateWithoutKSignal(t *testing.T) {
	req := testRequest()
	req.Pair.KIndexAB = 0.5
	req.Pair.KIndexBA = 0.5
	req.Pair.RarityScore = 1.0

	out := Deterministic(req)
	if out.Severity != "moderate" {
		t.Errorf("severity = %q, want moderate", out.Severity)
	}
}

func TestDeterministic_SmallGroupCaveat(t *testing.T) {
	req := testRequest()
	req.TotalExaminees = 12

	out := Deterministic(req)
	found := false
	for _, c := range out.Caveats {
		if strings.Contains(c, "group is small") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected small-group caveat, got %v", out.Caveats)
	}
}
