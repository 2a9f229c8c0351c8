package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func explanationSchema() *Schema {
	return &Schema{
		Name:        "pair-explanation",
		Description: "Narrative explanation of a flagged pair",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary":  map[string]any{"type": "string"},
				"severity": map[string]any{"type": "string", "enum": []any{"low", "moderate", "high"}},
				"caveats": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"summary", "severity"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"summary":"unusual overlap","severity":"high","caveats":["small sample"]}`)
	if err := validateResponse(explanationSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"summary":"nothing notable","severity":"low"}`)
	if err := validateResponse(explanationSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"summary":"no severity"}`)
	err := validateResponse(explanationSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_BadEnum(t *testing.T) {
	raw := json.RawMessage(`{"summary":"x","severity":"extreme"}`)
	err := validateResponse(explanationSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_WrongItemType(t *testing.T) {
	raw := json.RawMessage(`{"summary":"x","severity":"low","caveats":[1,2]}`)
	err := validateResponse(explanationSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(explanationSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_Empty(t *testing.T) {
	if err := validateResponse(explanationSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
