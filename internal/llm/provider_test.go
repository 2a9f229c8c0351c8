package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ServesQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("unexpected content: %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 12 {
		t.Fatalf("expected 12 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("unexpected content: %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	req := Request{
		System:   "you explain statistics",
		Messages: []Message{{Role: RoleUser, Content: "explain this pair"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "you explain statistics" {
		t.Fatalf("system prompt not recorded: %q", mock.Calls[0].System)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "pair-explain")
	if p := PurposeFrom(ctx); p != "pair-explain" {
		t.Fatalf("expected 'pair-explain', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "wat"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("KOPYA_LLM_PROVIDER", "openai")
	t.Setenv("KOPYA_OPENAI_API_KEY", "sk-env")
	t.Setenv("KOPYA_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("openai config = %+v", cfg.OpenAI)
	}
	// Untouched sections keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Fatalf("anthropic model = %q", cfg.Anthropic.Model)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	got := c.Cost(1_000_000, 1_000_000)
	want := 0.15 + 0.6
	if got != want {
		t.Fatalf("cost = %v, want %v", got, want)
	}

	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
