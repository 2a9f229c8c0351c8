package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a structured-output LLM backend. The analysis
// explainer is the only consumer; it always requests JSON conforming
// to a schema.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the returned Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Explanation requests are
	// single-turn: one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the response against it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON structure the response must conform to.
type Schema struct {
	// Name identifies the schema. Used as the tool name for Anthropic
	// and the schema name for OpenAI. Kebab-case.
	Name string

	// Description guides the model toward the intended output.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
