// Package llm abstracts the model providers behind a single Provider
// interface with structured-output support. The generation pipeline
// always requests schema-constrained JSON; free-text responses are not
// used anywhere in bitesmith.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends prompts to a model and returns structured JSON.
type Provider interface {
	// Generate sends the request and returns the model's output. When
	// req.Schema is set the provider uses its native structured-output
	// mechanism and the returned Content is schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Content generation is single-turn,
	// so this is one user message in practice.
	Messages []Message

	// Schema constrains the response to a JSON structure. Required for
	// lesson and question generation.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0 - 1.0; zero value means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Normalized stop reasons. Providers report truncation in their own
// vocabulary; everything collapses to these two.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Usage tracks tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
