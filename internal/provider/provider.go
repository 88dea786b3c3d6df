// Package provider defines the unified interface and shared types for all
// LLM providers. Each adapter (openai.go, anthropic.go) converts the unified
// CompletionRequest into its vendor's API request and normalizes the vendor
// response into a Completion.
package provider

import "context"

// Usage records token consumption for an API call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// CompletionRequest is the unified request format sent to a provider.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	Prompt       string
	// MaxTokens caps the response size. Zero lets the adapter pick a default.
	MaxTokens int
}

// Completion is the unified response returned by a provider.
type Completion struct {
	Text  string
	Usage Usage
}

// Provider is the unified interface for all LLM providers. The pipeline is
// strictly sequential, so Complete blocks until the full response arrives.
type Provider interface {
	// Complete sends one prompt and returns the full response text and usage.
	Complete(ctx context.Context, req *CompletionRequest) (*Completion, error)

	// Name returns the provider identifier, e.g. "anthropic", "openai", "github".
	Name() string

	// DefaultModel returns the model used when a request leaves Model empty.
	DefaultModel() string

	// ContextWindow returns the advertised context window for the default
	// model. Informational only: request sizing is governed by the much
	// stricter token.Limits table.
	ContextWindow() int
}
