// Package llm abstracts the generative-language vendors the studio can talk
// to. Every vendor is treated as an opaque chat endpoint: messages in, text
// out; fence parsing and sketch handling live elsewhere.
package llm

import "context"

// Provider is a chat-style generation backend.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the provider identifier ("google", "openai", ...).
	Name() string
}
