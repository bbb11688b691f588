// Package llm adapts hosted text-generation APIs to a single completion interface.
package llm

import "context"

// CompletionRequest is a single system + user prompt exchange
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// TextGenerator is implemented by every text-generation provider.
// Complete returns the raw text of the first candidate, which may be empty.
type TextGenerator interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
	Model() string
}
