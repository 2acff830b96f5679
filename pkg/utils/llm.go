package utils

import "context"

// CompletionRequest is one single-turn prompt.
type CompletionRequest struct {
	Model       string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// TextGenerator produces free text from a prompt.
type TextGenerator interface {
	Provider() string
	DefaultModel() string
	Generate(ctx context.Context, req CompletionRequest) (string, error)
}
