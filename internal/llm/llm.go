package llm

import (
	"context"
	"errors"
)

// Client abstracts text-generation providers.
type Client interface {
	GenerateText(ctx context.Context, input GenerateInput) (string, error)
}

// GenerateInput captures a single prompt and its generation options.
type GenerateInput struct {
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

// ErrEmptyCompletion is returned when the provider responds without text.
// Callers treat it as a generation failure, never as an empty artifact.
var ErrEmptyCompletion = errors.New("empty completion from model")
