package ports

import "context"

type SamplingParams struct {
	Temperature float64
	MaxTokens   int
}

// Contract for the text-generation collaborator. The engine sends one
// prompt and stores the returned text verbatim; it never inspects the
// generated plan's structure.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, params SamplingParams) (string, error)
}
