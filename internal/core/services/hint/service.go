package hint

import (
	"context"

	"gitlab.com/codeclass-2026.net/internal/domain"
)

// HintRequest is what the tutor prompt is built from.
type HintRequest struct {
	ProblemTitle       string
	ProblemDescription string
	CurrentCode        string
	Difficulty         string
}

// IHintService wraps the generative-language API for the two classroom
// features: on-demand hints and problem generation from raw problem text.
type IHintService interface {
	Hint(ctx context.Context, req HintRequest) (string, error)
	// GenerateProblem turns pasted problem text into a problem definition
	// with {input, output} fixtures consumable by the grader. The result is
	// validated before it is handed back.
	GenerateProblem(ctx context.Context, rawText string) (*domain.Problem, error)
}
