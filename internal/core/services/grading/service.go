package grading

import (
	"context"

	"gitlab.com/codeclass-2026.net/internal/domain"
)

// IGradingService grades one submission against one problem's hidden tests.
type IGradingService interface {
	// Grade authorizes the caller, locates the problem, runs the submission
	// and returns the verdict. A broken submission is a normal verdict, not
	// an error; errors are reserved for lookup/authorization/store faults.
	Grade(ctx context.Context, identity domain.AuthPayload, roomID, problemID, code string) (*domain.Verdict, error)
}
