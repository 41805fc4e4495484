package secondary

import "context"

// SubmissionLimiter bounds how often one user may trigger the sandbox.
// A nil limiter disables the check.
type SubmissionLimiter interface {
	Allow(ctx context.Context, userID string) (bool, error)
}
