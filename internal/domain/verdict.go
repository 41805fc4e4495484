package domain

import "gitlab.com/codeclass-2026.net/internal/jsonval"

// FixtureResult is the outcome of running the submitted function against one
// fixture. Index matches the fixture's position in the stored order. Actual
// serializes as null when the invocation faulted; Error then carries the
// fault message.
type FixtureResult struct {
	Index    int           `json:"index"`
	Input    jsonval.Value `json:"input"`
	Expected jsonval.Value `json:"expected"`
	Actual   jsonval.Value `json:"actual"`
	Pass     bool          `json:"pass"`
	Error    *string       `json:"error"`
}

// Verdict aggregates one grading run. Error is set only when the submission
// failed to compile or the target function was missing, in which case
// Results is empty.
type Verdict struct {
	Passed  bool            `json:"passed"`
	Results []FixtureResult `json:"results"`
	Error   *string         `json:"error,omitempty"`
}

// FailedVerdict builds the aggregate shape for a submission that never
// produced a callable.
func FailedVerdict(msg string) *Verdict {
	return &Verdict{Passed: false, Results: []FixtureResult{}, Error: &msg}
}
