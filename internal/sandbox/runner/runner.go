// Package runner drives a resolved callable over a problem's fixtures and
// collects per-fixture verdicts.
package runner

import (
	"gitlab.com/codeclass-2026.net/internal/domain"
	"gitlab.com/codeclass-2026.net/internal/jsonval"
)

// Callable is one invocation handle produced by the sandbox.
type Callable interface {
	Invoke(args []jsonval.Value) (jsonval.Value, error)
}

// Run evaluates every fixture in stored order, never in parallel, so the
// verdict sequence is deterministic and results[i].Index == i. A fault on
// one fixture is recorded and the run continues; grading is a single pass
// with no retries. An empty fixture list passes vacuously — callers that
// consider that a misconfiguration must guard before calling.
func Run(fn Callable, fixtures []domain.Fixture) *domain.Verdict {
	results := make([]domain.FixtureResult, 0, len(fixtures))
	passed := true

	for i, fx := range fixtures {
		res := domain.FixtureResult{
			Index:    i,
			Input:    fx.Input,
			Expected: fx.Output,
		}

		actual, err := fn.Invoke(fx.Arguments())
		if err != nil {
			msg := err.Error()
			res.Error = &msg
		} else {
			res.Actual = actual
			res.Pass = actual.Equal(fx.Output)
		}

		if !res.Pass {
			passed = false
		}
		results = append(results, res)
	}

	return &domain.Verdict{Passed: passed, Results: results}
}
