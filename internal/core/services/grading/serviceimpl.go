package grading

import (
	"context"
	"errors"
	"time"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
	"gitlab.com/codeclass-2026.net/internal/sandbox"
	"gitlab.com/codeclass-2026.net/internal/sandbox/runner"
	"gitlab.com/codeclass-2026.net/internal/static/errs"
)

var _ IGradingService = (*GradingService)(nil)

type GradingService struct {
	roomStore secondary.RoomStore
	limiter   secondary.SubmissionLimiter
	timeout   time.Duration
	logger    primary.Logger
}

// NewGradingService wires the grading endpoint logic. limiter may be nil to
// disable rate limiting.
func NewGradingService(
	roomStore secondary.RoomStore,
	limiter secondary.SubmissionLimiter,
	timeout time.Duration,
	logger primary.Logger,
) *GradingService {
	if timeout <= 0 {
		timeout = sandbox.DefaultTimeout
	}
	return &GradingService{
		roomStore: roomStore,
		limiter:   limiter,
		timeout:   timeout,
		logger:    logger,
	}
}

// Grade performs one synchronous compile-then-run pass. Each request gets a
// fresh sandbox context; contexts are reused across fixtures within the
// request, never across requests.
func (s *GradingService) Grade(ctx context.Context, identity domain.AuthPayload, roomID, problemID, code string) (*domain.Verdict, error) {
	room, err := s.roomStore.GetRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("Failed to read room store", "roomId", roomID, "error", err)
		return nil, errs.StoreUnavailable
	}
	if room == nil {
		return nil, errs.RoomNotFound
	}
	if !room.AccessibleBy(identity.UserID) {
		return nil, errs.Forbidden
	}

	problem := room.FindProblem(problemID)
	if problem == nil {
		return nil, errs.ProblemNotFound
	}
	if problem.Language != domain.LanguageJavaScript {
		return nil, errs.UnsupportedLanguage
	}
	if problem.FunctionName == "" {
		return nil, errs.MissingEntryPoint
	}
	// A problem with zero tests would pass vacuously; reject it before any
	// sandbox work.
	if len(problem.Tests) == 0 {
		return nil, errs.NoTestsConfigured
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, identity.UserID)
		if err != nil {
			s.logger.Warn("Submission limiter unavailable, allowing request", "error", err)
		} else if !allowed {
			return nil, errs.TooManySubmissions
		}
	}

	sb := sandbox.New(sandbox.Config{Timeout: s.timeout})
	fn, err := sb.Load(code, problem.FunctionName)
	if err != nil {
		// Compile failures and a missing target function are expected,
		// frequent outcomes: they become a verdict, not an error.
		var compileErr *sandbox.CompileError
		var notFound *sandbox.FunctionNotFoundError
		if errors.As(err, &compileErr) || errors.As(err, &notFound) {
			return domain.FailedVerdict(err.Error()), nil
		}
		s.logger.Error("Sandbox load failed", "roomId", roomID, "problemId", problemID, "error", err)
		return nil, errs.InternalError
	}

	verdict := runner.Run(fn, problem.Tests)
	s.logger.Info("Graded submission",
		"roomId", roomID, "problemId", problemID, "userId", identity.UserID,
		"passed", verdict.Passed, "fixtures", len(verdict.Results))
	return verdict, nil
}
