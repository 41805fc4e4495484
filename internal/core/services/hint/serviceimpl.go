package hint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
)

var _ IHintService = (*HintService)(nil)

// ErrGeneratorUnavailable means no API key is configured.
var ErrGeneratorUnavailable = errors.New("generative API not configured")

type HintService struct {
	generator secondary.TextGenerator
	logger    primary.Logger
}

// NewHintService wires the Gemini-backed features. generator may be nil when
// no API key is configured; calls then fail with ErrGeneratorUnavailable.
func NewHintService(generator secondary.TextGenerator, logger primary.Logger) *HintService {
	return &HintService{generator: generator, logger: logger}
}

func (s *HintService) Hint(ctx context.Context, req HintRequest) (string, error) {
	if s.generator == nil {
		return "", ErrGeneratorUnavailable
	}

	var b strings.Builder
	b.WriteString("You are a helpful coding tutor. A student is working on the following problem:\n\n")
	title := req.ProblemTitle
	if title == "" {
		title = "Coding Problem"
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "Unknown"
	}
	fmt.Fprintf(&b, "Title: %s\nDifficulty: %s\nDescription:\n%s\n\n", title, difficulty, req.ProblemDescription)
	if req.CurrentCode != "" {
		fmt.Fprintf(&b, "Their current code is:\n```javascript\n%s\n```\n", req.CurrentCode)
	} else {
		b.WriteString("They haven't started coding yet.\n")
	}
	b.WriteString(`
Please provide a helpful hint that:
1. Does NOT give away the complete solution
2. Guides them toward the right approach
3. Suggests what data structures or algorithms might be useful
4. Points out any obvious issues in their current code (if provided)
5. Encourages them to think about edge cases

Keep the hint concise (3-5 sentences) and educational.`)

	hint, err := s.generator.GenerateContent(ctx, b.String())
	if err != nil {
		s.logger.Error("Hint generation failed", "error", err)
		return "", err
	}
	return hint, nil
}

func (s *HintService) GenerateProblem(ctx context.Context, rawText string) (*domain.Problem, error) {
	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}

	prompt := fmt.Sprintf(`You are generating a coding exercise for a classroom grading system.
From the problem text below, produce a single JSON object with exactly these keys:
"title" (string), "description" (string), "difficulty" ("Easy"|"Medium"|"Hard"),
"functionName" (a valid JavaScript identifier), "starterCode" (a JavaScript
function stub), "samples" and "tests" (arrays of {"input": [...], "output": ...}
where "input" is the argument list for one call and "output" the expected
return value). Provide at least 2 samples and at least 5 tests.
Respond with the JSON object only, no commentary.

Problem text:
%s`, rawText)

	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Error("Problem generation failed", "error", err)
		return nil, err
	}

	var problem domain.Problem
	if err := json.Unmarshal([]byte(stripFences(text)), &problem); err != nil {
		s.logger.Warn("Generator returned unparsable problem", "error", err)
		return nil, fmt.Errorf("generator returned invalid problem: %w", err)
	}
	problem.Language = domain.LanguageJavaScript
	if problem.FunctionName == "" {
		problem.FunctionName = domain.DefaultFunctionName
	}
	if !domain.ValidFunctionName(problem.FunctionName) {
		return nil, fmt.Errorf("generator returned invalid function name %q", problem.FunctionName)
	}
	if len(problem.Tests) == 0 {
		return nil, errors.New("generator returned no tests")
	}
	return &problem, nil
}

// stripFences removes a ```json ... ``` wrapper if the model added one.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
