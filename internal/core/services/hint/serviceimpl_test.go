package hint

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gitlab.com/codeclass-2026.net/internal/domain"
	"gitlab.com/codeclass-2026.net/internal/jsonval"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func TestHintUnavailableWithoutGenerator(t *testing.T) {
	svc := NewHintService(nil, nopLogger{})
	_, err := svc.Hint(context.Background(), HintRequest{})
	if !errors.Is(err, ErrGeneratorUnavailable) {
		t.Errorf("want ErrGeneratorUnavailable, got %v", err)
	}
}

func TestHintPromptCarriesCode(t *testing.T) {
	gen := &fakeGenerator{response: "try a hash map"}
	svc := NewHintService(gen, nopLogger{})

	got, err := svc.Hint(context.Background(), HintRequest{
		ProblemTitle: "Two Sum",
		CurrentCode:  "function twoSum() {}",
	})
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if got != "try a hash map" {
		t.Errorf("hint = %q", got)
	}
	if !strings.Contains(gen.prompt, "Two Sum") || !strings.Contains(gen.prompt, "function twoSum() {}") {
		t.Errorf("prompt should carry problem and code, got %q", gen.prompt)
	}
}

const generatedProblem = `{
  "title": "Sum Array",
  "description": "Sum all numbers.",
  "difficulty": "Easy",
  "functionName": "sumArray",
  "starterCode": "function sumArray(nums) {\n}",
  "samples": [{"input": [[1, 2]], "output": 3}, {"input": [[]], "output": 0}],
  "tests": [
    {"input": [[1, 2]], "output": 3},
    {"input": [[]], "output": 0},
    {"input": [[-1, 1]], "output": 0},
    {"input": [[5]], "output": 5},
    {"input": [[1, 2, 3]], "output": 6}
  ]
}`

func TestGenerateProblem(t *testing.T) {
	gen := &fakeGenerator{response: generatedProblem}
	svc := NewHintService(gen, nopLogger{})

	p, err := svc.GenerateProblem(context.Background(), "sum the numbers in an array")
	if err != nil {
		t.Fatalf("GenerateProblem: %v", err)
	}
	if p.FunctionName != "sumArray" {
		t.Errorf("functionName = %q", p.FunctionName)
	}
	if p.Language != domain.LanguageJavaScript {
		t.Errorf("language should be forced to javascript, got %q", p.Language)
	}
	if len(p.Tests) != 5 {
		t.Errorf("want 5 tests, got %d", len(p.Tests))
	}
	if !p.Tests[0].Output.Equal(jsonval.MustParse(`3`)) {
		t.Errorf("fixture output mismatch: %s", p.Tests[0].Output)
	}
}

func TestGenerateProblemStripsFences(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + generatedProblem + "\n```"}
	svc := NewHintService(gen, nopLogger{})

	if _, err := svc.GenerateProblem(context.Background(), "text"); err != nil {
		t.Fatalf("fenced response should parse: %v", err)
	}
}

func TestGenerateProblemRejectsGarbage(t *testing.T) {
	gen := &fakeGenerator{response: "sorry, I cannot do that"}
	svc := NewHintService(gen, nopLogger{})

	if _, err := svc.GenerateProblem(context.Background(), "text"); err == nil {
		t.Errorf("non-JSON response should be rejected")
	}
}

func TestGenerateProblemRequiresTests(t *testing.T) {
	gen := &fakeGenerator{response: `{"title": "t", "functionName": "f", "tests": []}`}
	svc := NewHintService(gen, nopLogger{})

	if _, err := svc.GenerateProblem(context.Background(), "text"); err == nil {
		t.Errorf("a problem without tests should be rejected")
	}
}

func TestGenerateProblemRejectsBadFunctionName(t *testing.T) {
	gen := &fakeGenerator{response: `{"title": "t", "functionName": "not valid!", "tests": [{"input": [1], "output": 1}]}`}
	svc := NewHintService(gen, nopLogger{})

	if _, err := svc.GenerateProblem(context.Background(), "text"); err == nil {
		t.Errorf("invalid identifier should be rejected")
	}
}
