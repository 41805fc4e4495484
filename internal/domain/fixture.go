package domain

import (
	"encoding/json"
	"errors"

	"gitlab.com/codeclass-2026.net/internal/jsonval"
)

// ErrMalformedFixture is returned when a fixture record is missing its
// input or output. Fixtures are validated when a problem is stored, never
// at grading time.
var ErrMalformedFixture = errors.New("fixture must have both input and output")

// Fixture is one {input, output} pair used to check a submission.
type Fixture struct {
	Input  jsonval.Value `json:"input"`
	Output jsonval.Value `json:"output"`
}

// UnmarshalJSON enforces that both keys are present in the stored record.
func (f *Fixture) UnmarshalJSON(data []byte) error {
	var raw struct {
		Input  *jsonval.Value `json:"input"`
		Output *jsonval.Value `json:"output"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Input == nil || raw.Output == nil {
		return ErrMalformedFixture
	}
	f.Input = *raw.Input
	f.Output = *raw.Output
	return nil
}

// Arguments normalizes the input into a positional argument list: a
// sequence is spread, anything else is passed as a single argument.
func (f Fixture) Arguments() []jsonval.Value {
	if f.Input.IsArray() {
		return f.Input.Elements()
	}
	return []jsonval.Value{f.Input}
}
