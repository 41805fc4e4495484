package domain

import "regexp"

// LanguageJavaScript is the single submission language the sandbox accepts.
const LanguageJavaScript = "javascript"

// DefaultFunctionName is assigned when a problem is created without one.
const DefaultFunctionName = "solve"

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Problem is one graded exercise inside a room. Samples are shown to
// students; tests are the hidden grading set.
type Problem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Difficulty   string    `json:"difficulty"`
	FunctionName string    `json:"functionName"`
	Language     string    `json:"language"`
	StarterCode  string    `json:"starterCode"`
	Samples      []Fixture `json:"samples"`
	Tests        []Fixture `json:"tests"`
}

// ValidFunctionName reports whether name is a plain identifier. The function
// name is spliced into the program the sandbox evaluates, so anything else
// is rejected at store time.
func ValidFunctionName(name string) bool {
	return identifierRe.MatchString(name)
}
