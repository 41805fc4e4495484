package secondary

import "context"

// TextGenerator is the contract with the external generative-language API.
// Hints and problem generation both reduce to prompt-in, text-out.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
