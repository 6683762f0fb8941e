package generation

import "context"

// Generator sends a prompt to a language model and returns its text reply.
// Implementations must be safe for concurrent use; a single instance is shared
// by every request handler.
type Generator interface {
	// Generate returns the model's reply to prompt. Errors wrap one of the
	// sentinel errors declared in this package.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
