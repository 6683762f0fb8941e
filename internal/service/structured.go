package service

import (
	"context"

	"github.com/phrazzld/edusense-api/internal/extract"
	"github.com/phrazzld/edusense-api/internal/generation"
)

// checkable is implemented by every structured result type.
type checkable interface {
	Validate() error
	CountMatches() bool
}

// generateStructured sends prompt to gen and decodes the reply into T.
// A reply that decodes but fails T's structural checks is reported as an
// *extract.OutputError, the same as a reply that does not decode.
func generateStructured[T any, PT interface {
	*T
	checkable
}](ctx context.Context, gen generation.Generator, prompt string) (PT, error) {
	reply, err := gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := extract.Into[T](reply)
	if err != nil {
		return nil, err
	}

	out := PT(&result)
	if err := out.Validate(); err != nil {
		return nil, &extract.OutputError{Err: err, Text: extract.Block(reply)}
	}
	return out, nil
}
