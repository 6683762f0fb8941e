package gemini

import (
	"context"

	"google.golang.org/genai"
)

// contentGenerator is the part of the genai client the Generator uses.
// *genai.Models satisfies it.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}
