package gemini

import (
	"fmt"

	"github.com/phrazzld/edusense-api/internal/config"
	"github.com/phrazzld/edusense-api/internal/generation"
)

// validateConfig rejects settings the generator cannot run with.
func validateConfig(cfg config.LLMConfig) error {
	switch {
	case cfg.GeminiAPIKey == "":
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	case cfg.ModelName == "":
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	case cfg.MaxRetries < 0:
		return fmt.Errorf("%w: max retries cannot be negative", generation.ErrInvalidConfig)
	case cfg.RetryDelaySeconds < 1:
		return fmt.Errorf("%w: retry delay must be at least one second", generation.ErrInvalidConfig)
	case cfg.RequestTimeoutSeconds < 1:
		return fmt.Errorf("%w: request timeout must be at least one second", generation.ErrInvalidConfig)
	case cfg.Temperature < 0 || cfg.Temperature > 2:
		return fmt.Errorf("%w: temperature must be between 0 and 2", generation.ErrInvalidConfig)
	case cfg.MaxOutputTokens < 0:
		return fmt.Errorf("%w: max output tokens cannot be negative", generation.ErrInvalidConfig)
	}
	return nil
}
