package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/edusense-api/internal/config"
	"github.com/phrazzld/edusense-api/internal/generation"
	"github.com/phrazzld/edusense-api/internal/redact"
	"github.com/sethvargo/go-retry"
	"google.golang.org/genai"
)

// Generator implements the generation.Generator interface using Google's
// Gemini API. A single instance is shared by all requests.
type Generator struct {
	logger *slog.Logger
	client contentGenerator
	model  string

	genConfig *genai.GenerateContentConfig

	maxRetries     uint64
	retryDelay     time.Duration
	attemptTimeout time.Duration
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator from the LLM configuration.
//
// Parameters:
//   - ctx: Context used while creating the API client
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name and retry settings
//
// Returns:
//   - A ready Generator, or an error wrapping generation.ErrInvalidConfig
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, cfg, client.Models), nil
}

// newGenerator assembles a Generator around an already validated config.
func newGenerator(logger *slog.Logger, cfg config.LLMConfig, client contentGenerator) *Generator {
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(cfg.Temperature)),
	}
	if cfg.MaxOutputTokens > 0 {
		genConfig.MaxOutputTokens = int32(cfg.MaxOutputTokens)
	}

	return &Generator{
		logger:         logger.With("component", "gemini_generator", "model", cfg.ModelName),
		client:         client,
		model:          cfg.ModelName,
		genConfig:      genConfig,
		maxRetries:     uint64(cfg.MaxRetries),
		retryDelay:     cfg.RetryDelay(),
		attemptTimeout: cfg.RequestTimeout(),
	}
}

// Generate sends prompt to the model and returns the text of its first candidate.
//
// Transient failures are retried up to the configured number of times with
// exponential backoff and 50% jitter. Safety blocks, empty replies and
// non-retryable API errors are returned immediately.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", generation.ErrEmptyPrompt
	}

	backoff := retry.NewExponential(g.retryDelay)
	backoff = retry.WithJitterPercent(50, backoff)
	backoff = retry.WithMaxRetries(g.maxRetries, backoff)

	var (
		reply   string
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attempt,
			"max_attempts", g.maxRetries+1,
			"prompt_length", len(prompt))

		text, err := g.call(ctx, prompt)
		if err == nil {
			reply = text
			return nil
		}

		if isPermanent(err) {
			g.logger.WarnContext(ctx, "permanent Gemini error, not retrying",
				"attempt", attempt,
				"error", redact.Error(err))
			return err
		}

		g.logger.WarnContext(ctx, "transient Gemini error",
			"attempt", attempt,
			"error", redact.Error(err))
		return retry.RetryableError(err)
	})
	if err != nil {
		if isPermanent(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: gave up after %d attempt(s): %v", generation.ErrTransientFailure, attempt, err)
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"attempt", attempt,
		"reply_length", len(reply))
	return reply, nil
}

// call performs a single bounded attempt.
func (g *Generator) call(ctx context.Context, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.attemptTimeout)
	defer cancel()

	resp, err := g.client.GenerateContent(attemptCtx, g.model, genai.Text(prompt), g.genConfig)
	if err != nil {
		if !isTransient(err) {
			return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}
		return "", err
	}
	return replyText(resp)
}

// replyText concatenates the text parts of the first candidate.
func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: reply blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("%w: reply contains no text", generation.ErrInvalidResponse)
	}
	return sb.String(), nil
}

// isPermanent reports whether err must not be retried.
func isPermanent(err error) bool {
	return errors.Is(err, generation.ErrContentBlocked) ||
		errors.Is(err, generation.ErrInvalidResponse) ||
		errors.Is(err, generation.ErrGenerationFailed)
}
