package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/edusense-api/internal/domain"
	"github.com/phrazzld/edusense-api/internal/generation"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
	"github.com/phrazzld/edusense-api/internal/prompt"
)

// MCQService generates multiple-choice quizzes from study content.
type MCQService interface {
	GenerateMCQs(ctx context.Context, params domain.MCQParams) (*domain.MCQSet, error)
}

type mcqServiceImpl struct {
	generator generation.Generator
	prompts   *prompt.Builder
	logger    *slog.Logger
}

// NewMCQService creates a new MCQService.
func NewMCQService(gen generation.Generator, prompts *prompt.Builder, log *slog.Logger) (MCQService, error) {
	if gen == nil {
		return nil, missing("generator")
	}
	if prompts == nil {
		return nil, missing("prompt builder")
	}
	if log == nil {
		log = slog.Default()
	}

	return &mcqServiceImpl{
		generator: gen,
		prompts:   prompts,
		logger:    log.With("component", "mcq_service"),
	}, nil
}

func (s *mcqServiceImpl) GenerateMCQs(ctx context.Context, params domain.MCQParams) (*domain.MCQSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := params.Validate(); err != nil {
		return nil, err
	}

	text, err := s.prompts.MCQ(params)
	if err != nil {
		log.Error("failed to render MCQ prompt", "error", err)
		return nil, NewGenerationError("MCQs", err)
	}

	set, err := generateStructured[domain.MCQSet](ctx, s.generator, text)
	if err != nil {
		logGenerationFailure(log, "MCQ generation failed", err)
		return nil, NewGenerationError("MCQs", err)
	}

	if !set.CountMatches() {
		log.Warn("MCQ question count differs from declared total",
			"total_questions", set.TotalQuestions,
			"questions", len(set.Questions))
	}

	log.Info("MCQs generated",
		"requested", params.NumQuestions,
		"questions", len(set.Questions))

	return set, nil
}
