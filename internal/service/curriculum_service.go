package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/edusense-api/internal/domain"
	"github.com/phrazzld/edusense-api/internal/generation"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
	"github.com/phrazzld/edusense-api/internal/prompt"
)

// CurriculumService turns a document into a week-by-week study plan.
type CurriculumService interface {
	GenerateCurriculum(ctx context.Context, params domain.CurriculumParams) (*domain.Curriculum, error)
}

type curriculumServiceImpl struct {
	generator generation.Generator
	prompts   *prompt.Builder
	logger    *slog.Logger
}

// NewCurriculumService creates a new CurriculumService.
func NewCurriculumService(
	gen generation.Generator,
	prompts *prompt.Builder,
	log *slog.Logger,
) (CurriculumService, error) {
	if gen == nil {
		return nil, missing("generator")
	}
	if prompts == nil {
		return nil, missing("prompt builder")
	}
	if log == nil {
		log = slog.Default()
	}

	return &curriculumServiceImpl{
		generator: gen,
		prompts:   prompts,
		logger:    log.With("component", "curriculum_service"),
	}, nil
}

func (s *curriculumServiceImpl) GenerateCurriculum(
	ctx context.Context,
	params domain.CurriculumParams,
) (*domain.Curriculum, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := params.Validate(); err != nil {
		return nil, err
	}

	text, err := s.prompts.Curriculum(params)
	if err != nil {
		log.Error("failed to render curriculum prompt", "error", err)
		return nil, NewGenerationError("curriculum", err)
	}

	curriculum, err := generateStructured[domain.Curriculum](ctx, s.generator, text)
	if err != nil {
		logGenerationFailure(log, "curriculum generation failed", err)
		return nil, NewGenerationError("curriculum", err)
	}

	if !curriculum.CountMatches() {
		log.Warn("curriculum week count differs from declared total",
			"total_weeks", curriculum.TotalWeeks,
			"weeks", len(curriculum.Weeks))
	}

	log.Info("curriculum generated",
		"requested_weeks", params.DurationWeeks,
		"weeks", len(curriculum.Weeks))

	return curriculum, nil
}
