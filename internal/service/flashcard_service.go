package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/edusense-api/internal/domain"
	"github.com/phrazzld/edusense-api/internal/generation"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
	"github.com/phrazzld/edusense-api/internal/prompt"
)

// FlashcardService generates study flashcards from content.
type FlashcardService interface {
	GenerateFlashcards(ctx context.Context, params domain.FlashcardParams) (*domain.FlashcardDeck, error)
}

type flashcardServiceImpl struct {
	generator generation.Generator
	prompts   *prompt.Builder
	logger    *slog.Logger
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(
	gen generation.Generator,
	prompts *prompt.Builder,
	log *slog.Logger,
) (FlashcardService, error) {
	if gen == nil {
		return nil, missing("generator")
	}
	if prompts == nil {
		return nil, missing("prompt builder")
	}
	if log == nil {
		log = slog.Default()
	}

	return &flashcardServiceImpl{
		generator: gen,
		prompts:   prompts,
		logger:    log.With("component", "flashcard_service"),
	}, nil
}

func (s *flashcardServiceImpl) GenerateFlashcards(
	ctx context.Context,
	params domain.FlashcardParams,
) (*domain.FlashcardDeck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := params.Validate(); err != nil {
		return nil, err
	}

	text, err := s.prompts.Flashcards(params)
	if err != nil {
		log.Error("failed to render flashcard prompt", "error", err)
		return nil, NewGenerationError("flashcards", err)
	}

	deck, err := generateStructured[domain.FlashcardDeck](ctx, s.generator, text)
	if err != nil {
		logGenerationFailure(log, "flashcard generation failed", err)
		return nil, NewGenerationError("flashcards", err)
	}

	if !deck.CountMatches() {
		log.Warn("flashcard count differs from declared total",
			"total_cards", deck.TotalCards,
			"flashcards", len(deck.Flashcards))
	}

	log.Info("flashcards generated",
		"requested", params.NumFlashcards,
		"flashcards", len(deck.Flashcards))

	return deck, nil
}
