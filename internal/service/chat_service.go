package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/edusense-api/internal/domain"
	"github.com/phrazzld/edusense-api/internal/generation"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
	"github.com/phrazzld/edusense-api/internal/prompt"
)

// ChatService answers questions about a student's notes.
type ChatService interface {
	// ChatWithNotes returns the model's answer together with the placeholder
	// confidence and the leading fragments of the notes as sources.
	ChatWithNotes(ctx context.Context, params domain.ChatParams) (*domain.ChatResult, error)
}

type chatServiceImpl struct {
	generator generation.Generator
	prompts   *prompt.Builder
	logger    *slog.Logger
}

// NewChatService creates a new ChatService.
// It returns an error if any of the required dependencies are nil.
func NewChatService(gen generation.Generator, prompts *prompt.Builder, log *slog.Logger) (ChatService, error) {
	if gen == nil {
		return nil, missing("generator")
	}
	if prompts == nil {
		return nil, missing("prompt builder")
	}
	if log == nil {
		log = slog.Default()
	}

	return &chatServiceImpl{
		generator: gen,
		prompts:   prompts,
		logger:    log.With("component", "chat_service"),
	}, nil
}

func (s *chatServiceImpl) ChatWithNotes(ctx context.Context, params domain.ChatParams) (*domain.ChatResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := params.Validate(); err != nil {
		return nil, err
	}

	text, err := s.prompts.Chat(params)
	if err != nil {
		log.Error("failed to render chat prompt", "error", err)
		return nil, NewGenerationError("response", err)
	}

	reply, err := s.generator.Generate(ctx, text)
	if err != nil {
		logGenerationFailure(log, "chat generation failed", err)
		return nil, NewGenerationError("response", err)
	}
	answer := strings.TrimSpace(reply)

	log.Info("chat answer generated",
		"question_length", len(params.Question),
		"answer_length", len(answer))

	return &domain.ChatResult{
		Answer:     answer,
		Confidence: domain.PlaceholderConfidence,
		Sources:    Snippets(params.Notes, MaxSources),
	}, nil
}
