package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/edusense-api/internal/config"
	"github.com/phrazzld/edusense-api/internal/generation"
	"github.com/phrazzld/edusense-api/internal/platform/gemini"
	"github.com/phrazzld/edusense-api/internal/prompt"
	"github.com/phrazzld/edusense-api/internal/service"
)

// application holds all the shared application dependencies. Everything in
// it is built once at startup and read concurrently by request handlers.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator generation.Generator
	prompts   *prompt.Builder

	chatService       service.ChatService
	curriculumService service.CurriculumService
	mcqService        service.MCQService
	flashcardService  service.FlashcardService
}

// newApplication creates the application with a Gemini-backed generator.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	gen, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully", "model", cfg.LLM.ModelName)

	return newApplicationWithGenerator(cfg, logger, gen)
}

// newApplicationWithGenerator wires the prompt builder and services around gen.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	gen generation.Generator,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		generator: gen,
	}

	var err error
	app.prompts, err = prompt.NewBuilder(cfg.LLM.PromptTemplateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	if cfg.LLM.PromptTemplateDir != "" {
		logger.Info("using prompt templates from directory", "dir", cfg.LLM.PromptTemplateDir)
	}

	app.chatService, err = service.NewChatService(gen, app.prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}

	app.curriculumService, err = service.NewCurriculumService(gen, app.prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create curriculum service: %w", err)
	}

	app.mcqService, err = service.NewMCQService(gen, app.prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCQ service: %w", err)
	}

	app.flashcardService, err = service.NewFlashcardService(gen, app.prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server and blocks until ctx is cancelled or
// the server fails.
func (app *application) Run(ctx context.Context) error {
	app.logger.Info("Starting "+app.config.App.Name,
		"version", app.config.App.Version,
		"debug", app.config.Server.Debug,
		"model", app.config.LLM.ModelName)

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
