package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/edusense-api/internal/api"
	apiMiddleware "github.com/phrazzld/edusense-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	debug := app.config.Server.Debug

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRecoverer(debug))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{apiMiddleware.TraceHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.Timeout(app.config.Server.RequestTimeout()))

	chatHandler := api.NewChatHandler(app.chatService, app.logger, debug)
	curriculumHandler := api.NewCurriculumHandler(app.curriculumService, app.logger, debug)
	mcqHandler := api.NewMCQHandler(app.mcqService, app.logger, debug)
	flashcardHandler := api.NewFlashcardHandler(app.flashcardService, app.logger, debug)
	healthHandler := api.NewHealthHandler(app.config.App.Name, app.config.App.Version)

	r.Get("/", healthHandler.Info)
	r.Get("/health", healthHandler.Health)

	r.Route(api.Prefix, func(r chi.Router) {
		r.Post("/chat", chatHandler.ChatWithNotes)
		r.Get("/chat/health", healthHandler.ServiceHealth(api.ChatServiceName))

		r.Post("/curriculum", curriculumHandler.GenerateCurriculum)
		r.Get("/curriculum/health", healthHandler.ServiceHealth(api.CurriculumServiceName))

		r.Post("/mcq", mcqHandler.GenerateMCQs)
		r.Get("/mcq/health", healthHandler.ServiceHealth(api.MCQServiceName))

		r.Post("/flashcards", flashcardHandler.GenerateFlashcards)
		r.Get("/flashcards/health", healthHandler.ServiceHealth(api.FlashcardServiceName))
	})

	return r
}
