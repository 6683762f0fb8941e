package api

import (
	"net/http"

	"github.com/phrazzld/edusense-api/internal/api/shared"
)

// Prefix is the path under which the task endpoints are mounted.
const Prefix = "/api/v1"

// Health status values.
const (
	StatusOperational = "operational"
	StatusHealthy     = "healthy"
)

// Service names reported by the per-route health probes.
const (
	ChatServiceName       = "Chat with Notes Service"
	CurriculumServiceName = "Curriculum Generation Service"
	MCQServiceName        = "MCQ Generation Service"
	FlashcardServiceName  = "Flashcard Generation Service"
)

const serviceDescription = "AI-powered educational assistant API using Google Gemini"

// HealthHandler serves the health probes and the service description.
type HealthHandler struct {
	appName    string
	appVersion string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(appName, appVersion string) *HealthHandler {
	return &HealthHandler{appName: appName, appVersion: appVersion}
}

// ServiceHealth returns a handler reporting that the named service is operational.
func (h *HealthHandler) ServiceHealth(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, ServiceHealthResponse{
			Status:    StatusOperational,
			Service:   service,
			Timestamp: now(),
		})
	}
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    StatusHealthy,
		Service:   h.appName,
		Version:   h.appVersion,
		Timestamp: now(),
		Services: map[string]string{
			"chat":       StatusOperational,
			"curriculum": StatusOperational,
			"mcq":        StatusOperational,
			"flashcards": StatusOperational,
		},
	})
}

// Info handles GET / requests
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, InfoResponse{
		Service:   h.appName,
		Version:   h.appVersion,
		Status:    StatusOperational,
		Timestamp: now(),
		Endpoints: map[string]string{
			"chat_with_notes":     Prefix + "/chat",
			"generate_curriculum": Prefix + "/curriculum",
			"generate_mcq":        Prefix + "/mcq",
			"generate_flashcards": Prefix + "/flashcards",
		},
		HealthChecks: map[string]string{
			"chat_service":       Prefix + "/chat/health",
			"curriculum_service": Prefix + "/curriculum/health",
			"mcq_service":        Prefix + "/mcq/health",
			"flashcard_service":  Prefix + "/flashcards/health",
		},
		Description: serviceDescription,
	})
}
