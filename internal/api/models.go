package api

import (
	"time"

	"github.com/phrazzld/edusense-api/internal/domain"
)

// ChatRequest defines the payload for the chat-with-notes endpoint.
type ChatRequest struct {
	Notes    string `json:"notes"    validate:"required,min=10"`
	Question string `json:"question" validate:"required,min=3"`
	Context  string `json:"context,omitempty"`
}

func (r ChatRequest) params() domain.ChatParams {
	return domain.ChatParams{Notes: r.Notes, Question: r.Question, Context: r.Context}
}

// ChatResponse defines the successful response of the chat endpoint.
type ChatResponse struct {
	Answer     string    `json:"answer"`
	Confidence float64   `json:"confidence"`
	Sources    []string  `json:"sources"`
	Timestamp  time.Time `json:"timestamp"`
}

// CurriculumRequest defines the payload for the curriculum endpoint.
type CurriculumRequest struct {
	Document        string `json:"document"         validate:"required,min=50"`
	Subject         string `json:"subject,omitempty"`
	DifficultyLevel string `json:"difficulty_level"`
	DurationWeeks   int    `json:"duration_weeks"   validate:"min=1,max=52"`
}

// NewCurriculumRequest returns a request pre-filled with the optional field defaults.
func NewCurriculumRequest() CurriculumRequest {
	return CurriculumRequest{
		DifficultyLevel: domain.DefaultCurriculumDifficulty,
		DurationWeeks:   domain.DefaultDurationWeeks,
	}
}

func (r CurriculumRequest) params() domain.CurriculumParams {
	return domain.CurriculumParams{
		Document:        r.Document,
		Subject:         r.Subject,
		DifficultyLevel: r.DifficultyLevel,
		DurationWeeks:   r.DurationWeeks,
	}
}

// CurriculumResponse is the generated curriculum stamped with the response time.
type CurriculumResponse struct {
	domain.Curriculum
	Timestamp time.Time `json:"timestamp"`
}

// MCQRequest defines the payload for the MCQ endpoint.
type MCQRequest struct {
	Content             string `json:"content"              validate:"required,min=50"`
	NumQuestions        int    `json:"num_questions"        validate:"min=1,max=20"`
	DifficultyLevel     string `json:"difficulty_level"`
	IncludeExplanations bool   `json:"include_explanations"`
}

// NewMCQRequest returns a request pre-filled with the optional field defaults.
func NewMCQRequest() MCQRequest {
	return MCQRequest{
		NumQuestions:        domain.DefaultNumQuestions,
		DifficultyLevel:     domain.DefaultMCQDifficulty,
		IncludeExplanations: domain.DefaultIncludeExplanations,
	}
}

func (r MCQRequest) params() domain.MCQParams {
	return domain.MCQParams{
		Content:             r.Content,
		NumQuestions:        r.NumQuestions,
		DifficultyLevel:     r.DifficultyLevel,
		IncludeExplanations: r.IncludeExplanations,
	}
}

// MCQResponse is the generated question set stamped with the response time.
type MCQResponse struct {
	domain.MCQSet
	Timestamp time.Time `json:"timestamp"`
}

// FlashcardRequest defines the payload for the flashcard endpoint.
type FlashcardRequest struct {
	Content       string `json:"content"        validate:"required,min=50"`
	NumFlashcards int    `json:"num_flashcards" validate:"min=1,max=50"`
	FocusAreas    string `json:"focus_areas,omitempty"`
}

// NewFlashcardRequest returns a request pre-filled with the optional field defaults.
func NewFlashcardRequest() FlashcardRequest {
	return FlashcardRequest{NumFlashcards: domain.DefaultNumFlashcards}
}

func (r FlashcardRequest) params() domain.FlashcardParams {
	return domain.FlashcardParams{
		Content:       r.Content,
		NumFlashcards: r.NumFlashcards,
		FocusAreas:    r.FocusAreas,
	}
}

// FlashcardResponse is the generated deck stamped with the response time.
type FlashcardResponse struct {
	domain.FlashcardDeck
	Timestamp time.Time `json:"timestamp"`
}

// ServiceHealthResponse is returned by the per-route health probes.
type ServiceHealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is returned by the global health endpoint.
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// InfoResponse describes the service at the root path.
type InfoResponse struct {
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Endpoints    map[string]string `json:"endpoints"`
	HealthChecks map[string]string `json:"health_checks"`
	Description  string            `json:"description"`
}
