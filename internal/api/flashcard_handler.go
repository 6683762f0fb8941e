package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/edusense-api/internal/api/shared"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
	"github.com/phrazzld/edusense-api/internal/service"
)

// FlashcardHandler handles flashcard generation HTTP requests
type FlashcardHandler struct {
	flashcardService service.FlashcardService
	logger           *slog.Logger
	debug            bool
}

// NewFlashcardHandler creates a new FlashcardHandler
func NewFlashcardHandler(
	flashcardService service.FlashcardService,
	logger *slog.Logger,
	debug bool,
) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{flashcardService: flashcardService, logger: logger, debug: debug}
}

// GenerateFlashcards handles POST /api/v1/flashcards requests
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	req := NewFlashcardRequest()
	if !decodeAndValidate(w, r, &req, h.debug) {
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("processing flashcard request", "num_flashcards", req.NumFlashcards)

	deck, err := h.flashcardService.GenerateFlashcards(r.Context(), req.params())
	if err != nil {
		HandleAPIError(w, r, err, h.debug)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FlashcardResponse{
		FlashcardDeck: *deck,
		Timestamp:     now(),
	})
}
