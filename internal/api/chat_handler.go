package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/edusense-api/internal/api/shared"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
	"github.com/phrazzld/edusense-api/internal/service"
)

// ChatHandler handles chat-with-notes HTTP requests
type ChatHandler struct {
	chatService service.ChatService
	logger      *slog.Logger
	debug       bool
}

// NewChatHandler creates a new ChatHandler. debug exposes internal error
// details in 500 responses.
func NewChatHandler(chatService service.ChatService, logger *slog.Logger, debug bool) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{chatService: chatService, logger: logger, debug: debug}
}

// ChatWithNotes handles POST /api/v1/chat requests
func (h *ChatHandler) ChatWithNotes(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeAndValidate(w, r, &req, h.debug) {
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("processing chat request", "question_length", len(req.Question))

	result, err := h.chatService.ChatWithNotes(r.Context(), req.params())
	if err != nil {
		HandleAPIError(w, r, err, h.debug)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{
		Answer:     result.Answer,
		Confidence: result.Confidence,
		Sources:    result.Sources,
		Timestamp:  now(),
	})
}
