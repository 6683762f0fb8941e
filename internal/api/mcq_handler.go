package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/edusense-api/internal/api/shared"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
	"github.com/phrazzld/edusense-api/internal/service"
)

// MCQHandler handles multiple-choice question HTTP requests
type MCQHandler struct {
	mcqService service.MCQService
	logger     *slog.Logger
	debug      bool
}

// NewMCQHandler creates a new MCQHandler
func NewMCQHandler(mcqService service.MCQService, logger *slog.Logger, debug bool) *MCQHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MCQHandler{mcqService: mcqService, logger: logger, debug: debug}
}

// GenerateMCQs handles POST /api/v1/mcq requests
func (h *MCQHandler) GenerateMCQs(w http.ResponseWriter, r *http.Request) {
	req := NewMCQRequest()
	if !decodeAndValidate(w, r, &req, h.debug) {
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("processing MCQ request", "num_questions", req.NumQuestions)

	set, err := h.mcqService.GenerateMCQs(r.Context(), req.params())
	if err != nil {
		HandleAPIError(w, r, err, h.debug)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MCQResponse{
		MCQSet:    *set,
		Timestamp: now(),
	})
}
