package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/edusense-api/internal/api/shared"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
	"github.com/phrazzld/edusense-api/internal/service"
)

// CurriculumHandler handles curriculum generation HTTP requests
type CurriculumHandler struct {
	curriculumService service.CurriculumService
	logger            *slog.Logger
	debug             bool
}

// NewCurriculumHandler creates a new CurriculumHandler
func NewCurriculumHandler(
	curriculumService service.CurriculumService,
	logger *slog.Logger,
	debug bool,
) *CurriculumHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurriculumHandler{curriculumService: curriculumService, logger: logger, debug: debug}
}

// GenerateCurriculum handles POST /api/v1/curriculum requests
func (h *CurriculumHandler) GenerateCurriculum(w http.ResponseWriter, r *http.Request) {
	req := NewCurriculumRequest()
	if !decodeAndValidate(w, r, &req, h.debug) {
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("processing curriculum request",
		"duration_weeks", req.DurationWeeks,
		"difficulty_level", req.DifficultyLevel)

	curriculum, err := h.curriculumService.GenerateCurriculum(r.Context(), req.params())
	if err != nil {
		HandleAPIError(w, r, err, h.debug)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CurriculumResponse{
		Curriculum: *curriculum,
		Timestamp:  now(),
	})
}
