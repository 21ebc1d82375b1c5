package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/services"
)

type RoadmapHandler struct {
	log            *logger.Logger
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(log *logger.Logger, roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		log:            log.With("handler", "RoadmapHandler"),
		roadmapService: roadmapService,
	}
}

// GET /api/roadmap
func (h *RoadmapHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	rows, err := h.roadmapService.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Warn("List roadmap failed", "user_id", userID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

// POST /api/roadmap
func (h *RoadmapHandler) Upsert(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req services.UpsertRoadmapInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	row, err := h.roadmapService.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		h.log.Warn("Upsert roadmap failed", "user_id", userID, "phase", req.Phase, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, row)
}
