package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/services"
)

type AchievementHandler struct {
	log                *logger.Logger
	achievementService services.AchievementService
}

func NewAchievementHandler(log *logger.Logger, achievementService services.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		log:                log.With("handler", "AchievementHandler"),
		achievementService: achievementService,
	}
}

// GET /api/achievements/user
func (h *AchievementHandler) ListForUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	rows, err := h.achievementService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Warn("List user achievements failed", "user_id", userID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}
