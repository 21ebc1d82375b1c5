package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/services"
)

type EssayHandler struct {
	log             *logger.Logger
	essayService    services.EssayService
	feedbackService services.FeedbackService
}

func NewEssayHandler(log *logger.Logger, essayService services.EssayService, feedbackService services.FeedbackService) *EssayHandler {
	return &EssayHandler{
		log:             log.With("handler", "EssayHandler"),
		essayService:    essayService,
		feedbackService: feedbackService,
	}
}

func essayIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// POST /api/essays
func (h *EssayHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req struct {
		Title  string `json:"title"`
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	essay, err := h.essayService.Create(c.Request.Context(), userID, req.Title, req.Prompt)
	if err != nil {
		h.log.Warn("Create essay failed", "user_id", userID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, essay)
}

// GET /api/essays
func (h *EssayHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	essays, err := h.essayService.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Warn("List essays failed", "user_id", userID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, essays)
}

// GET /api/essays/:id
func (h *EssayHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	essayID, ok := essayIDParam(c)
	if !ok {
		RespondServiceError(c, apperr.ErrNotFound)
		return
	}
	essay, err := h.essayService.Get(c.Request.Context(), userID, essayID)
	if err != nil {
		h.log.Warn("Fetch essay failed", "user_id", userID, "essay_id", essayID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, essay)
}

// PATCH /api/essays/:id
func (h *EssayHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	essayID, ok := essayIDParam(c)
	if !ok {
		RespondServiceError(c, apperr.ErrNotFound)
		return
	}
	var req services.UpdateEssayInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	essay, err := h.essayService.Update(c.Request.Context(), userID, essayID, req)
	if err != nil {
		h.log.Warn("Update essay failed", "user_id", userID, "essay_id", essayID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, essay)
}

// GET /api/essays/:id/versions
func (h *EssayHandler) ListVersions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	essayID, ok := essayIDParam(c)
	if !ok {
		RespondServiceError(c, apperr.ErrNotFound)
		return
	}
	versions, err := h.essayService.ListVersions(c.Request.Context(), userID, essayID)
	if err != nil {
		h.log.Warn("List versions failed", "user_id", userID, "essay_id", essayID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, versions)
}

// POST /api/essays/:id/versions
func (h *EssayHandler) SaveVersion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	essayID, ok := essayIDParam(c)
	if !ok {
		RespondServiceError(c, apperr.ErrNotFound)
		return
	}
	var req services.SaveVersionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	version, err := h.essayService.SaveVersion(c.Request.Context(), userID, essayID, req)
	if err != nil {
		h.log.Warn("Save version failed", "user_id", userID, "essay_id", essayID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, version)
}

// POST /api/essays/:id/feedback
func (h *EssayHandler) Feedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	essayID, ok := essayIDParam(c)
	if !ok {
		RespondServiceError(c, apperr.ErrNotFound)
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		RespondServiceError(c, apperr.ErrValidation)
		return
	}

	// Ownership check before any model call; a foreign essay id is a 404.
	essay, err := h.essayService.Get(c.Request.Context(), userID, essayID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	feedback, err := h.feedbackService.Generate(c.Request.Context(), req.Content, essay.Prompt)
	if err != nil {
		h.log.Warn("Feedback generation failed", "user_id", userID, "essay_id", essayID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, feedback)
}
