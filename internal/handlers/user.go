package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/requestdata"
	"github.com/somapath/somapath-backend/internal/services"
	"github.com/somapath/somapath-backend/internal/types"
)

// currentUserID pulls the authenticated user injected by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return rd.UserID, true
}

func respondUnauthenticated(c *gin.Context) {
	RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing or invalid token"))
}

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         log.With("handler", "UserHandler"),
		userService: userService,
	}
}

// GET /api/auth/user
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	user, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		h.log.Warn("Fetch current user failed", "user_id", userID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, user)
}

// PATCH /api/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req types.AcademicScores
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	user, err := h.userService.UpdateAcademicScores(c.Request.Context(), userID, req)
	if err != nil {
		h.log.Warn("Update academic scores failed", "user_id", userID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, user)
}
