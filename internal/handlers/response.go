package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somapath/somapath-backend/internal/platform/apperr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the error taxonomy onto HTTP statuses. Anything
// unclassified is a generic 500; the caller has already logged context.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, apperr.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", errors.New("not found"))
	case errors.Is(err, apperr.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, apperr.ErrVersionConflict):
		RespondError(c, http.StatusConflict, "version_conflict", errors.New("a version with that number already exists"))
	case errors.Is(err, apperr.ErrFeedbackGeneration):
		RespondError(c, http.StatusInternalServerError, "feedback_generation_failed", errors.New("failed to generate AI feedback"))
	case errors.Is(err, apperr.ErrDataIntegrity):
		RespondError(c, http.StatusInternalServerError, "data_integrity", errors.New("internal data error"))
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("internal error"))
	}
}
