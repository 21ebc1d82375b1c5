package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/services"
)

type CatalogHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:            log.With("handler", "CatalogHandler"),
		catalogService: catalogService,
	}
}

// GET /api/universities
func (h *CatalogHandler) ListUniversities(c *gin.Context) {
	rows, err := h.catalogService.ListUniversities(c.Request.Context())
	if err != nil {
		h.log.Warn("List universities failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

// GET /api/scholarships
func (h *CatalogHandler) ListScholarships(c *gin.Context) {
	rows, err := h.catalogService.ListScholarships(c.Request.Context())
	if err != nil {
		h.log.Warn("List scholarships failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}
