package handlers

import (
	"net/http"

	"valuation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler serves the shared bank template catalog
type TemplateHandler struct {
	service service.TemplateServiceInterface
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(service service.TemplateServiceInterface) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// ListBanks handles GET /api/v1/banks
func (h *TemplateHandler) ListBanks(c *gin.Context) {
	banks, err := h.service.ListBanks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banks": banks})
}

// GetAggregatedTemplate handles GET /api/v1/templates/:bankCode/:propertyType
func (h *TemplateHandler) GetAggregatedTemplate(c *gin.Context) {
	resp, err := h.service.GetAggregatedTemplate(c.Request.Context(), c.Param("bankCode"), c.Param("propertyType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCustomTemplateFields handles GET /api/v1/templates/:bankCode/:propertyType/custom-fields
func (h *TemplateHandler) GetCustomTemplateFields(c *gin.Context) {
	resp, err := h.service.GetCustomTemplateFields(c.Request.Context(), c.Param("bankCode"), c.Param("propertyType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListDocumentTypes handles GET /api/v1/document-types
func (h *TemplateHandler) ListDocumentTypes(c *gin.Context) {
	docs, err := h.service.ListDocumentTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documentTypes": docs})
}
