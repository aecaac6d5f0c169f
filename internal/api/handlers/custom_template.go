package handlers

import (
	"net/http"

	"valuation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomTemplateHandler handles HTTP requests for organization custom templates
type CustomTemplateHandler struct {
	service service.CustomTemplateServiceInterface
}

// NewCustomTemplateHandler creates a new custom template handler
func NewCustomTemplateHandler(service service.CustomTemplateServiceInterface) *CustomTemplateHandler {
	return &CustomTemplateHandler{service: service}
}

// List handles GET /api/v1/orgs/:org/custom-templates?bankCode=&propertyType=
func (h *CustomTemplateHandler) List(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}

	templates, err := h.service.List(c.Request.Context(), th, oc, c.Query("bankCode"), c.Query("propertyType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates, "total": len(templates)})
}

// Create handles POST /api/v1/orgs/:org/custom-templates
func (h *CustomTemplateHandler) Create(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}

	var req service.CreateCustomTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	tpl, err := h.service.Create(c.Request.Context(), th, oc, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// Get handles GET /api/v1/orgs/:org/custom-templates/:id
func (h *CustomTemplateHandler) Get(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tpl, err := h.service.Get(c.Request.Context(), th, oc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Update handles PUT /api/v1/orgs/:org/custom-templates/:id
func (h *CustomTemplateHandler) Update(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCustomTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	tpl, err := h.service.Update(c.Request.Context(), th, oc, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Delete handles DELETE /api/v1/orgs/:org/custom-templates/:id
func (h *CustomTemplateHandler) Delete(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), th, oc, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Duplicate handles POST /api/v1/orgs/:org/custom-templates/:id/duplicate
func (h *CustomTemplateHandler) Duplicate(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.DuplicateCustomTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	tpl, err := h.service.Duplicate(c.Request.Context(), th, oc, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}
