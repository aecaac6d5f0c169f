package handlers

import (
	"net/http"

	"valuation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for valuation reports
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// List handles GET /api/v1/orgs/:org/reports
func (h *ReportHandler) List(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.service.List(c.Request.Context(), th, oc, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/v1/orgs/:org/reports
func (h *ReportHandler) Create(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}

	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	report, err := h.service.Create(c.Request.Context(), th, oc, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// Get handles GET /api/v1/orgs/:org/reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.service.Get(c.Request.Context(), th, oc, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
