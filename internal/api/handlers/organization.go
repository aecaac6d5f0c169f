package handlers

import (
	"net/http"
	"strconv"

	"valuation-backend/internal/auth"
	"valuation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

func actor(c *gin.Context) string {
	userID, _ := auth.GetUserID(c)
	return userID
}

// CreateOrganization handles POST /api/v1/admin/organizations.
// The organization's database is provisioned before the response is written.
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	org, err := h.service.Create(c.Request.Context(), &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/v1/admin/organizations/:id
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	org, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/v1/admin/organizations
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page, pageSize := parsePagination(c)

	orgs, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /api/v1/admin/organizations/:id
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	org, err := h.service.Update(c.Request.Context(), id, &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/admin/organizations/:id[?hard=true].
// Without hard the organization is only deactivated and its database is kept.
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	hard := false
	if raw := c.Query("hard"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "Invalid hard flag", err)
			return
		}
		hard = parsed
	}

	if err := h.service.Delete(c.Request.Context(), id, hard, actor(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReactivateOrganization handles POST /api/v1/admin/organizations/:id/reactivate
func (h *OrganizationHandler) ReactivateOrganization(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	org, err := h.service.Reactivate(c.Request.Context(), id, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}
