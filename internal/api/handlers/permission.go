package handlers

import (
	"net/http"

	"valuation-backend/internal/database/models"
	"valuation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PermissionHandler exposes the caller's effective capabilities
type PermissionHandler struct {
	service service.PermissionServiceInterface
}

// NewPermissionHandler creates a new permission handler
func NewPermissionHandler(service service.PermissionServiceInterface) *PermissionHandler {
	return &PermissionHandler{service: service}
}

// EffectivePermissionsResponse is the body of GET /api/v1/me/permissions
type EffectivePermissionsResponse struct {
	UserID       string              `json:"userId"`
	Organization string              `json:"organization"`
	Role         models.Role         `json:"role"`
	Permissions  models.Capabilities `json:"permissions"`
}

// GetMyPermissions handles GET /api/v1/me/permissions
func (h *PermissionHandler) GetMyPermissions(c *gin.Context) {
	oc, th, ok := tenantScope(c)
	if !ok {
		return
	}

	subject, err := h.service.SubjectFor(c.Request.Context(), th, oc)
	if err != nil {
		respondError(c, err)
		return
	}

	caps, err := h.service.GetEffectivePermissions(c.Request.Context(), subject)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, EffectivePermissionsResponse{
		UserID:       oc.UserID,
		Organization: oc.OrgShortName,
		Role:         subject.Role,
		Permissions:  caps,
	})
}

// Require gates a route on one capability of the caller. The tenant must already be bound.
func (h *PermissionHandler) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		oc, th, ok := tenantScope(c)
		if !ok {
			c.Abort()
			return
		}
		if err := h.service.Require(c.Request.Context(), th, oc, resource, action); err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
