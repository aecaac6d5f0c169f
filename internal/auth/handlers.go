package auth

import (
	"net/http"
	"strings"

	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// AuthValidateResponse is returned for a valid token
type AuthValidateResponse struct {
	Valid        bool                        `json:"valid"`
	Organization *tenant.OrganizationContext `json:"organization"`
	Claims       *AuthClaims                 `json:"claims"`
}

// ValidateToken handles POST /api/v1/auth/validate
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required", "code": apperrors.CodePermissionDenied})
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format", "code": apperrors.CodePermissionDenied})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "code": apperrors.CodePermissionDenied, "details": err.Error()})
		return
	}

	oc, err := claims.OrganizationContext()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": apperrors.CodePermissionDenied})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Organization: oc, Claims: claims})
}
