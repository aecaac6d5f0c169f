package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/logger"
	"valuation-backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by the middleware
const (
	ContextKeyClaims       = "auth_claims"
	ContextKeyOrganization = "organization_context"
	ContextKeyUserID       = "user_id"
	ContextKeyTenant       = "tenant_handle"
)

// TenantResolver binds an organization short name to its tenant database
type TenantResolver interface {
	Resolve(ctx context.Context, shortName string) (*tenant.Handle, error)
}

// AuthMiddleware provides JWT authentication and tenant binding middleware
type AuthMiddleware struct {
	service  *AuthService
	resolver TenantResolver
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, resolver TenantResolver) *AuthMiddleware {
	return &AuthMiddleware{service: service, resolver: resolver}
}

func abortWith(c *gin.Context, status int, message, code string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message, "code": code})
}

// RequireAuth validates JWT tokens and sets the organization context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, http.StatusUnauthorized, "Authorization header is required", apperrors.CodePermissionDenied)
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortWith(c, http.StatusUnauthorized, "Invalid authorization header format", apperrors.CodePermissionDenied)
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected bearer token")
			abortWith(c, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error(), apperrors.CodePermissionDenied)
			return
		}

		oc, err := claims.OrganizationContext()
		if err != nil {
			abortWith(c, http.StatusUnauthorized, err.Error(), apperrors.CodePermissionDenied)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyOrganization, oc)
		c.Set(ContextKeyUserID, oc.UserID)

		ctx := tenant.WithOrganizationContext(c.Request.Context(), oc)
		ctx = logger.IntoContext(ctx, oc.OrgShortName, oc.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireOrganization checks the addressed organization against the token and binds its database.
// Routes without an :org parameter act on the token's own organization.
func (m *AuthMiddleware) RequireOrganization() gin.HandlerFunc {
	return func(c *gin.Context) {
		oc, ok := GetOrganizationContext(c)
		if !ok {
			abortWith(c, http.StatusUnauthorized, apperrors.ErrMissingOrganizationCtx.Error(), apperrors.CodePermissionDenied)
			return
		}

		org := c.Param("org")
		if org == "" {
			org = oc.OrgShortName
		}

		if err := tenant.Authorize(oc, org); err != nil {
			abortWith(c, http.StatusForbidden, err.Error(), apperrors.Code(err))
			return
		}

		handle, err := m.resolver.Resolve(c.Request.Context(), org)
		if err != nil {
			switch {
			case apperrors.IsNotFound(err):
				abortWith(c, http.StatusNotFound, err.Error(), apperrors.CodeNotFound)
			case apperrors.IsAuthorization(err):
				abortWith(c, http.StatusForbidden, err.Error(), apperrors.CodePermissionDenied)
			default:
				logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to resolve tenant database")
				abortWith(c, http.StatusInternalServerError, "Failed to resolve organization database", apperrors.CodeInternal)
			}
			return
		}
		if err := tenant.AuthorizeHandle(oc, handle); err != nil {
			logger.WithContext(c.Request.Context()).WithField("org", org).Warn("Token organization id does not match the bound tenant")
			abortWith(c, http.StatusForbidden, err.Error(), apperrors.Code(err))
			return
		}

		c.Set(ContextKeyTenant, handle)
		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}

// GetOrganizationContext is a helper function to extract the caller's organization context
func GetOrganizationContext(c *gin.Context) (*tenant.OrganizationContext, bool) {
	value, exists := c.Get(ContextKeyOrganization)
	if !exists {
		return nil, false
	}

	oc, ok := value.(*tenant.OrganizationContext)
	return oc, ok && oc != nil
}

// GetTenantHandle is a helper function to extract the bound tenant database
func GetTenantHandle(c *gin.Context) (*tenant.Handle, bool) {
	value, exists := c.Get(ContextKeyTenant)
	if !exists {
		return nil, false
	}

	h, ok := value.(*tenant.Handle)
	return h, ok && h != nil
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
