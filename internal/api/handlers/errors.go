package handlers

import (
	"net/http"
	"strconv"

	"valuation-backend/internal/auth"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/logger"
	"valuation-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var statusByCode = map[string]int{
	apperrors.CodeNotFound:                  http.StatusNotFound,
	apperrors.CodePermissionDenied:          http.StatusForbidden,
	apperrors.CodeOrganizationMismatch:      http.StatusForbidden,
	apperrors.CodeDuplicateName:             http.StatusConflict,
	apperrors.CodeLimitExceeded:             http.StatusUnprocessableEntity,
	apperrors.CodeNoFieldsToSave:            http.StatusBadRequest,
	apperrors.CodeValidationError:           http.StatusBadRequest,
	apperrors.CodeScopeLocked:               http.StatusConflict,
	apperrors.CodeTenantProvisioningFailure: http.StatusInternalServerError,
	apperrors.CodeAggregationError:          http.StatusInternalServerError,
	apperrors.CodeInternal:                  http.StatusInternalServerError,
}

// respondError writes err with the status matching its code
func respondError(c *gin.Context, err error) {
	code := apperrors.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if apperrors.IsAuthentication(err) {
		status = http.StatusUnauthorized
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).WithField("code", code).Error("Request failed")
		if code == apperrors.CodeInternal {
			message = "internal server error"
		}
	}
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

func badRequest(c *gin.Context, message string, err error) {
	body := gin.H{"error": message, "code": apperrors.CodeValidationError}
	if err != nil {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		badRequest(c, "Invalid "+param+": invalid UUID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// tenantScope returns the caller and the bound tenant database, writing an error when either is missing
func tenantScope(c *gin.Context) (*tenant.OrganizationContext, *tenant.Handle, bool) {
	oc, ok := auth.GetOrganizationContext(c)
	if !ok {
		respondError(c, apperrors.ErrMissingOrganizationCtx)
		return nil, nil, false
	}
	h, ok := auth.GetTenantHandle(c)
	if !ok {
		respondError(c, apperrors.ErrMissingOrganizationCtx)
		return nil, nil, false
	}
	return oc, h, true
}
