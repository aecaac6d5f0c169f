package errors

import (
	"errors"
	"fmt"
)

// Machine-readable error codes returned to API clients
const (
	CodeNotFound                  = "NOT_FOUND"
	CodePermissionDenied          = "PERMISSION_DENIED"
	CodeOrganizationMismatch      = "ORGANIZATION_MISMATCH"
	CodeDuplicateName             = "DUPLICATE_NAME"
	CodeLimitExceeded             = "LIMIT_EXCEEDED"
	CodeNoFieldsToSave            = "NO_FIELDS_TO_SAVE"
	CodeTenantProvisioningFailure = "TENANT_PROVISIONING_FAILURE"
	CodeAggregationError          = "AGGREGATION_ERROR"
	CodeValidationError           = "VALIDATION_ERROR"
	CodeScopeLocked               = "SCOPE_LOCKED"
	CodeInternal                  = "INTERNAL_ERROR"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this scope"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// LimitExceededError is returned when a per-scope quota would be exceeded
type LimitExceededError struct {
	Entity string
	Limit  int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s limit of %d reached", e.Entity, e.Limit)
}

// Is enables errors.Is() comparison for LimitExceededError
func (e *LimitExceededError) Is(target error) bool {
	t, ok := target.(*LimitExceededError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ProvisioningError reports a tenant database that could not be created.
// The organization record has already been rolled back when this is returned.
type ProvisioningError struct {
	Organization string
	Err          error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("failed to provision database for organization %s: %v", e.Organization, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// AggregationError reports an inconsistency found while merging template sources
type AggregationError struct {
	FieldID string
	Message string
}

func (e *AggregationError) Error() string {
	if e.FieldID != "" {
		return fmt.Sprintf("template aggregation failed: field %q %s", e.FieldID, e.Message)
	}
	return fmt.Sprintf("template aggregation failed: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound       = &NotFoundError{Entity: "organization"}
	ErrBankNotFound               = &NotFoundError{Entity: "bank"}
	ErrTemplateNotFound           = &NotFoundError{Entity: "template"}
	ErrTemplateStructureNotFound  = &NotFoundError{Entity: "template structure"}
	ErrCommonFieldsNotFound       = &NotFoundError{Entity: "common fields"}
	ErrCustomTemplateNotFound     = &NotFoundError{Entity: "custom template"}
	ErrPermissionTemplateNotFound = &NotFoundError{Entity: "permission template"}
	ErrReportNotFound             = &NotFoundError{Entity: "report"}
)

// Already Exists Errors
var (
	ErrOrganizationExists       = &AlreadyExistsError{Entity: "organization", Context: "with this short name"}
	ErrCustomTemplateNameExists = &AlreadyExistsError{Entity: "custom template", Context: "with this name for the bank and property type"}
)

// Authorization Errors
var (
	ErrPermissionDenied       = &AuthorizationError{Message: "permission denied"}
	ErrOrganizationMismatch   = &AuthorizationError{Message: "organization does not match the authenticated context"}
	ErrProtectedDatabase      = &AuthorizationError{Message: "database is protected and cannot be used by an organization"}
	ErrProtectedOrganization  = &AuthorizationError{Message: "system organizations cannot be permanently deleted"}
	ErrMissingOrganizationCtx = &AuthenticationError{Message: "organization context not found"}
	ErrInvalidToken           = &AuthenticationError{Message: "invalid token"}
)

// Business Logic Errors
var (
	ErrCustomTemplateLimitExceeded = &LimitExceededError{Entity: "active custom template", Limit: 3}
	ErrNoFieldsToSave              = &ValidationError{Field: "fieldValues", Message: "no bank-specific fields to save"}
	ErrInvalidShortName            = &ValidationError{Field: "shortName", Message: "must be 2-40 lowercase letters, digits or underscores"}
	ErrScopeLocked                 = errors.New("another request is modifying templates in this scope")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsLimitExceeded checks if an error is a LimitExceededError
func IsLimitExceeded(err error) bool {
	var limitErr *LimitExceededError
	return errors.As(err, &limitErr)
}

// IsProvisioning checks if an error is a ProvisioningError
func IsProvisioning(err error) bool {
	var provErr *ProvisioningError
	return errors.As(err, &provErr)
}

// IsAggregation checks if an error is an AggregationError
func IsAggregation(err error) bool {
	var aggErr *AggregationError
	return errors.As(err, &aggErr)
}

// Code maps an error to its machine-readable code
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOrganizationMismatch):
		return CodeOrganizationMismatch
	case errors.Is(err, ErrNoFieldsToSave):
		return CodeNoFieldsToSave
	case errors.Is(err, ErrScopeLocked):
		return CodeScopeLocked
	case IsNotFound(err):
		return CodeNotFound
	case IsAlreadyExists(err):
		return CodeDuplicateName
	case IsLimitExceeded(err):
		return CodeLimitExceeded
	case IsProvisioning(err):
		return CodeTenantProvisioningFailure
	case IsAggregation(err):
		return CodeAggregationError
	case IsAuthorization(err), IsAuthentication(err):
		return CodePermissionDenied
	case IsValidation(err):
		return CodeValidationError
	}
	return CodeInternal
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldCollisionError reports a document-derived field clashing with a declared field
func NewFieldCollisionError(fieldID, sectionID string) error {
	return &AggregationError{FieldID: fieldID, Message: fmt.Sprintf("from the document catalog collides with a declared field in section %q", sectionID)}
}

// NewDuplicateFieldError reports a field id appearing twice in the merged namespace
func NewDuplicateFieldError(fieldID string) error {
	return &AggregationError{FieldID: fieldID, Message: "appears more than once in the merged template"}
}
