package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/lock"
	"valuation-backend/internal/logger"
	"valuation-backend/internal/repository"
	"valuation-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CustomTemplateService manages organization-authored default values for bank templates
type CustomTemplateService struct {
	stores       repository.TenantStoreFactory
	banks        repository.BankRepositoryInterface
	commonFields repository.CommonFieldRepositoryInterface
	permissions  PermissionServiceInterface
	activity     ActivityLoggerInterface
	locker       lock.Locker
	validator    *validator.Validate
}

// NewCustomTemplateService creates a new custom template service
func NewCustomTemplateService(
	stores repository.TenantStoreFactory,
	banks repository.BankRepositoryInterface,
	commonFields repository.CommonFieldRepositoryInterface,
	permissions PermissionServiceInterface,
	activity ActivityLoggerInterface,
	locker lock.Locker,
	validator *validator.Validate,
) *CustomTemplateService {
	if locker == nil {
		locker = lock.NoopLocker{}
	}
	return &CustomTemplateService{
		stores:       stores,
		banks:        banks,
		commonFields: commonFields,
		permissions:  permissions,
		activity:     activity,
		locker:       locker,
		validator:    validator,
	}
}

// CreateCustomTemplateRequest represents the request to create a custom template
type CreateCustomTemplateRequest struct {
	TemplateName string                 `json:"templateName" validate:"required,min=1,max=100"`
	Description  string                 `json:"description" validate:"max=500"`
	BankCode     string                 `json:"bankCode" validate:"required,max=32"`
	PropertyType string                 `json:"propertyType" validate:"required,max=32"`
	FieldValues  map[string]interface{} `json:"fieldValues"`
}

// UpdateCustomTemplateRequest represents a partial update; nil members are left unchanged
type UpdateCustomTemplateRequest struct {
	TemplateName *string                `json:"templateName,omitempty" validate:"omitempty,min=1,max=100"`
	Description  *string                `json:"description,omitempty" validate:"omitempty,max=500"`
	FieldValues  map[string]interface{} `json:"fieldValues,omitempty"`
}

// DuplicateCustomTemplateRequest represents the request to copy a custom template
type DuplicateCustomTemplateRequest struct {
	TemplateName string `json:"templateName" validate:"required,min=1,max=100"`
}

// CustomTemplateResponse is the full custom template payload
type CustomTemplateResponse struct {
	ID             uuid.UUID              `json:"id"`
	OrganizationID uuid.UUID              `json:"organizationId"`
	BankCode       string                 `json:"bankCode"`
	PropertyType   string                 `json:"propertyType"`
	TemplateName   string                 `json:"templateName"`
	Description    string                 `json:"description"`
	FieldValues    map[string]interface{} `json:"fieldValues"`
	IsActive       bool                   `json:"isActive"`
	Version        int                    `json:"version"`
	UsageCount     int                    `json:"usageCount"`
	CreatedBy      string                 `json:"createdBy"`
	CreatedAt      string                 `json:"createdAt"`
	UpdatedAt      string                 `json:"updatedAt"`
}

// CustomTemplateSummary is the list projection of a custom template
type CustomTemplateSummary struct {
	ID           uuid.UUID `json:"id"`
	TemplateName string    `json:"templateName"`
	Description  string    `json:"description"`
	BankCode     string    `json:"bankCode"`
	PropertyType string    `json:"propertyType"`
	FieldCount   int       `json:"fieldCount"`
	Version      int       `json:"version"`
	UsageCount   int       `json:"usageCount"`
	CreatedBy    string    `json:"createdBy"`
	UpdatedAt    string    `json:"updatedAt"`
}

// Create validates and stores a new custom template. Checks run in order: permission,
// request shape, name uniqueness, active template limit, and finally that filtering left a value to save.
func (s *CustomTemplateService) Create(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, req *CreateCustomTemplateRequest) (*CustomTemplateResponse, error) {
	if err := s.authorize(ctx, h, oc, models.ActionCreate); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := s.ensureTemplateExists(ctx, req.BankCode, req.PropertyType); err != nil {
		return nil, err
	}

	tpl := &models.CustomTemplate{
		BaseModel:      models.BaseModel{CreatedBy: oc.UserID, UpdatedBy: oc.UserID},
		OrganizationID: oc.OrganizationID,
		BankCode:       req.BankCode,
		PropertyType:   req.PropertyType,
		TemplateName:   strings.TrimSpace(req.TemplateName),
		Description:    req.Description,
		IsActive:       true,
		Version:        1,
	}
	if err := s.createInScope(ctx, h, tpl, req.FieldValues); err != nil {
		return nil, err
	}

	s.logActivity(h, oc, "Created custom template "+tpl.TemplateName, "create", tpl)
	return toCustomTemplateResponse(tpl), nil
}

// Duplicate copies an active template under a new name, applying the same scope rules as Create
func (s *CustomTemplateService) Duplicate(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID, req *DuplicateCustomTemplateRequest) (*CustomTemplateResponse, error) {
	if err := s.authorize(ctx, h, oc, models.ActionCreate); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	source, err := s.loadOwned(ctx, h, oc, id)
	if err != nil {
		return nil, err
	}

	tpl := &models.CustomTemplate{
		BaseModel:      models.BaseModel{CreatedBy: oc.UserID, UpdatedBy: oc.UserID},
		OrganizationID: oc.OrganizationID,
		BankCode:       source.BankCode,
		PropertyType:   source.PropertyType,
		TemplateName:   strings.TrimSpace(req.TemplateName),
		Description:    source.Description,
		IsActive:       true,
		Version:        1,
	}
	if err := s.createInScope(ctx, h, tpl, source.FieldValues); err != nil {
		return nil, err
	}

	s.logActivity(h, oc, "Duplicated custom template "+source.TemplateName+" as "+tpl.TemplateName, "create", tpl)
	return toCustomTemplateResponse(tpl), nil
}

func (s *CustomTemplateService) createInScope(ctx context.Context, h *tenant.Handle, tpl *models.CustomTemplate, values map[string]interface{}) error {
	repo := s.stores.CustomTemplates(h.DB)

	held, err := s.locker.Acquire(ctx, lock.ScopeKey(h.ShortName, tpl.BankCode, tpl.PropertyType))
	if err != nil {
		return err
	}
	defer func() {
		if err := held.Release(context.WithoutCancel(ctx)); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to release custom template scope lock")
		}
	}()

	exists, err := repo.ActiveNameExists(ctx, tpl.OrganizationID, tpl.BankCode, tpl.PropertyType, tpl.TemplateName, nil)
	if err != nil {
		return fmt.Errorf("failed to check custom template name: %w", err)
	}
	if exists {
		return apperrors.ErrCustomTemplateNameExists
	}

	count, err := repo.CountActive(ctx, tpl.OrganizationID, tpl.BankCode, tpl.PropertyType)
	if err != nil {
		return fmt.Errorf("failed to count custom templates: %w", err)
	}
	if count >= models.MaxActiveCustomTemplates {
		return apperrors.ErrCustomTemplateLimitExceeded
	}

	filtered, err := s.filterFieldValues(ctx, values)
	if err != nil {
		return err
	}
	tpl.FieldValues = filtered

	if err := repo.Create(ctx, tpl); err != nil {
		return fmt.Errorf("failed to create custom template: %w", err)
	}
	return nil
}

// Update applies a partial update to an owned, active template and bumps its version
func (s *CustomTemplateService) Update(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID, req *UpdateCustomTemplateRequest) (*CustomTemplateResponse, error) {
	if err := s.authorize(ctx, h, oc, models.ActionEdit); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	tpl, err := s.loadOwned(ctx, h, oc, id)
	if err != nil {
		return nil, err
	}
	repo := s.stores.CustomTemplates(h.DB)

	if req.TemplateName != nil {
		name := strings.TrimSpace(*req.TemplateName)
		if !strings.EqualFold(name, tpl.TemplateName) {
			exists, err := repo.ActiveNameExists(ctx, tpl.OrganizationID, tpl.BankCode, tpl.PropertyType, name, &tpl.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check custom template name: %w", err)
			}
			if exists {
				return nil, apperrors.ErrCustomTemplateNameExists
			}
		}
		tpl.TemplateName = name
	}
	if req.Description != nil {
		tpl.Description = *req.Description
	}
	if req.FieldValues != nil {
		filtered, err := s.filterFieldValues(ctx, req.FieldValues)
		if err != nil {
			return nil, err
		}
		tpl.FieldValues = filtered
	}

	tpl.Version++
	tpl.UpdatedBy = oc.UserID
	if err := repo.Update(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to update custom template: %w", err)
	}

	s.logActivity(h, oc, "Updated custom template "+tpl.TemplateName, "update", tpl)
	return toCustomTemplateResponse(tpl), nil
}

// Delete soft-deletes an owned template
func (s *CustomTemplateService) Delete(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID) error {
	if err := s.authorize(ctx, h, oc, models.ActionDelete); err != nil {
		return err
	}
	tpl, err := s.loadOwned(ctx, h, oc, id)
	if err != nil {
		return err
	}

	tpl.IsActive = false
	tpl.Version++
	tpl.UpdatedBy = oc.UserID
	if err := s.stores.CustomTemplates(h.DB).Update(ctx, tpl); err != nil {
		return fmt.Errorf("failed to delete custom template: %w", err)
	}

	s.logActivity(h, oc, "Deleted custom template "+tpl.TemplateName, "delete", tpl)
	return nil
}

// Get returns the full payload of an owned, active template
func (s *CustomTemplateService) Get(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID) (*CustomTemplateResponse, error) {
	if err := s.authorize(ctx, h, oc, models.ActionView); err != nil {
		return nil, err
	}
	tpl, err := s.loadOwned(ctx, h, oc, id)
	if err != nil {
		return nil, err
	}
	return toCustomTemplateResponse(tpl), nil
}

// List returns active templates without their field values. Empty filters match everything.
func (s *CustomTemplateService) List(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, bankCode, propertyType string) ([]CustomTemplateSummary, error) {
	if err := s.authorize(ctx, h, oc, models.ActionView); err != nil {
		return nil, err
	}
	tpls, err := s.stores.CustomTemplates(h.DB).ListActive(ctx, oc.OrganizationID, bankCode, propertyType)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom templates: %w", err)
	}

	out := make([]CustomTemplateSummary, 0, len(tpls))
	for _, t := range tpls {
		out = append(out, CustomTemplateSummary{
			ID:           t.ID,
			TemplateName: t.TemplateName,
			Description:  t.Description,
			BankCode:     t.BankCode,
			PropertyType: t.PropertyType,
			FieldCount:   len(t.FieldValues),
			Version:      t.Version,
			UsageCount:   t.UsageCount,
			CreatedBy:    t.CreatedBy,
			UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// authorize binds the caller to the tenant and checks the customTemplates capability, before anything else
func (s *CustomTemplateService) authorize(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, action string) error {
	if err := tenant.AuthorizeHandle(oc, h); err != nil {
		return err
	}
	return s.permissions.Require(ctx, h, oc, models.ResourceCustomTemplates, action)
}

func (s *CustomTemplateService) loadOwned(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID) (*models.CustomTemplate, error) {
	tpl, err := s.stores.CustomTemplates(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get custom template: %w", err)
	}
	if tpl.OrganizationID != oc.OrganizationID {
		return nil, apperrors.ErrOrganizationMismatch
	}
	if !tpl.IsActive {
		return nil, apperrors.ErrCustomTemplateNotFound
	}
	return tpl, nil
}

func (s *CustomTemplateService) ensureTemplateExists(ctx context.Context, bankCode, propertyType string) error {
	bank, err := s.banks.GetByCode(ctx, bankCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBankNotFound
		}
		return fmt.Errorf("failed to get bank: %w", err)
	}
	if _, ok := bank.TemplateFor(propertyType); !ok {
		return apperrors.ErrTemplateNotFound
	}
	return nil
}

func (s *CustomTemplateService) filterFieldValues(ctx context.Context, values map[string]interface{}) (datatypes.JSONMap, error) {
	ids, err := s.commonFields.GetActiveFieldIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load common field ids: %w", err)
	}
	common := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		common[id] = struct{}{}
	}

	filtered := FilterFieldValues(values, common)
	if len(filtered) == 0 {
		return nil, apperrors.ErrNoFieldsToSave
	}
	return datatypes.JSONMap(filtered), nil
}

// FilterFieldValues drops common field ids and empty values: nil, blank strings,
// and empty slices or maps
func FilterFieldValues(values map[string]interface{}, commonIDs map[string]struct{}) map[string]interface{} {
	out := make(map[string]interface{}, len(values))
	for id, v := range values {
		if _, isCommon := commonIDs[id]; isCommon {
			continue
		}
		if isEmptyValue(v) {
			continue
		}
		out[id] = v
	}
	return out
}

func isEmptyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (s *CustomTemplateService) logActivity(h *tenant.Handle, oc *tenant.OrganizationContext, action, actionType string, tpl *models.CustomTemplate) {
	if s.activity == nil {
		return
	}
	s.activity.Log(h, ActivityEntry{
		UserID:       oc.UserID,
		OrgShortName: h.ShortName,
		Action:       action,
		ActionType:   actionType,
		EntityType:   "custom_template",
		EntityID:     tpl.ID.String(),
		Metadata: map[string]interface{}{
			"bankCode":     tpl.BankCode,
			"propertyType": tpl.PropertyType,
			"version":      tpl.Version,
		},
	})
}

func toCustomTemplateResponse(t *models.CustomTemplate) *CustomTemplateResponse {
	values := map[string]interface{}(t.FieldValues)
	if values == nil {
		values = map[string]interface{}{}
	}
	return &CustomTemplateResponse{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		BankCode:       t.BankCode,
		PropertyType:   t.PropertyType,
		TemplateName:   t.TemplateName,
		Description:    t.Description,
		FieldValues:    values,
		IsActive:       t.IsActive,
		Version:        t.Version,
		UsageCount:     t.UsageCount,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      t.UpdatedAt.Format(time.RFC3339),
	}
}
