package service

import (
	"context"
	"errors"
	"fmt"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/logger"
	"valuation-backend/internal/repository"
	"valuation-backend/internal/tenant"

	"gorm.io/gorm"
)

// Subject is the caller whose capabilities are evaluated
type Subject struct {
	UserID    string
	Role      models.Role
	Overrides models.Capabilities
}

// PermissionService resolves effective capabilities from role templates and per-user overrides.
// Nothing is cached; every check reads the current templates.
type PermissionService struct {
	templates repository.PermissionTemplateRepositoryInterface
	stores    repository.TenantStoreFactory
}

// NewPermissionService creates a new permission service
func NewPermissionService(templates repository.PermissionTemplateRepositoryInterface, stores repository.TenantStoreFactory) *PermissionService {
	return &PermissionService{templates: templates, stores: stores}
}

// GetEffectivePermissions returns the role template capabilities with the subject's overrides applied
func (s *PermissionService) GetEffectivePermissions(ctx context.Context, subject Subject) (models.Capabilities, error) {
	if !subject.Role.IsValid() {
		return models.Capabilities{}.Apply(subject.Overrides), nil
	}

	tpl, err := s.templates.GetByRole(ctx, subject.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPermissionTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get permission template: %w", err)
	}
	return tpl.Capabilities.Data().Apply(subject.Overrides), nil
}

// HasPermission evaluates a single capability
func (s *PermissionService) HasPermission(ctx context.Context, subject Subject, resource, action string) (bool, error) {
	caps, err := s.GetEffectivePermissions(ctx, subject)
	if err != nil {
		return false, err
	}
	return caps.Allows(resource, action), nil
}

// SubjectFor builds the subject of an authenticated caller, loading overrides from the tenant database
func (s *PermissionService) SubjectFor(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext) (Subject, error) {
	subject := Subject{UserID: oc.UserID, Role: oc.PrimaryRole()}
	if h == nil || h.DB == nil {
		return subject, nil
	}

	settings, err := s.stores.UserSettings(h.DB).GetByUserID(ctx, oc.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return subject, nil
		}
		return Subject{}, fmt.Errorf("failed to load user settings: %w", err)
	}
	subject.Overrides = settings.PermissionOverrides.Data()
	return subject, nil
}

// Require returns ErrPermissionDenied unless the caller holds resource.action
func (s *PermissionService) Require(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, resource, action string) error {
	if oc == nil {
		return apperrors.ErrMissingOrganizationCtx
	}
	subject, err := s.SubjectFor(ctx, h, oc)
	if err != nil {
		return err
	}
	allowed, err := s.HasPermission(ctx, subject, resource, action)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ErrPermissionDenied
		}
		return err
	}
	if !allowed {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"role":     subject.Role,
			"resource": resource,
			"action":   action,
		}).Info("Permission denied")
		return apperrors.ErrPermissionDenied
	}
	return nil
}
