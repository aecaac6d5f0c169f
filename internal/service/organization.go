package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/logger"
	"valuation-backend/internal/repository"
	"valuation-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles the organization lifecycle: the admin record and its tenant database
type OrganizationService struct {
	repo        repository.OrganizationRepositoryInterface
	directory   TenantDirectory
	provisioner TenantProvisioner
	validator   *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, directory TenantDirectory, provisioner TenantProvisioner, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:        repo,
		directory:   directory,
		provisioner: provisioner,
		validator:   validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	ShortName    string `json:"short_name" validate:"required,min=2,max=40"`
	FullName     string `json:"full_name" validate:"required,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email,max=255"`
	IsSystem     bool   `json:"is_system"`
}

// UpdateOrganizationRequest represents the request to update an organization.
// The short name and database binding never change.
type UpdateOrganizationRequest struct {
	FullName     string `json:"full_name" validate:"required,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email,max=255"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID               uuid.UUID `json:"id"`
	ShortName        string    `json:"short_name"`
	FullName         string    `json:"full_name"`
	ContactEmail     string    `json:"contact_email"`
	DatabaseName     string    `json:"database_name"`
	ReferenceCounter int64     `json:"reference_counter"`
	IsActive         bool      `json:"is_active"`
	IsSystem         bool      `json:"is_system"`
	DeactivatedAt    string    `json:"deactivated_at,omitempty"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create registers an organization and provisions its database. When provisioning
// fails the record is removed again and a ProvisioningError is returned.
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest, actor string) (*OrganizationResponse, error) {
	req.ShortName = strings.ToLower(strings.TrimSpace(req.ShortName))
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := tenant.ValidateShortName(req.ShortName); err != nil {
		return nil, err
	}

	dbName := s.directory.DatabaseNameFor(req.ShortName)
	if err := s.directory.CheckBindable(dbName); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByShortName(ctx, req.ShortName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		BaseModel:    models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
		ShortName:    req.ShortName,
		FullName:     req.FullName,
		ContactEmail: req.ContactEmail,
		DatabaseName: dbName,
		IsActive:     true,
		IsSystem:     req.IsSystem,
	}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{"org": org.ShortName, "database": dbName})
	if err := s.provisioner.Create(ctx, dbName); err != nil {
		log.WithError(err).Error("Tenant provisioning failed, rolling back organization")
		if delErr := s.repo.Delete(context.WithoutCancel(ctx), org.ID); delErr != nil {
			log.WithError(delErr).Error("Failed to roll back organization record")
		}
		return nil, &apperrors.ProvisioningError{Organization: org.ShortName, Err: err}
	}

	log.Info("Organization created")
	return toOrganizationResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// List returns organizations ordered by short name
func (s *OrganizationService) List(ctx context.Context, page, pageSize int) (*OrganizationListResponse, error) {
	limit, offset, page := normalizePagination(page, pageSize)

	orgs, total, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	out := make([]OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		out = append(out, *toOrganizationResponse(&orgs[i]))
	}
	return &OrganizationListResponse{
		Organizations: out,
		Total:         total,
		Page:          page,
		PageSize:      limit,
	}, nil
}

// Update changes the descriptive fields of an organization
func (s *OrganizationService) Update(ctx context.Context, id uuid.UUID, req *UpdateOrganizationRequest, actor string) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	org, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	org.FullName = req.FullName
	org.ContactEmail = req.ContactEmail
	org.UpdatedBy = actor
	if err := s.repo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return toOrganizationResponse(org), nil
}

// Delete deactivates an organization, keeping its database. A hard delete also drops
// the database and the record; it is refused for system organizations and protected databases.
func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID, hard bool, actor string) error {
	org, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{"org": org.ShortName, "hard": hard})

	if !hard {
		if !org.IsActive {
			return nil
		}
		now := time.Now()
		org.IsActive = false
		org.DeactivatedAt = &now
		org.UpdatedBy = actor
		if err := s.repo.Update(ctx, org); err != nil {
			return fmt.Errorf("failed to deactivate organization: %w", err)
		}
		s.directory.Invalidate(org.ShortName)
		log.Info("Organization deactivated")
		return nil
	}

	if org.IsSystem {
		return apperrors.ErrProtectedOrganization
	}
	if s.directory.IsProtected(org.DatabaseName) {
		return apperrors.ErrProtectedDatabase
	}

	// The record goes first: a failed drop leaves an orphaned database, never an
	// organization without one.
	if err := s.repo.Delete(ctx, org.ID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	s.directory.Invalidate(org.ShortName)
	if err := s.provisioner.Drop(ctx, org.DatabaseName); err != nil {
		log.WithError(err).WithField("database", org.DatabaseName).Error("Organization deleted but its database could not be dropped")
		return fmt.Errorf("failed to drop organization database: %w", err)
	}
	log.Warn("Organization permanently deleted")
	return nil
}

// Reactivate restores a deactivated organization
func (s *OrganizationService) Reactivate(ctx context.Context, id uuid.UUID, actor string) (*OrganizationResponse, error) {
	org, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.IsActive {
		return toOrganizationResponse(org), nil
	}

	org.IsActive = true
	org.DeactivatedAt = nil
	org.UpdatedBy = actor
	if err := s.repo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to reactivate organization: %w", err)
	}
	logger.WithContext(ctx).WithField("org", org.ShortName).Info("Organization reactivated")
	return toOrganizationResponse(org), nil
}

// NextReferenceNumber allocates the next report reference of an organization, e.g. ACME-000042
func (s *OrganizationService) NextReferenceNumber(ctx context.Context, shortName string) (string, error) {
	n, err := s.repo.IncrementReferenceCounter(ctx, shortName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrOrganizationNotFound
		}
		return "", fmt.Errorf("failed to allocate reference number: %w", err)
	}
	return FormatReferenceNumber(shortName, n), nil
}

// FormatReferenceNumber renders a counter value as <SHORTNAME>-<6 digits>
func FormatReferenceNumber(shortName string, n int64) string {
	return fmt.Sprintf("%s-%06d", strings.ToUpper(shortName), n)
}

func (s *OrganizationService) load(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	resp := &OrganizationResponse{
		ID:               org.ID,
		ShortName:        org.ShortName,
		FullName:         org.FullName,
		ContactEmail:     org.ContactEmail,
		DatabaseName:     org.DatabaseName,
		ReferenceCounter: org.ReferenceCounter,
		IsActive:         org.IsActive,
		IsSystem:         org.IsSystem,
		CreatedAt:        org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        org.UpdatedAt.Format(time.RFC3339),
	}
	if org.DeactivatedAt != nil {
		resp.DeactivatedAt = org.DeactivatedAt.Format(time.RFC3339)
	}
	return resp
}
