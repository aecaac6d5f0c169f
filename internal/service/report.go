package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/logger"
	"valuation-backend/internal/repository"
	"valuation-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportService creates and reads valuation reports inside a tenant database
type ReportService struct {
	stores        repository.TenantStoreFactory
	banks         repository.BankRepositoryInterface
	organizations OrganizationServiceInterface
	permissions   PermissionServiceInterface
	activity      ActivityLoggerInterface
	validator     *validator.Validate
}

// NewReportService creates a new report service
func NewReportService(
	stores repository.TenantStoreFactory,
	banks repository.BankRepositoryInterface,
	organizations OrganizationServiceInterface,
	permissions PermissionServiceInterface,
	activity ActivityLoggerInterface,
	validator *validator.Validate,
) *ReportService {
	return &ReportService{
		stores:        stores,
		banks:         banks,
		organizations: organizations,
		permissions:   permissions,
		activity:      activity,
		validator:     validator,
	}
}

// CreateReportRequest represents the request to start a report
type CreateReportRequest struct {
	BankCode         string                 `json:"bankCode" validate:"required,max=32"`
	PropertyType     string                 `json:"propertyType" validate:"required,max=32"`
	BranchCode       string                 `json:"branchCode" validate:"max=32"`
	CustomTemplateID *uuid.UUID             `json:"customTemplateId,omitempty"`
	FieldValues      map[string]interface{} `json:"fieldValues"`
}

// ReportListResponse represents a paginated list of reports
type ReportListResponse struct {
	Reports  []models.Report `json:"reports"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create allocates a reference number and stores a draft report. Values of the chosen
// custom template seed the report; explicit field values win over them.
func (s *ReportService) Create(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, req *CreateReportRequest) (*models.Report, error) {
	if err := s.authorize(ctx, h, oc, models.ActionCreate); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	bank, err := s.banks.GetByCode(ctx, req.BankCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	if _, ok := bank.TemplateFor(req.PropertyType); !ok {
		return nil, apperrors.ErrTemplateNotFound
	}

	values := datatypes.JSONMap{}
	templates := s.stores.CustomTemplates(h.DB)
	if req.CustomTemplateID != nil {
		tpl, err := templates.GetByID(ctx, *req.CustomTemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCustomTemplateNotFound
			}
			return nil, fmt.Errorf("failed to get custom template: %w", err)
		}
		if tpl.OrganizationID != oc.OrganizationID {
			return nil, apperrors.ErrOrganizationMismatch
		}
		if !tpl.IsActive || tpl.BankCode != req.BankCode || tpl.PropertyType != req.PropertyType {
			return nil, apperrors.ErrCustomTemplateNotFound
		}
		for k, v := range tpl.FieldValues {
			values[k] = v
		}
	}
	for k, v := range req.FieldValues {
		values[k] = v
	}

	ref, err := s.organizations.NextReferenceNumber(ctx, h.ShortName)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		BaseModel:        models.BaseModel{CreatedBy: oc.UserID, UpdatedBy: oc.UserID},
		OrganizationID:   oc.OrganizationID,
		ReferenceNumber:  ref,
		BankCode:         req.BankCode,
		PropertyType:     req.PropertyType,
		BranchCode:       req.BranchCode,
		CustomTemplateID: req.CustomTemplateID,
		FieldValues:      values,
		Status:           models.ReportStatusDraft,
	}
	if err := s.stores.Reports(h.DB).Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	if req.CustomTemplateID != nil {
		if err := templates.IncrementUsage(ctx, *req.CustomTemplateID); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to record custom template usage")
		}
	}

	if s.activity != nil {
		s.activity.Log(h, ActivityEntry{
			UserID:       oc.UserID,
			OrgShortName: h.ShortName,
			Action:       "Created report " + report.ReferenceNumber,
			ActionType:   "create",
			EntityType:   "report",
			EntityID:     report.ID.String(),
			Metadata: map[string]interface{}{
				"bankCode":     report.BankCode,
				"propertyType": report.PropertyType,
				"createdAt":    time.Now().UTC().Format(time.RFC3339),
			},
		})
	}
	return report, nil
}

// Get returns a report of the caller's organization
func (s *ReportService) Get(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID) (*models.Report, error) {
	if err := s.authorize(ctx, h, oc, models.ActionView); err != nil {
		return nil, err
	}
	report, err := s.stores.Reports(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if report.OrganizationID != oc.OrganizationID {
		return nil, apperrors.ErrOrganizationMismatch
	}
	return report, nil
}

// List returns the caller's organization reports, newest first
func (s *ReportService) List(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, page, pageSize int) (*ReportListResponse, error) {
	if err := s.authorize(ctx, h, oc, models.ActionView); err != nil {
		return nil, err
	}
	limit, offset, page := normalizePagination(page, pageSize)

	reports, total, err := s.stores.Reports(h.DB).GetByOrganization(ctx, oc.OrganizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return &ReportListResponse{Reports: reports, Total: total, Page: page, PageSize: limit}, nil
}

func (s *ReportService) authorize(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, action string) error {
	if err := tenant.AuthorizeHandle(oc, h); err != nil {
		return err
	}
	return s.permissions.Require(ctx, h, oc, models.ResourceReports, action)
}
