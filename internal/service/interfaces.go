package service

import (
	"context"

	"valuation-backend/internal/database/models"
	"valuation-backend/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TemplateServiceInterface defines the interface for template aggregation
type TemplateServiceInterface interface {
	GetAggregatedTemplate(ctx context.Context, bankCode, propertyType string) (*AggregatedTemplateResponse, error)
	GetCustomTemplateFields(ctx context.Context, bankCode, propertyType string) (*CustomTemplateFieldsResponse, error)
	ListBanks(ctx context.Context) ([]BankSummary, error)
	ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error)
}

// CustomTemplateServiceInterface defines the interface for tenant custom templates
type CustomTemplateServiceInterface interface {
	Create(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, req *CreateCustomTemplateRequest) (*CustomTemplateResponse, error)
	Update(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID, req *UpdateCustomTemplateRequest) (*CustomTemplateResponse, error)
	Delete(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID) error
	Get(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID) (*CustomTemplateResponse, error)
	List(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, bankCode, propertyType string) ([]CustomTemplateSummary, error)
	Duplicate(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID, req *DuplicateCustomTemplateRequest) (*CustomTemplateResponse, error)
}

// PermissionServiceInterface defines the interface for capability checks
type PermissionServiceInterface interface {
	GetEffectivePermissions(ctx context.Context, subject Subject) (models.Capabilities, error)
	HasPermission(ctx context.Context, subject Subject, resource, action string) (bool, error)
	SubjectFor(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext) (Subject, error)
	Require(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, resource, action string) error
}

// OrganizationServiceInterface defines the interface for organization lifecycle
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *CreateOrganizationRequest, actor string) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error)
	List(ctx context.Context, page, pageSize int) (*OrganizationListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateOrganizationRequest, actor string) (*OrganizationResponse, error)
	Delete(ctx context.Context, id uuid.UUID, hard bool, actor string) error
	Reactivate(ctx context.Context, id uuid.UUID, actor string) (*OrganizationResponse, error)
	NextReferenceNumber(ctx context.Context, shortName string) (string, error)
}

// ReportServiceInterface defines the interface for tenant reports
type ReportServiceInterface interface {
	Create(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, req *CreateReportRequest) (*models.Report, error)
	Get(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, id uuid.UUID) (*models.Report, error)
	List(ctx context.Context, h *tenant.Handle, oc *tenant.OrganizationContext, page, pageSize int) (*ReportListResponse, error)
}

// ActivityLoggerInterface records mutating actions without blocking the caller
type ActivityLoggerInterface interface {
	Log(h *tenant.Handle, entry ActivityEntry)
}

// TenantDirectory resolves and guards tenant database bindings
type TenantDirectory interface {
	Resolve(ctx context.Context, shortName string) (*tenant.Handle, error)
	DatabaseNameFor(shortName string) string
	CheckBindable(dbName string) error
	IsProtected(dbName string) bool
	Invalidate(shortName string)
}

// TenantProvisioner creates and drops tenant databases
type TenantProvisioner interface {
	Create(ctx context.Context, dbName string) error
	Drop(ctx context.Context, dbName string) error
}
