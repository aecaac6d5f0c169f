package repository

import (
	"context"

	"valuation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetByShortName(ctx context.Context, shortName string) (*models.Organization, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Organization, int64, error)
	Update(ctx context.Context, org *models.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementReferenceCounter(ctx context.Context, shortName string) (int64, error)
}

// BankRepositoryInterface defines the interface for bank catalog operations
type BankRepositoryInterface interface {
	GetByCode(ctx context.Context, bankCode string) (*models.Bank, error)
	GetAllActive(ctx context.Context) ([]models.Bank, error)
}

// TemplateStructureRepositoryInterface defines the interface for field tree lookups
type TemplateStructureRepositoryInterface interface {
	GetByTemplateCode(ctx context.Context, templateCode string) (*models.TemplateStructure, error)
}

// CommonFieldRepositoryInterface defines the interface for the common field catalog
type CommonFieldRepositoryInterface interface {
	GetActive(ctx context.Context, fieldGroup string) ([]models.CommonField, error)
	GetActiveFieldIDs(ctx context.Context) ([]string, error)
}

// DocumentTypeRepositoryInterface defines the interface for the document type catalog
type DocumentTypeRepositoryInterface interface {
	GetApplicable(ctx context.Context, propertyType, bankCode string) ([]models.DocumentType, error)
	GetAllActive(ctx context.Context) ([]models.DocumentType, error)
}

// PermissionTemplateRepositoryInterface defines the interface for role capability lookups
type PermissionTemplateRepositoryInterface interface {
	GetByRole(ctx context.Context, role models.Role) (*models.PermissionTemplate, error)
	SeedDefaults(ctx context.Context, templates []models.PermissionTemplate) (int64, error)
}

// CustomTemplateRepositoryInterface defines the interface for tenant custom template storage
type CustomTemplateRepositoryInterface interface {
	Create(ctx context.Context, tpl *models.CustomTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CustomTemplate, error)
	Update(ctx context.Context, tpl *models.CustomTemplate) error
	ListActive(ctx context.Context, orgID uuid.UUID, bankCode, propertyType string) ([]models.CustomTemplate, error)
	CountActive(ctx context.Context, orgID uuid.UUID, bankCode, propertyType string) (int64, error)
	ActiveNameExists(ctx context.Context, orgID uuid.UUID, bankCode, propertyType, name string, excludeID *uuid.UUID) (bool, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

// ReportRepositoryInterface defines the interface for tenant report storage
type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	GetByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.Report, int64, error)
}

// ActivityLogRepositoryInterface defines the interface for tenant activity log storage
type ActivityLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
}

// UserSettingsRepositoryInterface defines the interface for tenant user settings
type UserSettingsRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserSettings, error)
	Upsert(ctx context.Context, settings *models.UserSettings) error
}

// TenantStoreFactory binds tenant repositories to an organization's database handle
type TenantStoreFactory interface {
	CustomTemplates(db *gorm.DB) CustomTemplateRepositoryInterface
	Reports(db *gorm.DB) ReportRepositoryInterface
	ActivityLogs(db *gorm.DB) ActivityLogRepositoryInterface
	UserSettings(db *gorm.DB) UserSettingsRepositoryInterface
}
