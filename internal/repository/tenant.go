package repository

import (
	"context"

	"valuation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TenantStores builds tenant repositories bound to an organization database
type TenantStores struct{}

var _ TenantStoreFactory = TenantStores{}

// NewTenantStores creates the default tenant store factory
func NewTenantStores() TenantStores {
	return TenantStores{}
}

func (TenantStores) CustomTemplates(db *gorm.DB) CustomTemplateRepositoryInterface {
	return NewCustomTemplateRepository(db)
}

func (TenantStores) Reports(db *gorm.DB) ReportRepositoryInterface {
	return NewReportRepository(db)
}

func (TenantStores) ActivityLogs(db *gorm.DB) ActivityLogRepositoryInterface {
	return NewActivityLogRepository(db)
}

func (TenantStores) UserSettings(db *gorm.DB) UserSettingsRepositoryInterface {
	return NewUserSettingsRepository(db)
}

// CustomTemplateRepository handles custom templates inside a tenant database
type CustomTemplateRepository struct {
	db *gorm.DB
}

var _ CustomTemplateRepositoryInterface = (*CustomTemplateRepository)(nil)

// NewCustomTemplateRepository creates a new custom template repository
func NewCustomTemplateRepository(db *gorm.DB) *CustomTemplateRepository {
	return &CustomTemplateRepository{db: db}
}

// Create inserts a new custom template
func (r *CustomTemplateRepository) Create(ctx context.Context, tpl *models.CustomTemplate) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

// GetByID retrieves a custom template by ID, active or not
func (r *CustomTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CustomTemplate, error) {
	var tpl models.CustomTemplate
	if err := r.db.WithContext(ctx).First(&tpl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Update saves every column of the template
func (r *CustomTemplateRepository) Update(ctx context.Context, tpl *models.CustomTemplate) error {
	return r.db.WithContext(ctx).Save(tpl).Error
}

func (r *CustomTemplateRepository) scope(ctx context.Context, orgID uuid.UUID, bankCode, propertyType string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.CustomTemplate{}).
		Where("organization_id = ? AND is_active = ?", orgID, true)
	if bankCode != "" {
		query = query.Where("bank_code = ?", bankCode)
	}
	if propertyType != "" {
		query = query.Where("property_type = ?", propertyType)
	}
	return query
}

// ListActive retrieves active templates of an organization, optionally filtered by
// bank and property type
func (r *CustomTemplateRepository) ListActive(ctx context.Context, orgID uuid.UUID, bankCode, propertyType string) ([]models.CustomTemplate, error) {
	var tpls []models.CustomTemplate
	if err := r.scope(ctx, orgID, bankCode, propertyType).Order("created_at ASC").Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

// CountActive counts active templates in one (organization, bank, property type) scope
func (r *CustomTemplateRepository) CountActive(ctx context.Context, orgID uuid.UUID, bankCode, propertyType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CustomTemplate{}).
		Where("organization_id = ? AND bank_code = ? AND property_type = ? AND is_active = ?", orgID, bankCode, propertyType, true).
		Count(&count).Error
	return count, err
}

// ActiveNameExists reports whether an active template in the scope already uses name
func (r *CustomTemplateRepository) ActiveNameExists(ctx context.Context, orgID uuid.UUID, bankCode, propertyType, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.CustomTemplate{}).
		Where("organization_id = ? AND bank_code = ? AND property_type = ? AND is_active = ?", orgID, bankCode, propertyType, true).
		Where("LOWER(template_name) = LOWER(?)", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementUsage records that a report was started from the template
func (r *CustomTemplateRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.CustomTemplate{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error
}

// ReportRepository handles reports inside a tenant database
type ReportRepository struct {
	db *gorm.DB
}

var _ ReportRepositoryInterface = (*ReportRepository)(nil)

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByOrganization retrieves the reports of an organization, newest first
func (r *ReportRepository) GetByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	base := r.db.WithContext(ctx).Model(&models.Report{}).Where("organization_id = ?", orgID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// ActivityLogRepository appends activity log entries inside a tenant database
type ActivityLogRepository struct {
	db *gorm.DB
}

var _ ActivityLogRepositoryInterface = (*ActivityLogRepository)(nil)

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create appends an entry
func (r *ActivityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// UserSettingsRepository handles per-user settings inside a tenant database
type UserSettingsRepository struct {
	db *gorm.DB
}

var _ UserSettingsRepositoryInterface = (*UserSettingsRepository)(nil)

// NewUserSettingsRepository creates a new user settings repository
func NewUserSettingsRepository(db *gorm.DB) *UserSettingsRepository {
	return &UserSettingsRepository{db: db}
}

// GetByUserID retrieves the settings of a user
func (r *UserSettingsRepository) GetByUserID(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert creates or replaces the settings of a user
func (r *UserSettingsRepository) Upsert(ctx context.Context, settings *models.UserSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"permission_overrides", "preferences", "updated_at", "updated_by"}),
		}).
		Create(settings).Error
}
