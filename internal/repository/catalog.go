package repository

import (
	"context"
	"encoding/json"

	"valuation-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BankRepository handles database operations for the bank catalog
type BankRepository struct {
	db *gorm.DB
}

var _ BankRepositoryInterface = (*BankRepository)(nil)

// NewBankRepository creates a new bank repository
func NewBankRepository(db *gorm.DB) *BankRepository {
	return &BankRepository{db: db}
}

// GetByCode retrieves an active bank by its code
func (r *BankRepository) GetByCode(ctx context.Context, bankCode string) (*models.Bank, error) {
	var bank models.Bank
	err := r.db.WithContext(ctx).First(&bank, "bank_code = ? AND is_active = ?", bankCode, true).Error
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// GetAllActive retrieves every active bank ordered by name
func (r *BankRepository) GetAllActive(ctx context.Context) ([]models.Bank, error) {
	var banks []models.Bank
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("bank_name ASC").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

// TemplateStructureRepository handles lookups of template field trees
type TemplateStructureRepository struct {
	db *gorm.DB
}

var _ TemplateStructureRepositoryInterface = (*TemplateStructureRepository)(nil)

// NewTemplateStructureRepository creates a new template structure repository
func NewTemplateStructureRepository(db *gorm.DB) *TemplateStructureRepository {
	return &TemplateStructureRepository{db: db}
}

// GetByTemplateCode retrieves the field tree of a template
func (r *TemplateStructureRepository) GetByTemplateCode(ctx context.Context, templateCode string) (*models.TemplateStructure, error) {
	var structure models.TemplateStructure
	if err := r.db.WithContext(ctx).First(&structure, "template_code = ?", templateCode).Error; err != nil {
		return nil, err
	}
	return &structure, nil
}

// CommonFieldRepository handles the global common field catalog
type CommonFieldRepository struct {
	db *gorm.DB
}

var _ CommonFieldRepositoryInterface = (*CommonFieldRepository)(nil)

// NewCommonFieldRepository creates a new common field repository
func NewCommonFieldRepository(db *gorm.DB) *CommonFieldRepository {
	return &CommonFieldRepository{db: db}
}

// GetActive retrieves active common fields ordered by sort order then field group.
// An empty fieldGroup returns the whole catalog.
func (r *CommonFieldRepository) GetActive(ctx context.Context, fieldGroup string) ([]models.CommonField, error) {
	var fields []models.CommonField
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if fieldGroup != "" {
		query = query.Where("field_group = ?", fieldGroup)
	}
	if err := query.Order("sort_order ASC, field_group ASC, field_id ASC").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// GetActiveFieldIDs retrieves the ids of all active common fields
func (r *CommonFieldRepository) GetActiveFieldIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.CommonField{}).Where("is_active = ?", true).Pluck("field_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DocumentTypeRepository handles the global document type catalog
type DocumentTypeRepository struct {
	db *gorm.DB
}

var _ DocumentTypeRepositoryInterface = (*DocumentTypeRepository)(nil)

// NewDocumentTypeRepository creates a new document type repository
func NewDocumentTypeRepository(db *gorm.DB) *DocumentTypeRepository {
	return &DocumentTypeRepository{db: db}
}

// GetApplicable retrieves active document types whose property type and bank filters
// contain the given values or the wildcard, ordered by sort order
func (r *DocumentTypeRepository) GetApplicable(ctx context.Context, propertyType, bankCode string) ([]models.DocumentType, error) {
	wildcard := jsonArray(models.Wildcard)

	var docs []models.DocumentType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("(applicable_property_types @> ?::jsonb OR applicable_property_types @> ?::jsonb)", jsonArray(propertyType), wildcard).
		Where("(applicable_banks @> ?::jsonb OR applicable_banks @> ?::jsonb)", jsonArray(bankCode), wildcard).
		Order("sort_order ASC, document_id ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetAllActive retrieves the whole active catalog
func (r *DocumentTypeRepository) GetAllActive(ctx context.Context) ([]models.DocumentType, error) {
	var docs []models.DocumentType
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("sort_order ASC, document_id ASC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func jsonArray(value string) string {
	b, _ := json.Marshal([]string{value})
	return string(b)
}

// PermissionTemplateRepository handles role capability templates
type PermissionTemplateRepository struct {
	db *gorm.DB
}

var _ PermissionTemplateRepositoryInterface = (*PermissionTemplateRepository)(nil)

// NewPermissionTemplateRepository creates a new permission template repository
func NewPermissionTemplateRepository(db *gorm.DB) *PermissionTemplateRepository {
	return &PermissionTemplateRepository{db: db}
}

// GetByRole retrieves the template of a role
func (r *PermissionTemplateRepository) GetByRole(ctx context.Context, role models.Role) (*models.PermissionTemplate, error) {
	var tpl models.PermissionTemplate
	if err := r.db.WithContext(ctx).First(&tpl, "role = ?", role).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

// SeedDefaults inserts templates for roles that have none yet and returns how many were added
func (r *PermissionTemplateRepository) SeedDefaults(ctx context.Context, templates []models.PermissionTemplate) (int64, error) {
	if len(templates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "role"}}, DoNothing: true}).
		Create(&templates)
	return res.RowsAffected, res.Error
}
