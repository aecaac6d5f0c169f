package testutils

import (
	"fmt"
	"time"

	"valuation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	short := "org_" + uuid.New().String()[:8]
	return f.WithShortName(short)
}

// WithShortName creates an active organization bound to the default tenant database name
func (f *OrganizationFactory) WithShortName(shortName string) *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ShortName:    shortName,
		FullName:     "Test Valuers " + shortName,
		ContactEmail: shortName + "@valuers.test",
		DatabaseName: "valuation_org_" + shortName,
		IsActive:     true,
	}
}

// BankFactory provides methods to create test Bank data
type BankFactory struct{}

// NewBankFactory creates a new BankFactory
func NewBankFactory() *BankFactory {
	return &BankFactory{}
}

// Create creates SBI with a single active land template
func (f *BankFactory) Create() *models.Bank {
	return f.WithTemplate("SBI", "land", "SBI_LAND")
}

// WithTemplate creates an active bank with one active template for propertyType
func (f *BankFactory) WithTemplate(bankCode, propertyType, templateCode string) *models.Bank {
	return &models.Bank{
		BaseModel: models.BaseModel{ID: uuid.New()},
		BankCode:  bankCode,
		BankName:  bankCode + " Bank",
		IsActive:  true,
		Templates: datatypes.JSONSlice[models.TemplateRef]{
			{
				TemplateCode:  templateCode,
				TemplateName:  fmt.Sprintf("%s %s valuation", bankCode, propertyType),
				PropertyType:  propertyType,
				StructureCode: templateCode,
				Version:       1,
				IsActive:      true,
			},
		},
		Branches: datatypes.JSONSlice[models.Branch]{
			{BranchCode: bankCode + "001", BranchName: "Main Branch", IsActive: true},
		},
	}
}

// TemplateStructureFactory provides methods to create field trees
type TemplateStructureFactory struct{}

// NewTemplateStructureFactory creates a new TemplateStructureFactory
func NewTemplateStructureFactory() *TemplateStructureFactory {
	return &TemplateStructureFactory{}
}

// WithTabs creates a structure holding the given tabs
func (f *TemplateStructureFactory) WithTabs(templateCode string, tabs ...models.Tab) *models.TemplateStructure {
	return &models.TemplateStructure{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		TemplateCode: templateCode,
		Version:      1,
		Tabs:         datatypes.NewJSONType(tabs),
	}
}

// Leaf returns a text field
func Leaf(fieldID string, sortOrder int) models.Field {
	return models.Field{
		FieldID:       fieldID,
		TechnicalName: fieldID,
		UIDisplayName: fieldID,
		FieldType:     models.FieldTypeText,
		SortOrder:     sortOrder,
	}
}

// Group returns a group field wrapping children
func Group(fieldID string, sortOrder int, children ...models.Field) models.Field {
	return models.Field{
		FieldID:       fieldID,
		UIDisplayName: fieldID,
		FieldType:     models.FieldTypeGroup,
		SortOrder:     sortOrder,
		SubFields:     children,
	}
}

// CommonFieldFactory provides methods to create common field catalog entries
type CommonFieldFactory struct{}

// NewCommonFieldFactory creates a new CommonFieldFactory
func NewCommonFieldFactory() *CommonFieldFactory {
	return &CommonFieldFactory{}
}

// Create creates an active common text field
func (f *CommonFieldFactory) Create(fieldID string, sortOrder int, group string) *models.CommonField {
	return &models.CommonField{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		FieldID:       fieldID,
		TechnicalName: fieldID,
		UIDisplayName: fieldID,
		FieldType:     models.FieldTypeText,
		FieldGroup:    group,
		SortOrder:     sortOrder,
		IsActive:      true,
	}
}

// DocumentTypeFactory provides methods to create document type catalog entries
type DocumentTypeFactory struct{}

// NewDocumentTypeFactory creates a new DocumentTypeFactory
func NewDocumentTypeFactory() *DocumentTypeFactory {
	return &DocumentTypeFactory{}
}

// Create creates an active document type applicable to the given property types and banks
func (f *DocumentTypeFactory) Create(documentID string, sortOrder int, propertyTypes, banks []string) *models.DocumentType {
	return &models.DocumentType{
		BaseModel:               models.BaseModel{ID: uuid.New()},
		DocumentID:              documentID,
		Name:                    documentID,
		AcceptedFormats:         datatypes.JSONSlice[string]{"pdf", "jpg"},
		MaxFileSizeMB:           10,
		ApplicablePropertyTypes: datatypes.JSONSlice[string](propertyTypes),
		ApplicableBanks:         datatypes.JSONSlice[string](banks),
		IsActive:                true,
		SortOrder:               sortOrder,
		IncludeInCustomTemplate: true,
	}
}

// CustomTemplateFactory provides methods to create custom templates
type CustomTemplateFactory struct{}

// NewCustomTemplateFactory creates a new CustomTemplateFactory
func NewCustomTemplateFactory() *CustomTemplateFactory {
	return &CustomTemplateFactory{}
}

// Create creates an active custom template in the given scope
func (f *CustomTemplateFactory) Create(orgID uuid.UUID, bankCode, propertyType, name string) *models.CustomTemplate {
	return &models.CustomTemplate{
		BaseModel:      models.BaseModel{ID: uuid.New(), CreatedBy: "user-1"},
		OrganizationID: orgID,
		BankCode:       bankCode,
		PropertyType:   propertyType,
		TemplateName:   name,
		FieldValues:    datatypes.JSONMap{"custom1": "default"},
		IsActive:       true,
		Version:        1,
	}
}

// ReportFactory provides methods to create reports
type ReportFactory struct{}

// NewReportFactory creates a new ReportFactory
func NewReportFactory() *ReportFactory {
	return &ReportFactory{}
}

// Create creates a draft report
func (f *ReportFactory) Create(orgID uuid.UUID, referenceNumber string) *models.Report {
	return &models.Report{
		BaseModel:       models.BaseModel{ID: uuid.New(), CreatedBy: "user-1"},
		OrganizationID:  orgID,
		ReferenceNumber: referenceNumber,
		BankCode:        "SBI",
		PropertyType:    "land",
		FieldValues:     datatypes.JSONMap{},
		Status:          models.ReportStatusDraft,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization      *OrganizationFactory
	Bank              *BankFactory
	TemplateStructure *TemplateStructureFactory
	CommonField       *CommonFieldFactory
	DocumentType      *DocumentTypeFactory
	CustomTemplate    *CustomTemplateFactory
	Report            *ReportFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:      NewOrganizationFactory(),
		Bank:              NewBankFactory(),
		TemplateStructure: NewTemplateStructureFactory(),
		CommonField:       NewCommonFieldFactory(),
		DocumentType:      NewDocumentTypeFactory(),
		CustomTemplate:    NewCustomTemplateFactory(),
		Report:            NewReportFactory(),
	}
}

// SBILandCatalog builds the smallest catalog for SBI land: one common field cf1,
// a tab t1 with a document-collection section s1 declaring custom1, and doc1
// applicable to land at every bank.
func (fs *FactorySet) SBILandCatalog() (*models.Bank, *models.TemplateStructure, []models.CommonField, []models.DocumentType) {
	bank := fs.Bank.WithTemplate("SBI", "land", "SBI_LAND")
	structure := fs.TemplateStructure.WithTabs("SBI_LAND", models.Tab{
		TabID:   "t1",
		TabName: "Property",
		Sections: []models.Section{
			{
				SectionID:             "s1",
				SectionName:           "Documents",
				UseDocumentCollection: true,
				Fields:                []models.Field{Leaf("custom1", 1)},
			},
		},
	})
	common := []models.CommonField{*fs.CommonField.Create("cf1", 1, "general")}
	docs := []models.DocumentType{*fs.DocumentType.Create("doc1", 1, []string{"land"}, []string{models.Wildcard})}
	return bank, structure, common, docs
}
