package models

import (
	"gorm.io/datatypes"
)

// Wildcard matches every property type or bank in applicability lists
const Wildcard = "*"

// CommonField is an entry of the global field catalog shared by every template
type CommonField struct {
	BaseModel
	FieldID       string                           `json:"fieldId" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	TechnicalName string                           `json:"technicalName" gorm:"size:100"`
	UIDisplayName string                           `json:"uiDisplayName" gorm:"not null;size:200" validate:"required,max=200"`
	FieldType     string                           `json:"fieldType" gorm:"not null;size:32" validate:"required,max=32"`
	FieldGroup    string                           `json:"fieldGroup" gorm:"size:100;index"`
	IsRequired    bool                             `json:"isRequired"`
	Placeholder   string                           `json:"placeholder" gorm:"size:200"`
	HelpText      string                           `json:"helpText" gorm:"size:500"`
	SortOrder     int                              `json:"sortOrder" gorm:"not null;default:0"`
	IsActive      bool                             `json:"isActive" gorm:"default:true;index"`
	Options       datatypes.JSONSlice[FieldOption] `json:"options" gorm:"type:jsonb"`
	SubFields     datatypes.JSONSlice[Field]       `json:"subFields" gorm:"type:jsonb"`
}

// TableName returns the table name for CommonField
func (CommonField) TableName() string {
	return "common_form_fields"
}

// ToField projects the catalog entry into the field tree shape
func (c *CommonField) ToField() Field {
	return Field{
		FieldID:       c.FieldID,
		TechnicalName: c.TechnicalName,
		UIDisplayName: c.UIDisplayName,
		FieldType:     c.FieldType,
		FieldGroup:    c.FieldGroup,
		IsRequired:    c.IsRequired,
		Placeholder:   c.Placeholder,
		HelpText:      c.HelpText,
		Options:       c.Options,
		SortOrder:     c.SortOrder,
		Source:        FieldSourceCommon,
		SubFields:     c.SubFields,
	}
}

// DocumentType is an entry of the global catalog of reusable document upload fields
type DocumentType struct {
	BaseModel
	DocumentID              string                      `json:"documentId" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Name                    string                      `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description             string                      `json:"description" gorm:"size:500"`
	IsRequired              bool                        `json:"isRequired"`
	AcceptedFormats         datatypes.JSONSlice[string] `json:"acceptedFormats" gorm:"type:jsonb"`
	MaxFileSizeMB           int                         `json:"maxFileSizeMB" gorm:"default:10"`
	AllowMultiple           bool                        `json:"allowMultiple"`
	ApplicablePropertyTypes datatypes.JSONSlice[string] `json:"applicablePropertyTypes" gorm:"type:jsonb"`
	ApplicableBanks         datatypes.JSONSlice[string] `json:"applicableBanks" gorm:"type:jsonb"`
	IsActive                bool                        `json:"isActive" gorm:"default:true;index"`
	SortOrder               int                         `json:"sortOrder" gorm:"not null;default:0"`
	IncludeInCustomTemplate bool                        `json:"includeInCustomTemplate" gorm:"default:false"`
}

// TableName returns the table name for DocumentType
func (DocumentType) TableName() string {
	return "document_types"
}

// AppliesTo reports whether the document type is active and admitted by the
// property type and bank filters
func (d *DocumentType) AppliesTo(propertyType, bankCode string) bool {
	return d.IsActive &&
		matchesOrWildcard(d.ApplicablePropertyTypes, propertyType) &&
		matchesOrWildcard(d.ApplicableBanks, bankCode)
}

// ToField projects the document type into an upload field
func (d *DocumentType) ToField() Field {
	return Field{
		FieldID:       d.DocumentID,
		TechnicalName: d.DocumentID,
		UIDisplayName: d.Name,
		FieldType:     FieldTypeFile,
		IsRequired:    d.IsRequired,
		HelpText:      d.Description,
		SortOrder:     d.SortOrder,
		Source:        FieldSourceDocumentType,
		DocumentID:    d.DocumentID,
	}
}

func matchesOrWildcard(values []string, want string) bool {
	for _, v := range values {
		if v == Wildcard || v == want {
			return true
		}
	}
	return false
}
