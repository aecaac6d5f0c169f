package models

import (
	"gorm.io/datatypes"
)

// TemplateRef describes the template a bank uses for one property type.
// StructureCode points at the TemplateStructure row holding its field tree.
type TemplateRef struct {
	TemplateCode      string `json:"templateCode" yaml:"templateCode"`
	TemplateName      string `json:"templateName" yaml:"templateName"`
	PropertyType      string `json:"propertyType" yaml:"propertyType"`
	StructureCode     string `json:"structureCode" yaml:"structureCode"`
	CommonFieldsGroup string `json:"commonFieldsGroup,omitempty" yaml:"commonFieldsGroup,omitempty"`
	Version           int    `json:"version" yaml:"version"`
	IsActive          bool   `json:"isActive" yaml:"isActive"`
}

// Branch is a bank branch offered to report authors
type Branch struct {
	BranchCode string `json:"branchCode" yaml:"branchCode"`
	BranchName string `json:"branchName" yaml:"branchName"`
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	IsActive   bool   `json:"isActive" yaml:"isActive"`
}

// Bank is an entry of the shared bank catalog
type Bank struct {
	BaseModel
	BankCode  string                           `json:"bankCode" gorm:"uniqueIndex;not null;size:32" validate:"required,max=32"`
	BankName  string                           `json:"bankName" gorm:"not null;size:200" validate:"required,max=200"`
	IsActive  bool                             `json:"isActive" gorm:"default:true;index"`
	Templates datatypes.JSONSlice[TemplateRef] `json:"templates" gorm:"type:jsonb"`
	Branches  datatypes.JSONSlice[Branch]      `json:"branches" gorm:"type:jsonb"`
}

// TableName returns the table name for Bank
func (Bank) TableName() string {
	return "banks"
}

// TemplateFor returns the active template of the bank for a property type
func (b *Bank) TemplateFor(propertyType string) (*TemplateRef, bool) {
	for i := range b.Templates {
		t := b.Templates[i]
		if t.PropertyType == propertyType && t.IsActive {
			return &t, true
		}
	}
	return nil, false
}

// TemplateStructure holds the Tab -> Section -> Field tree of a template
type TemplateStructure struct {
	BaseModel
	TemplateCode string                    `json:"templateCode" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`
	Version      int                       `json:"version" gorm:"not null;default:1"`
	Tabs         datatypes.JSONType[[]Tab] `json:"tabs" gorm:"type:jsonb"`
}

// TableName returns the table name for TemplateStructure
func (TemplateStructure) TableName() string {
	return "template_structures"
}
