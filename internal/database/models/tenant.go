package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxActiveCustomTemplates caps active custom templates per (organization, bank, property type)
const MaxActiveCustomTemplates = 3

// CustomTemplate is an organization-authored set of default field values layered on a bank template
type CustomTemplate struct {
	BaseModel
	OrganizationID uuid.UUID         `json:"organization_id" gorm:"type:uuid;not null;index:idx_custom_templates_scope,priority:1" validate:"required"`
	BankCode       string            `json:"bank_code" gorm:"not null;size:32;index:idx_custom_templates_scope,priority:2" validate:"required,max=32"`
	PropertyType   string            `json:"property_type" gorm:"not null;size:32;index:idx_custom_templates_scope,priority:3" validate:"required,max=32"`
	TemplateName   string            `json:"template_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description    string            `json:"description" gorm:"size:500" validate:"max=500"`
	FieldValues    datatypes.JSONMap `json:"field_values" gorm:"type:jsonb"`
	IsActive       bool              `json:"is_active" gorm:"default:true;index"`
	Version        int               `json:"version" gorm:"not null;default:1"`
	UsageCount     int               `json:"usage_count" gorm:"not null;default:0"`
}

// TableName returns the table name for CustomTemplate
func (CustomTemplate) TableName() string {
	return "custom_templates"
}

// ReportStatus is the workflow state of a report
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
	ReportStatusApproved  ReportStatus = "approved"
)

// IsValid checks if the ReportStatus is valid
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusSubmitted, ReportStatusApproved:
		return true
	}
	return false
}

// Report is a valuation report authored inside an organization
type Report struct {
	BaseModel
	OrganizationID   uuid.UUID         `json:"organization_id" gorm:"type:uuid;not null;index"`
	ReferenceNumber  string            `json:"reference_number" gorm:"uniqueIndex;not null;size:64"`
	BankCode         string            `json:"bank_code" gorm:"not null;size:32;index"`
	PropertyType     string            `json:"property_type" gorm:"not null;size:32"`
	BranchCode       string            `json:"branch_code" gorm:"size:32"`
	CustomTemplateID *uuid.UUID        `json:"custom_template_id,omitempty" gorm:"type:uuid"`
	FieldValues      datatypes.JSONMap `json:"field_values" gorm:"type:jsonb"`
	Status           ReportStatus      `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
}

// TableName returns the table name for Report
func (Report) TableName() string {
	return "reports"
}

// ActivityLog records a mutating action performed inside an organization
type ActivityLog struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt    time.Time         `json:"created_at" gorm:"index"`
	UserID       string            `json:"user_id" gorm:"size:64;index"`
	OrgShortName string            `json:"org_short_name" gorm:"size:40"`
	Action       string            `json:"action" gorm:"size:200"`
	ActionType   string            `json:"action_type" gorm:"size:32"`
	EntityType   string            `json:"entity_type" gorm:"size:64"`
	EntityID     string            `json:"entity_id" gorm:"size:64"`
	Metadata     datatypes.JSONMap `json:"metadata" gorm:"type:jsonb"`
}

// TableName returns the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// BeforeCreate sets the UUID if not already set
func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
