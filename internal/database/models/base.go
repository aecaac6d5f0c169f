package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by" gorm:"size:64" validate:"max=64"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by" gorm:"size:64" validate:"max=64"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// AdminModels lists the tables living in the shared admin database
func AdminModels() []interface{} {
	return []interface{}{
		&Organization{},
		&Bank{},
		&TemplateStructure{},
		&CommonField{},
		&DocumentType{},
		&PermissionTemplate{},
	}
}

// TenantModels lists the tables created in every organization database
func TenantModels() []interface{} {
	return []interface{}{
		&CustomTemplate{},
		&Report{},
		&ActivityLog{},
		&UserSettings{},
	}
}
