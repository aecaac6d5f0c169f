package models

import (
	"time"
)

// Organization represents the root entity for multi-tenancy. Each active
// organization owns exactly one tenant database named DatabaseName.
type Organization struct {
	BaseModel
	ShortName        string     `json:"short_name" gorm:"uniqueIndex;not null;size:40" validate:"required,min=2,max=40"`
	FullName         string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	ContactEmail     string     `json:"contact_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	DatabaseName     string     `json:"database_name" gorm:"uniqueIndex;not null;size:63"`
	ReferenceCounter int64      `json:"reference_counter" gorm:"not null;default:0"`
	IsActive         bool       `json:"is_active" gorm:"default:true;index"`
	IsSystem         bool       `json:"is_system" gorm:"default:false"`
	DeactivatedAt    *time.Time `json:"deactivated_at,omitempty"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
