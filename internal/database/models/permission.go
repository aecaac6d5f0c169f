package models

import (
	"gorm.io/datatypes"
)

// Role is an organization-level role carried in the request context
type Role string

const (
	RoleSystemAdmin Role = "system_admin"
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleEmployee    Role = "employee"
)

// rolePriority orders roles from most to least privileged
var rolePriority = []Role{RoleSystemAdmin, RoleAdmin, RoleManager, RoleEmployee}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSystemAdmin, RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// PrimaryRole picks the most privileged known role out of a role list
func PrimaryRole(roles []string) Role {
	for _, candidate := range rolePriority {
		for _, r := range roles {
			if Role(r) == candidate {
				return candidate
			}
		}
	}
	return ""
}

// Resources and actions used in capability sets
const (
	ResourceCustomTemplates = "customTemplates"
	ResourceReports         = "reports"
	ResourceTemplates       = "templates"
	ResourceUsers           = "users"
	ResourceOrganizations   = "organizations"

	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// Capabilities maps resource -> action -> allowed
type Capabilities map[string]map[string]bool

// Allows reports whether the capability set grants action on resource
func (c Capabilities) Allows(resource, action string) bool {
	actions, ok := c[resource]
	if !ok {
		return false
	}
	return actions[action]
}

// Clone returns a deep copy of the capability set
func (c Capabilities) Clone() Capabilities {
	out := make(Capabilities, len(c))
	for resource, actions := range c {
		copied := make(map[string]bool, len(actions))
		for action, allowed := range actions {
			copied[action] = allowed
		}
		out[resource] = copied
	}
	return out
}

// Apply overlays overrides one boolean at a time; capabilities the overrides do not
// mention keep their current value.
func (c Capabilities) Apply(overrides Capabilities) Capabilities {
	out := c.Clone()
	for resource, actions := range overrides {
		if _, ok := out[resource]; !ok {
			out[resource] = make(map[string]bool, len(actions))
		}
		for action, allowed := range actions {
			out[resource][action] = allowed
		}
	}
	return out
}

// PermissionTemplate holds the capability set granted by a role
type PermissionTemplate struct {
	BaseModel
	Role         Role                             `json:"role" gorm:"uniqueIndex;not null;size:32" validate:"required"`
	DisplayName  string                           `json:"display_name" gorm:"size:100"`
	Capabilities datatypes.JSONType[Capabilities] `json:"capabilities" gorm:"type:jsonb"`
}

// TableName returns the table name for PermissionTemplate
func (PermissionTemplate) TableName() string {
	return "permission_templates"
}

// UserSettings stores per-user preferences and permission overrides inside a tenant database
type UserSettings struct {
	BaseModel
	UserID              string                           `json:"user_id" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`
	PermissionOverrides datatypes.JSONType[Capabilities] `json:"permission_overrides" gorm:"type:jsonb"`
	Preferences         datatypes.JSONMap                `json:"preferences" gorm:"type:jsonb"`
}

// TableName returns the table name for UserSettings
func (UserSettings) TableName() string {
	return "users_settings"
}

// DefaultPermissionTemplates is the capability matrix seeded once into the admin database.
// The organizations resource is the platform-wide lifecycle API, so only system admins hold it.
func DefaultPermissionTemplates() []PermissionTemplate {
	all := func(view, create, edit, del bool) map[string]bool {
		return map[string]bool{ActionView: view, ActionCreate: create, ActionEdit: edit, ActionDelete: del}
	}
	build := func(role Role, name string, caps Capabilities) PermissionTemplate {
		return PermissionTemplate{Role: role, DisplayName: name, Capabilities: datatypes.NewJSONType(caps)}
	}

	return []PermissionTemplate{
		build(RoleSystemAdmin, "System Administrator", Capabilities{
			ResourceCustomTemplates: all(true, true, true, true),
			ResourceReports:         all(true, true, true, true),
			ResourceTemplates:       all(true, true, true, true),
			ResourceUsers:           all(true, true, true, true),
			ResourceOrganizations:   all(true, true, true, true),
		}),
		build(RoleAdmin, "Administrator", Capabilities{
			ResourceCustomTemplates: all(true, true, true, true),
			ResourceReports:         all(true, true, true, true),
			ResourceTemplates:       all(true, false, false, false),
			ResourceUsers:           all(true, true, true, true),
			ResourceOrganizations:   all(false, false, false, false),
		}),
		build(RoleManager, "Manager", Capabilities{
			ResourceCustomTemplates: all(true, true, true, true),
			ResourceReports:         all(true, true, true, false),
			ResourceTemplates:       all(true, false, false, false),
			ResourceUsers:           all(true, false, false, false),
			ResourceOrganizations:   all(false, false, false, false),
		}),
		build(RoleEmployee, "Employee", Capabilities{
			ResourceCustomTemplates: all(true, false, false, false),
			ResourceReports:         all(true, true, true, false),
			ResourceTemplates:       all(true, false, false, false),
			ResourceUsers:           all(false, false, false, false),
			ResourceOrganizations:   all(false, false, false, false),
		}),
	}
}
