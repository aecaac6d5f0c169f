package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestPrimaryRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, PrimaryRole([]string{"employee", "admin", "manager"}))
	assert.Equal(t, RoleManager, PrimaryRole([]string{"unknown", "manager"}))
	assert.Equal(t, Role(""), PrimaryRole([]string{"guest"}))
	assert.Equal(t, Role(""), PrimaryRole(nil))
}

func TestCapabilitiesApplyTouchesOnlyNamedBooleans(t *testing.T) {
	base := Capabilities{
		ResourceReports:         {ActionView: true, ActionCreate: true, ActionDelete: false},
		ResourceCustomTemplates: {ActionView: true},
	}
	overrides := Capabilities{
		ResourceReports: {ActionDelete: true, ActionCreate: false},
		ResourceUsers:   {ActionView: true},
	}

	effective := base.Apply(overrides)

	assert.True(t, effective.Allows(ResourceReports, ActionView))
	assert.False(t, effective.Allows(ResourceReports, ActionCreate))
	assert.True(t, effective.Allows(ResourceReports, ActionDelete))
	assert.True(t, effective.Allows(ResourceCustomTemplates, ActionView))
	assert.True(t, effective.Allows(ResourceUsers, ActionView))
	assert.False(t, effective.Allows(ResourceUsers, ActionEdit))

	// the role template itself is left untouched
	assert.True(t, base.Allows(ResourceReports, ActionCreate))
	assert.False(t, base.Allows(ResourceReports, ActionDelete))
}

func TestDefaultPermissionTemplates(t *testing.T) {
	templates := DefaultPermissionTemplates()
	require.Len(t, templates, 4)

	byRole := map[Role]Capabilities{}
	for _, tpl := range templates {
		assert.True(t, tpl.Role.IsValid())
		byRole[tpl.Role] = tpl.Capabilities.Data()
	}

	assert.True(t, byRole[RoleManager].Allows(ResourceCustomTemplates, ActionCreate))
	assert.True(t, byRole[RoleAdmin].Allows(ResourceCustomTemplates, ActionCreate))
	assert.False(t, byRole[RoleEmployee].Allows(ResourceCustomTemplates, ActionCreate))
	assert.True(t, byRole[RoleEmployee].Allows(ResourceReports, ActionCreate))
}

func TestDocumentTypeAppliesTo(t *testing.T) {
	doc := DocumentType{
		DocumentID:              "doc1",
		IsActive:                true,
		ApplicablePropertyTypes: datatypes.JSONSlice[string]{"land"},
		ApplicableBanks:         datatypes.JSONSlice[string]{Wildcard},
	}

	assert.True(t, doc.AppliesTo("land", "SBI"))
	assert.False(t, doc.AppliesTo("flat", "SBI"))

	doc.ApplicablePropertyTypes = datatypes.JSONSlice[string]{Wildcard}
	doc.ApplicableBanks = datatypes.JSONSlice[string]{"HDFC"}
	assert.True(t, doc.AppliesTo("flat", "HDFC"))
	assert.False(t, doc.AppliesTo("flat", "SBI"))

	doc.ApplicableBanks = datatypes.JSONSlice[string]{Wildcard}
	doc.IsActive = false
	assert.False(t, doc.AppliesTo("flat", "SBI"))
}

func TestDocumentTypeToField(t *testing.T) {
	doc := DocumentType{DocumentID: "title_deed", Name: "Title Deed", SortOrder: 4, IsRequired: true}
	f := doc.ToField()

	assert.Equal(t, "title_deed", f.FieldID)
	assert.Equal(t, FieldTypeFile, f.FieldType)
	assert.Equal(t, FieldSourceDocumentType, f.Source)
	assert.Equal(t, 4, f.SortOrder)
	assert.True(t, f.IsRequired)
	assert.False(t, f.IsGroup())
}

func TestBankTemplateFor(t *testing.T) {
	bank := Bank{
		BankCode: "SBI",
		Templates: datatypes.JSONSlice[TemplateRef]{
			{TemplateCode: "SBI_LAND_OLD", PropertyType: "land", IsActive: false},
			{TemplateCode: "SBI_LAND", PropertyType: "land", IsActive: true},
			{TemplateCode: "SBI_FLAT", PropertyType: "flat", IsActive: true},
		},
	}

	tpl, ok := bank.TemplateFor("land")
	require.True(t, ok)
	assert.Equal(t, "SBI_LAND", tpl.TemplateCode)

	_, ok = bank.TemplateFor("commercial")
	assert.False(t, ok)
}
