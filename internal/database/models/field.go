package models

// FieldType values understood by report-authoring clients
const (
	FieldTypeText     = "text"
	FieldTypeTextarea = "textarea"
	FieldTypeNumber   = "number"
	FieldTypeDate     = "date"
	FieldTypeSelect   = "select"
	FieldTypeCheckbox = "checkbox"
	FieldTypeFile     = "file"
	FieldTypeGroup    = "group"
)

// FieldSource tells clients where a merged field came from
const (
	FieldSourceBank         = "bank"
	FieldSourceCommon       = "common"
	FieldSourceDocumentType = "documentType"
)

// FieldOption is one choice of a select-like field
type FieldOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// FieldValidation holds optional client-side validation rules
type FieldValidation struct {
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Field is a node of a template field tree. A field whose type is "group" carries
// SubFields of the same shape; every other field is a leaf.
type Field struct {
	FieldID       string           `json:"fieldId" yaml:"fieldId"`
	TechnicalName string           `json:"technicalName,omitempty" yaml:"technicalName,omitempty"`
	UIDisplayName string           `json:"uiDisplayName" yaml:"uiDisplayName"`
	FieldType     string           `json:"fieldType" yaml:"fieldType"`
	FieldGroup    string           `json:"fieldGroup,omitempty" yaml:"fieldGroup,omitempty"`
	IsRequired    bool             `json:"isRequired" yaml:"isRequired"`
	Placeholder   string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText      string           `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Options       []FieldOption    `json:"options,omitempty" yaml:"options,omitempty"`
	DefaultValue  interface{}      `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Validation    *FieldValidation `json:"validation,omitempty" yaml:"validation,omitempty"`
	SortOrder     int              `json:"sortOrder" yaml:"sortOrder"`
	Source        string           `json:"source,omitempty" yaml:"-"`
	DocumentID    string           `json:"documentId,omitempty" yaml:"-"`
	SubFields     []Field          `json:"subFields,omitempty" yaml:"subFields,omitempty"`
}

// IsGroup reports whether the field nests sub-fields
func (f Field) IsGroup() bool {
	return f.FieldType == FieldTypeGroup
}

// Section groups fields inside a tab. Sections flagged UseDocumentCollection receive
// fields generated from the document type catalog ahead of their declared fields.
type Section struct {
	SectionID             string  `json:"sectionId" yaml:"sectionId"`
	SectionName           string  `json:"sectionName" yaml:"sectionName"`
	SortOrder             int     `json:"sortOrder" yaml:"sortOrder"`
	UseDocumentCollection bool    `json:"useDocumentCollection" yaml:"useDocumentCollection"`
	DocumentPropertyType  string  `json:"documentPropertyType,omitempty" yaml:"documentPropertyType,omitempty"`
	Fields                []Field `json:"fields" yaml:"fields"`
}

// Tab is the top level of a template field tree
type Tab struct {
	TabID     string    `json:"tabId" yaml:"tabId"`
	TabName   string    `json:"tabName" yaml:"tabName"`
	SortOrder int       `json:"sortOrder" yaml:"sortOrder"`
	Sections  []Section `json:"sections" yaml:"sections"`
}
