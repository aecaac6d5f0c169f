package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/fieldtree"
	"valuation-backend/internal/logger"
	"valuation-backend/internal/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// TemplateService merges bank templates, the common field catalog and the
// document type catalog into the form a report author fills in
type TemplateService struct {
	banks        repository.BankRepositoryInterface
	structures   repository.TemplateStructureRepositoryInterface
	commonFields repository.CommonFieldRepositoryInterface
	docTypes     repository.DocumentTypeRepositoryInterface
}

// NewTemplateService creates a new template service
func NewTemplateService(
	banks repository.BankRepositoryInterface,
	structures repository.TemplateStructureRepositoryInterface,
	commonFields repository.CommonFieldRepositoryInterface,
	docTypes repository.DocumentTypeRepositoryInterface,
) *TemplateService {
	return &TemplateService{
		banks:        banks,
		structures:   structures,
		commonFields: commonFields,
		docTypes:     docTypes,
	}
}

// BankInfo is the bank part of an aggregated template
type BankInfo struct {
	BankCode string          `json:"bankCode"`
	BankName string          `json:"bankName"`
	Branches []models.Branch `json:"branches"`
}

// TemplateStructureInfo is the merged field tree of a template
type TemplateStructureInfo struct {
	TemplateCode string       `json:"templateCode"`
	Version      int          `json:"version"`
	Tabs         []models.Tab `json:"tabs"`
}

// AggregatedTemplateResponse is everything needed to render the report form of one bank and property type
type AggregatedTemplateResponse struct {
	Bank              BankInfo              `json:"bank"`
	Template          models.TemplateRef    `json:"template"`
	TemplateStructure TemplateStructureInfo `json:"templateStructure"`
	DocumentTypes     []models.DocumentType `json:"documentTypes"`
	CommonFields      []models.Field        `json:"commonFields"`
}

// CustomTemplateFieldsResponse is the field tree a custom template may hold values for
type CustomTemplateFieldsResponse struct {
	BankCode     string       `json:"bankCode"`
	PropertyType string       `json:"propertyType"`
	TemplateCode string       `json:"templateCode"`
	Tabs         []models.Tab `json:"tabs"`
}

// TemplateSummary is a template entry in the bank picker
type TemplateSummary struct {
	TemplateCode string `json:"templateCode"`
	TemplateName string `json:"templateName"`
	PropertyType string `json:"propertyType"`
}

// BankSummary is a bank entry in the bank picker
type BankSummary struct {
	BankCode  string            `json:"bankCode"`
	BankName  string            `json:"bankName"`
	Templates []TemplateSummary `json:"templates"`
}

type docLookup struct {
	docs []models.DocumentType
	err  error
}

type aggregation struct {
	response *AggregatedTemplateResponse
	// document types placed in the tree, keyed by document id
	placed map[string]models.DocumentType
}

// GetAggregatedTemplate returns the merged template of a bank and property type.
// It has no side effects and may be retried freely.
func (s *TemplateService) GetAggregatedTemplate(ctx context.Context, bankCode, propertyType string) (*AggregatedTemplateResponse, error) {
	agg, err := s.aggregate(ctx, bankCode, propertyType)
	if err != nil {
		return nil, err
	}
	return agg.response, nil
}

// GetCustomTemplateFields returns the aggregated tree without common fields and without
// document fields whose type is excluded from custom templates
func (s *TemplateService) GetCustomTemplateFields(ctx context.Context, bankCode, propertyType string) (*CustomTemplateFieldsResponse, error) {
	agg, err := s.aggregate(ctx, bankCode, propertyType)
	if err != nil {
		return nil, err
	}

	tabs := agg.response.TemplateStructure.Tabs
	for t := range tabs {
		for sec := range tabs[t].Sections {
			fields := tabs[t].Sections[sec].Fields
			kept := make([]models.Field, 0, len(fields))
			for _, f := range fields {
				if f.Source == models.FieldSourceDocumentType && !agg.placed[f.DocumentID].IncludeInCustomTemplate {
					continue
				}
				kept = append(kept, f)
			}
			tabs[t].Sections[sec].Fields = kept
		}
	}

	return &CustomTemplateFieldsResponse{
		BankCode:     agg.response.Bank.BankCode,
		PropertyType: propertyType,
		TemplateCode: agg.response.Template.TemplateCode,
		Tabs:         tabs,
	}, nil
}

// ListBanks returns active banks with their active templates
func (s *TemplateService) ListBanks(ctx context.Context) ([]BankSummary, error) {
	banks, err := s.banks.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}

	out := make([]BankSummary, 0, len(banks))
	for _, b := range banks {
		summary := BankSummary{BankCode: b.BankCode, BankName: b.BankName, Templates: []TemplateSummary{}}
		for _, t := range b.Templates {
			if !t.IsActive {
				continue
			}
			summary.Templates = append(summary.Templates, TemplateSummary{
				TemplateCode: t.TemplateCode,
				TemplateName: t.TemplateName,
				PropertyType: t.PropertyType,
			})
		}
		out = append(out, summary)
	}
	return out, nil
}

// ListDocumentTypes returns the active document type catalog
func (s *TemplateService) ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	docs, err := s.docTypes.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list document types: %w", err)
	}
	return docs, nil
}

func (s *TemplateService) aggregate(ctx context.Context, bankCode, propertyType string) (*aggregation, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bank_code":     bankCode,
		"property_type": propertyType,
	})

	bank, err := s.banks.GetByCode(ctx, bankCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	ref, ok := bank.TemplateFor(propertyType)
	if !ok {
		return nil, apperrors.ErrTemplateNotFound
	}
	structureCode := ref.StructureCode
	if structureCode == "" {
		structureCode = ref.TemplateCode
	}

	var (
		structure   *models.TemplateStructure
		common      []models.CommonField
		defaultDocs docLookup
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.structures.GetByTemplateCode(gctx, structureCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTemplateStructureNotFound
			}
			return fmt.Errorf("failed to get template structure: %w", err)
		}
		structure = st
		return nil
	})
	g.Go(func() error {
		fields, err := s.commonFields.GetActive(gctx, ref.CommonFieldsGroup)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrCommonFieldsNotFound, err)
		}
		if len(fields) == 0 {
			return apperrors.ErrCommonFieldsNotFound
		}
		common = fields
		return nil
	})
	g.Go(func() error {
		// document types are optional; a failure only degrades the affected sections
		defaultDocs.docs, defaultDocs.err = s.docTypes.GetApplicable(gctx, propertyType, bankCode)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lookups := map[string]docLookup{propertyType: defaultDocs}
	docsFor := func(target string) docLookup {
		if l, ok := lookups[target]; ok {
			return l
		}
		docs, err := s.docTypes.GetApplicable(ctx, target, bankCode)
		l := docLookup{docs: docs, err: err}
		lookups[target] = l
		return l
	}

	tabs := copyTabs(structure.Tabs.Data())
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].SortOrder < tabs[j].SortOrder })

	placed := make(map[string]models.DocumentType)
	placedOrder := make([]models.DocumentType, 0)

	for t := range tabs {
		sections := tabs[t].Sections
		sort.SliceStable(sections, func(i, j int) bool { return sections[i].SortOrder < sections[j].SortOrder })

		for sec := range sections {
			section := &sections[sec]
			declaredTree := fieldtree.FromFields(section.Fields)
			declaredTree.SortBySortOrder()
			declared := withSource(declaredTree.Fields(), models.FieldSourceBank)

			if !section.UseDocumentCollection {
				section.Fields = declared
				continue
			}

			target := section.DocumentPropertyType
			if target == "" {
				target = propertyType
			}
			lookup := docsFor(target)
			if lookup.err != nil {
				log.WithError(lookup.err).WithField("section_id", section.SectionID).
					Warn("Document type lookup failed, section keeps its declared fields only")
				section.Fields = declared
				continue
			}

			declaredIDs := make(map[string]struct{}, declaredTree.Len())
			for _, id := range declaredTree.IDs() {
				declaredIDs[id] = struct{}{}
			}

			docs := applicableDocs(lookup.docs, target, bankCode)
			derived := make([]models.Field, 0, len(docs))
			for _, doc := range docs {
				if _, done := placed[doc.DocumentID]; done {
					continue
				}
				if _, clash := declaredIDs[doc.DocumentID]; clash {
					return nil, apperrors.NewFieldCollisionError(doc.DocumentID, section.SectionID)
				}
				derived = append(derived, doc.ToField())
				placed[doc.DocumentID] = doc
				placedOrder = append(placedOrder, doc)
			}
			section.Fields = append(derived, declared...)
		}
	}

	commonFields := sortCommonFields(common)

	namespace := fieldtree.FromFields(commonFields)
	for _, tab := range tabs {
		for _, section := range tab.Sections {
			namespace.AppendRoots(section.Fields)
		}
	}
	if id, dup := namespace.FirstDuplicate(); dup {
		return nil, apperrors.NewDuplicateFieldError(id)
	}

	log.WithFields(map[string]interface{}{
		"template_code":  ref.TemplateCode,
		"field_count":    namespace.Len(),
		"document_count": len(placedOrder),
	}).Debug("Aggregated template")

	return &aggregation{
		response: &AggregatedTemplateResponse{
			Bank: BankInfo{
				BankCode: bank.BankCode,
				BankName: bank.BankName,
				Branches: activeBranches(bank.Branches),
			},
			Template: *ref,
			TemplateStructure: TemplateStructureInfo{
				TemplateCode: structure.TemplateCode,
				Version:      structure.Version,
				Tabs:         tabs,
			},
			DocumentTypes: placedOrder,
			CommonFields:  commonFields,
		},
		placed: placed,
	}, nil
}

// applicableDocs re-checks applicability and orders by sort order
func applicableDocs(docs []models.DocumentType, propertyType, bankCode string) []models.DocumentType {
	out := make([]models.DocumentType, 0, len(docs))
	for _, d := range docs {
		if d.AppliesTo(propertyType, bankCode) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// sortCommonFields orders by sort order, ties broken by field group name
func sortCommonFields(common []models.CommonField) []models.Field {
	sorted := append([]models.CommonField(nil), common...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SortOrder != sorted[j].SortOrder {
			return sorted[i].SortOrder < sorted[j].SortOrder
		}
		return sorted[i].FieldGroup < sorted[j].FieldGroup
	})

	out := make([]models.Field, 0, len(sorted))
	for _, c := range sorted {
		f := c.ToField()
		if len(f.SubFields) > 0 {
			sub := fieldtree.FromFields(f.SubFields)
			sub.SortBySortOrder()
			f.SubFields = withSource(sub.Fields(), models.FieldSourceCommon)
		}
		out = append(out, f)
	}
	return out
}

func withSource(fields []models.Field, source string) []models.Field {
	for i := range fields {
		if fields[i].Source == "" {
			fields[i].Source = source
		}
		if len(fields[i].SubFields) > 0 {
			fields[i].SubFields = withSource(fields[i].SubFields, source)
		}
	}
	return fields
}

// copyTabs deep-copies the tab and section slices so sorting never touches the loaded structure
func copyTabs(in []models.Tab) []models.Tab {
	out := make([]models.Tab, len(in))
	for i, t := range in {
		t.Sections = append([]models.Section(nil), t.Sections...)
		for j := range t.Sections {
			t.Sections[j].Fields = append([]models.Field(nil), t.Sections[j].Fields...)
		}
		out[i] = t
	}
	return out
}

func activeBranches(branches []models.Branch) []models.Branch {
	out := make([]models.Branch, 0, len(branches))
	for _, b := range branches {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out
}
