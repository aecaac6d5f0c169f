package service_test

import (
	"context"
	"errors"
	"testing"

	"valuation-backend/internal/database/models"
	apperrors "valuation-backend/internal/errors"
	"valuation-backend/internal/mocks"
	"valuation-backend/internal/service"
	"valuation-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TemplateServiceTestSuite defines the test suite for TemplateService
type TemplateServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBanks      *mocks.MockBankRepositoryInterface
	mockStructures *mocks.MockTemplateStructureRepositoryInterface
	mockCommon     *mocks.MockCommonFieldRepositoryInterface
	mockDocs       *mocks.MockDocumentTypeRepositoryInterface
	factories      *testutils.FactorySet
	service        *service.TemplateService
}

func (suite *TemplateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBanks = mocks.NewMockBankRepositoryInterface(suite.ctrl)
	suite.mockStructures = mocks.NewMockTemplateStructureRepositoryInterface(suite.ctrl)
	suite.mockCommon = mocks.NewMockCommonFieldRepositoryInterface(suite.ctrl)
	suite.mockDocs = mocks.NewMockDocumentTypeRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.service = service.NewTemplateService(suite.mockBanks, suite.mockStructures, suite.mockCommon, suite.mockDocs)
}

func (suite *TemplateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectCatalog wires the four catalog lookups for SBI land
func (suite *TemplateServiceTestSuite) expectCatalog(bank *models.Bank, structure *models.TemplateStructure, common []models.CommonField, docs []models.DocumentType) {
	suite.mockBanks.EXPECT().GetByCode(gomock.Any(), bank.BankCode).Return(bank, nil)
	suite.mockStructures.EXPECT().GetByTemplateCode(gomock.Any(), structure.TemplateCode).Return(structure, nil)
	suite.mockCommon.EXPECT().GetActive(gomock.Any(), "").Return(common, nil)
	suite.mockDocs.EXPECT().GetApplicable(gomock.Any(), "land", bank.BankCode).Return(docs, nil)
}

func fieldIDs(fields []models.Field) []string {
	ids := make([]string, 0, len(fields))
	for _, f := range fields {
		ids = append(ids, f.FieldID)
	}
	return ids
}

func (suite *TemplateServiceTestSuite) TestAggregateSBILand() {
	bank, structure, common, docs := suite.factories.SBILandCatalog()
	suite.expectCatalog(bank, structure, common, docs)

	resp, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SBI", resp.Bank.BankCode)
	assert.Equal(suite.T(), "SBI_LAND", resp.Template.TemplateCode)
	assert.Equal(suite.T(), []string{"cf1"}, fieldIDs(resp.CommonFields))
	require.Len(suite.T(), resp.TemplateStructure.Tabs, 1)
	require.Len(suite.T(), resp.TemplateStructure.Tabs[0].Sections, 1)

	fields := resp.TemplateStructure.Tabs[0].Sections[0].Fields
	assert.Equal(suite.T(), []string{"doc1", "custom1"}, fieldIDs(fields))
	assert.Equal(suite.T(), models.FieldSourceDocumentType, fields[0].Source)
	assert.Equal(suite.T(), models.FieldTypeFile, fields[0].FieldType)
	assert.Equal(suite.T(), models.FieldSourceBank, fields[1].Source)
	require.Len(suite.T(), resp.DocumentTypes, 1)
	assert.Equal(suite.T(), "doc1", resp.DocumentTypes[0].DocumentID)
}

func (suite *TemplateServiceTestSuite) TestAggregateOrdersEveryLevel() {
	bank := suite.factories.Bank.Create()
	structure := suite.factories.TemplateStructure.WithTabs("SBI_LAND",
		models.Tab{TabID: "late", SortOrder: 2, Sections: []models.Section{
			{SectionID: "late_s", Fields: []models.Field{testutils.Leaf("z", 1)}},
		}},
		models.Tab{TabID: "early", SortOrder: 1, Sections: []models.Section{
			{SectionID: "b", SortOrder: 2, Fields: []models.Field{testutils.Leaf("b1", 1)}},
			{SectionID: "a", SortOrder: 1, Fields: []models.Field{
				testutils.Leaf("second", 5),
				testutils.Group("grp", 1, testutils.Leaf("g2", 2), testutils.Leaf("g1", 1)),
				testutils.Leaf("tie_a", 5),
			}},
		}},
	)
	common := []models.CommonField{
		*suite.factories.CommonField.Create("c_z", 1, "zeta"),
		*suite.factories.CommonField.Create("c_a", 1, "alpha"),
		*suite.factories.CommonField.Create("c_0", 0, "zeta"),
	}
	suite.expectCatalog(bank, structure, common, nil)

	resp, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	require.NoError(suite.T(), err)
	tabs := resp.TemplateStructure.Tabs
	assert.Equal(suite.T(), "early", tabs[0].TabID)
	assert.Equal(suite.T(), "late", tabs[1].TabID)
	assert.Equal(suite.T(), "a", tabs[0].Sections[0].SectionID)
	assert.Equal(suite.T(), []string{"grp", "second", "tie_a"}, fieldIDs(tabs[0].Sections[0].Fields))
	assert.Equal(suite.T(), []string{"g1", "g2"}, fieldIDs(tabs[0].Sections[0].Fields[0].SubFields))
	assert.Equal(suite.T(), []string{"c_0", "c_a", "c_z"}, fieldIDs(resp.CommonFields))

	// the stored structure is left untouched
	assert.Equal(suite.T(), "late", structure.Tabs.Data()[0].TabID)
}

func (suite *TemplateServiceTestSuite) TestAggregateIsDeterministic() {
	bank, structure, common, docs := suite.factories.SBILandCatalog()
	suite.mockBanks.EXPECT().GetByCode(gomock.Any(), "SBI").Return(bank, nil).Times(2)
	suite.mockStructures.EXPECT().GetByTemplateCode(gomock.Any(), "SBI_LAND").Return(structure, nil).Times(2)
	suite.mockCommon.EXPECT().GetActive(gomock.Any(), "").Return(common, nil).Times(2)
	suite.mockDocs.EXPECT().GetApplicable(gomock.Any(), "land", "SBI").Return(docs, nil).Times(2)

	first, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")
	require.NoError(suite.T(), err)
	second, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), first, second)
}

func (suite *TemplateServiceTestSuite) TestBankNotFound() {
	suite.mockBanks.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetAggregatedTemplate(context.Background(), "NOPE", "land")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBankNotFound)
}

func (suite *TemplateServiceTestSuite) TestTemplateNotFoundForPropertyType() {
	suite.mockBanks.EXPECT().GetByCode(gomock.Any(), "SBI").Return(suite.factories.Bank.Create(), nil)

	_, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "flat")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTemplateNotFound)
}

func (suite *TemplateServiceTestSuite) TestStructureNotFound() {
	bank, _, common, docs := suite.factories.SBILandCatalog()
	suite.mockBanks.EXPECT().GetByCode(gomock.Any(), "SBI").Return(bank, nil)
	suite.mockStructures.EXPECT().GetByTemplateCode(gomock.Any(), "SBI_LAND").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCommon.EXPECT().GetActive(gomock.Any(), "").Return(common, nil).AnyTimes()
	suite.mockDocs.EXPECT().GetApplicable(gomock.Any(), "land", "SBI").Return(docs, nil).AnyTimes()

	_, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTemplateStructureNotFound)
}

func (suite *TemplateServiceTestSuite) TestEmptyCommonCatalogIsNotFound() {
	bank, structure, _, docs := suite.factories.SBILandCatalog()
	suite.mockBanks.EXPECT().GetByCode(gomock.Any(), "SBI").Return(bank, nil)
	suite.mockStructures.EXPECT().GetByTemplateCode(gomock.Any(), "SBI_LAND").Return(structure, nil).AnyTimes()
	suite.mockCommon.EXPECT().GetActive(gomock.Any(), "").Return([]models.CommonField{}, nil)
	suite.mockDocs.EXPECT().GetApplicable(gomock.Any(), "land", "SBI").Return(docs, nil).AnyTimes()

	_, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	assert.ErrorIs(suite.T(), err, apperrors.ErrCommonFieldsNotFound)
	assert.Equal(suite.T(), apperrors.CodeNotFound, apperrors.Code(err))
}

func (suite *TemplateServiceTestSuite) TestDocumentLookupFailureKeepsDeclaredFields() {
	bank, structure, common, _ := suite.factories.SBILandCatalog()
	suite.mockBanks.EXPECT().GetByCode(gomock.Any(), "SBI").Return(bank, nil)
	suite.mockStructures.EXPECT().GetByTemplateCode(gomock.Any(), "SBI_LAND").Return(structure, nil)
	suite.mockCommon.EXPECT().GetActive(gomock.Any(), "").Return(common, nil)
	suite.mockDocs.EXPECT().GetApplicable(gomock.Any(), "land", "SBI").Return(nil, errors.New("connection reset"))

	resp, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"custom1"}, fieldIDs(resp.TemplateStructure.Tabs[0].Sections[0].Fields))
	assert.Empty(suite.T(), resp.DocumentTypes)
}

func (suite *TemplateServiceTestSuite) TestDocumentCollidingWithDeclaredField() {
	bank, structure, common, _ := suite.factories.SBILandCatalog()
	docs := []models.DocumentType{*suite.factories.DocumentType.Create("custom1", 1, []string{"land"}, []string{"SBI"})}
	suite.expectCatalog(bank, structure, common, docs)

	_, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAggregation(err))
	assert.Contains(suite.T(), err.Error(), "custom1")
}

func (suite *TemplateServiceTestSuite) TestDuplicateAcrossCommonAndSection() {
	bank, structure, _, docs := suite.factories.SBILandCatalog()
	common := []models.CommonField{*suite.factories.CommonField.Create("custom1", 1, "general")}
	suite.expectCatalog(bank, structure, common, docs)

	_, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.CodeAggregationError, apperrors.Code(err))
}

func (suite *TemplateServiceTestSuite) TestDocumentPlacedInFirstAdmittingSectionOnly() {
	bank := suite.factories.Bank.Create()
	structure := suite.factories.TemplateStructure.WithTabs("SBI_LAND", models.Tab{
		TabID: "t1",
		Sections: []models.Section{
			{SectionID: "s1", SortOrder: 1, UseDocumentCollection: true},
			{SectionID: "s2", SortOrder: 2, UseDocumentCollection: true, Fields: []models.Field{testutils.Leaf("x", 1)}},
		},
	})
	common := []models.CommonField{*suite.factories.CommonField.Create("cf1", 1, "general")}
	docs := []models.DocumentType{
		*suite.factories.DocumentType.Create("doc2", 2, []string{"land"}, []string{"*"}),
		*suite.factories.DocumentType.Create("doc1", 1, []string{"*"}, []string{"SBI"}),
	}
	suite.expectCatalog(bank, structure, common, docs)

	resp, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	require.NoError(suite.T(), err)
	sections := resp.TemplateStructure.Tabs[0].Sections
	assert.Equal(suite.T(), []string{"doc1", "doc2"}, fieldIDs(sections[0].Fields))
	assert.Equal(suite.T(), []string{"x"}, fieldIDs(sections[1].Fields))
}

func (suite *TemplateServiceTestSuite) TestSectionDocumentPropertyTypeOverride() {
	bank := suite.factories.Bank.Create()
	structure := suite.factories.TemplateStructure.WithTabs("SBI_LAND", models.Tab{
		TabID: "t1",
		Sections: []models.Section{
			{SectionID: "s1", UseDocumentCollection: true, DocumentPropertyType: "building"},
		},
	})
	common := []models.CommonField{*suite.factories.CommonField.Create("cf1", 1, "general")}
	suite.expectCatalog(bank, structure, common, nil)
	suite.mockDocs.EXPECT().GetApplicable(gomock.Any(), "building", "SBI").Return([]models.DocumentType{
		*suite.factories.DocumentType.Create("plan", 1, []string{"building"}, []string{"*"}),
	}, nil)

	resp, err := suite.service.GetAggregatedTemplate(context.Background(), "SBI", "land")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"plan"}, fieldIDs(resp.TemplateStructure.Tabs[0].Sections[0].Fields))
}

func (suite *TemplateServiceTestSuite) TestCustomTemplateFieldsDropsExcludedDocuments() {
	bank, structure, common, docs := suite.factories.SBILandCatalog()
	excluded := suite.factories.DocumentType.Create("doc_private", 2, []string{"land"}, []string{"*"})
	excluded.IncludeInCustomTemplate = false
	docs = append(docs, *excluded)
	suite.expectCatalog(bank, structure, common, docs)

	resp, err := suite.service.GetCustomTemplateFields(context.Background(), "SBI", "land")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SBI_LAND", resp.TemplateCode)
	assert.Equal(suite.T(), []string{"doc1", "custom1"}, fieldIDs(resp.Tabs[0].Sections[0].Fields))
}

func (suite *TemplateServiceTestSuite) TestListBanksSkipsInactiveTemplates() {
	bank := suite.factories.Bank.Create()
	bank.Templates = append(bank.Templates, models.TemplateRef{TemplateCode: "SBI_OLD", PropertyType: "flat", IsActive: false})
	suite.mockBanks.EXPECT().GetAllActive(gomock.Any()).Return([]models.Bank{*bank}, nil)

	banks, err := suite.service.ListBanks(context.Background())

	require.NoError(suite.T(), err)
	require.Len(suite.T(), banks, 1)
	require.Len(suite.T(), banks[0].Templates, 1)
	assert.Equal(suite.T(), "SBI_LAND", banks[0].Templates[0].TemplateCode)
}

func TestTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateServiceTestSuite))
}
