//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"valuation-backend/internal/database/models"
	"valuation-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CatalogRepositoryTestSuite tests the admin catalog repositories
type CatalogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	ctx           context.Context

	banks       *BankRepository
	structures  *TemplateStructureRepository
	common      *CommonFieldRepository
	docs        *DocumentTypeRepository
	permissions *PermissionTemplateRepository
}

func (suite *CatalogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.banks = NewBankRepository(db)
	suite.structures = NewTemplateStructureRepository(db)
	suite.common = NewCommonFieldRepository(db)
	suite.docs = NewDocumentTypeRepository(db)
	suite.permissions = NewPermissionTemplateRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *CatalogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *CatalogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CatalogRepositoryTestSuite) TestBankAndStructureRoundTrip() {
	bank, structure, _, _ := suite.factories.SBILandCatalog()
	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(bank).Error)
	suite.Require().NoError(db.Create(structure).Error)

	found, err := suite.banks.GetByCode(suite.ctx, "SBI")
	suite.Require().NoError(err)
	ref, ok := found.TemplateFor("land")
	suite.Require().True(ok)
	suite.Equal("SBI_LAND", ref.StructureCode)

	got, err := suite.structures.GetByTemplateCode(suite.ctx, ref.StructureCode)
	suite.Require().NoError(err)
	tabs := got.Tabs.Data()
	suite.Require().Len(tabs, 1)
	suite.Equal("custom1", tabs[0].Sections[0].Fields[0].FieldID)

	_, err = suite.banks.GetByCode(suite.ctx, "NOPE")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CatalogRepositoryTestSuite) TestInactiveBankIsHidden() {
	bank := suite.factories.Bank.WithTemplate("HDFC", "flat", "HDFC_FLAT")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(bank).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Model(bank).Update("is_active", false).Error)

	_, err := suite.banks.GetByCode(suite.ctx, "HDFC")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	all, err := suite.banks.GetAllActive(suite.ctx)
	suite.NoError(err)
	suite.Empty(all)
}

func (suite *CatalogRepositoryTestSuite) TestCommonFieldsOrderedBySortOrderThenGroup() {
	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(suite.factories.CommonField.Create("cf_b", 2, "alpha")).Error)
	suite.Require().NoError(db.Create(suite.factories.CommonField.Create("cf_c", 1, "zeta")).Error)
	suite.Require().NoError(db.Create(suite.factories.CommonField.Create("cf_a", 1, "alpha")).Error)

	fields, err := suite.common.GetActive(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Require().Len(fields, 3)
	suite.Equal("cf_a", fields[0].FieldID)
	suite.Equal("cf_c", fields[1].FieldID)
	suite.Equal("cf_b", fields[2].FieldID)

	ids, err := suite.common.GetActiveFieldIDs(suite.ctx)
	suite.NoError(err)
	suite.ElementsMatch([]string{"cf_a", "cf_b", "cf_c"}, ids)
}

func (suite *CatalogRepositoryTestSuite) TestDocumentTypeApplicabilityFilter() {
	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(suite.factories.DocumentType.Create("doc_land_any", 2, []string{"land"}, []string{"*"})).Error)
	suite.Require().NoError(db.Create(suite.factories.DocumentType.Create("doc_any_sbi", 1, []string{"*"}, []string{"SBI"})).Error)
	suite.Require().NoError(db.Create(suite.factories.DocumentType.Create("doc_flat_sbi", 0, []string{"flat"}, []string{"SBI"})).Error)
	suite.Require().NoError(db.Create(suite.factories.DocumentType.Create("doc_land_hdfc", 0, []string{"land"}, []string{"HDFC"})).Error)
	inactive := suite.factories.DocumentType.Create("doc_inactive", 0, []string{"*"}, []string{"*"})
	suite.Require().NoError(db.Create(inactive).Error)
	suite.Require().NoError(db.Model(inactive).Update("is_active", false).Error)

	docs, err := suite.docs.GetApplicable(suite.ctx, "land", "SBI")
	suite.Require().NoError(err)

	var ids []string
	for _, d := range docs {
		ids = append(ids, d.DocumentID)
	}
	suite.Equal([]string{"doc_any_sbi", "doc_land_any"}, ids)
}

func (suite *CatalogRepositoryTestSuite) TestSeedDefaultsIsIdempotent() {
	added, err := suite.permissions.SeedDefaults(suite.ctx, models.DefaultPermissionTemplates())
	suite.Require().NoError(err)
	suite.Equal(int64(4), added)

	added, err = suite.permissions.SeedDefaults(suite.ctx, models.DefaultPermissionTemplates())
	suite.Require().NoError(err)
	suite.Equal(int64(0), added)

	tpl, err := suite.permissions.GetByRole(suite.ctx, models.RoleManager)
	suite.Require().NoError(err)
	suite.True(tpl.Capabilities.Data().Allows(models.ResourceCustomTemplates, models.ActionCreate))
}

func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
