//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"valuation-backend/internal/database/models"
	"valuation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite runs tenant repositories against two provisioned databases
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	stores        TenantStores
	ctx           context.Context

	acmeDB   *gorm.DB
	globexDB *gorm.DB
	acmeID   uuid.UUID
	globexID uuid.UUID
}

func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.stores = NewTenantStores()
	suite.ctx = context.Background()
}

func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.acmeDB = suite.baseTestSuite.CreateTenantDB(suite.T(), "valuation_org_acme_test")
	suite.globexDB = suite.baseTestSuite.CreateTenantDB(suite.T(), "valuation_org_globex_test")
	suite.acmeID = uuid.New()
	suite.globexID = uuid.New()
}

func (suite *TenantRepositoryTestSuite) TestTenantIsolation() {
	acme := suite.stores.CustomTemplates(suite.acmeDB)
	globex := suite.stores.CustomTemplates(suite.globexDB)

	suite.Require().NoError(acme.Create(suite.ctx, suite.factories.CustomTemplate.Create(suite.acmeID, "SBI", "land", "Standard")))
	suite.Require().NoError(globex.Create(suite.ctx, suite.factories.CustomTemplate.Create(suite.globexID, "SBI", "land", "Standard")))

	acmeList, err := acme.ListActive(suite.ctx, suite.acmeID, "SBI", "land")
	suite.Require().NoError(err)
	suite.Len(acmeList, 1)

	leaked, err := acme.ListActive(suite.ctx, suite.globexID, "SBI", "land")
	suite.Require().NoError(err)
	suite.Empty(leaked)

	_, err = acme.GetByID(suite.ctx, mustFirst(globex.ListActive(suite.ctx, suite.globexID, "", "")).ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.Require().NoError(suite.stores.Reports(suite.acmeDB).Create(suite.ctx, suite.factories.Report.Create(suite.acmeID, "ACME-000001")))
	reports, total, err := suite.stores.Reports(suite.globexDB).GetByOrganization(suite.ctx, suite.acmeID, 10, 0)
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(reports)
}

func (suite *TenantRepositoryTestSuite) TestCountAndNameChecksIgnoreInactive() {
	repo := suite.stores.CustomTemplates(suite.acmeDB)
	for _, name := range []string{"One", "Two", "Three"} {
		suite.Require().NoError(repo.Create(suite.ctx, suite.factories.CustomTemplate.Create(suite.acmeID, "SBI", "land", name)))
	}
	suite.Require().NoError(repo.Create(suite.ctx, suite.factories.CustomTemplate.Create(suite.acmeID, "SBI", "flat", "Other scope")))

	count, err := repo.CountActive(suite.ctx, suite.acmeID, "SBI", "land")
	suite.Require().NoError(err)
	suite.Equal(int64(models.MaxActiveCustomTemplates), count)

	exists, err := repo.ActiveNameExists(suite.ctx, suite.acmeID, "SBI", "land", "two", nil)
	suite.Require().NoError(err)
	suite.True(exists)

	list, err := repo.ListActive(suite.ctx, suite.acmeID, "SBI", "land")
	suite.Require().NoError(err)
	var two models.CustomTemplate
	for _, tpl := range list {
		if tpl.TemplateName == "Two" {
			two = tpl
		}
	}
	exists, err = repo.ActiveNameExists(suite.ctx, suite.acmeID, "SBI", "land", "Two", &two.ID)
	suite.Require().NoError(err)
	suite.False(exists)

	two.IsActive = false
	two.Version++
	suite.Require().NoError(repo.Update(suite.ctx, &two))

	count, err = repo.CountActive(suite.ctx, suite.acmeID, "SBI", "land")
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	exists, err = repo.ActiveNameExists(suite.ctx, suite.acmeID, "SBI", "land", "Two", nil)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *TenantRepositoryTestSuite) TestIncrementUsage() {
	repo := suite.stores.CustomTemplates(suite.acmeDB)
	tpl := suite.factories.CustomTemplate.Create(suite.acmeID, "SBI", "land", "Used")
	suite.Require().NoError(repo.Create(suite.ctx, tpl))

	suite.NoError(repo.IncrementUsage(suite.ctx, tpl.ID))
	suite.NoError(repo.IncrementUsage(suite.ctx, tpl.ID))

	found, err := repo.GetByID(suite.ctx, tpl.ID)
	suite.Require().NoError(err)
	suite.Equal(2, found.UsageCount)
}

func (suite *TenantRepositoryTestSuite) TestUserSettingsUpsertAndActivityLog() {
	settings := suite.stores.UserSettings(suite.acmeDB)

	first := &models.UserSettings{
		UserID: "user-1",
		PermissionOverrides: datatypes.NewJSONType(models.Capabilities{
			models.ResourceReports: {models.ActionDelete: true},
		}),
	}
	suite.Require().NoError(settings.Upsert(suite.ctx, first))

	second := &models.UserSettings{
		UserID:              "user-1",
		PermissionOverrides: datatypes.NewJSONType(models.Capabilities{}),
		Preferences:         datatypes.JSONMap{"theme": "dark"},
	}
	suite.Require().NoError(settings.Upsert(suite.ctx, second))

	found, err := settings.GetByUserID(suite.ctx, "user-1")
	suite.Require().NoError(err)
	suite.Empty(found.PermissionOverrides.Data())
	suite.Equal("dark", found.Preferences["theme"])

	entry := &models.ActivityLog{UserID: "user-1", OrgShortName: "acme", Action: "Created custom template", ActionType: "create"}
	suite.NoError(suite.stores.ActivityLogs(suite.acmeDB).Create(suite.ctx, entry))
	suite.NotEqual(uuid.Nil, entry.ID)
}

func mustFirst(list []models.CustomTemplate, err error) models.CustomTemplate {
	if err != nil || len(list) == 0 {
		return models.CustomTemplate{}
	}
	return list[0]
}

func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
