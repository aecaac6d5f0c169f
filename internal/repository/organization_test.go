//go:build integration
// +build integration

package repository

import (
	"context"
	"sort"
	"sync"
	"testing"

	"valuation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(suite.ctx, org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
	suite.True(org.IsActive)
}

func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateShortName() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Organization.WithShortName("acme")))

	err := suite.repo.Create(suite.ctx, suite.factories.Organization.WithShortName("acme"))

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *OrganizationRepositoryTestSuite) TestGetByShortName() {
	org := suite.factories.Organization.WithShortName("acme")
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))

	found, err := suite.repo.GetByShortName(suite.ctx, "acme")
	suite.NoError(err)
	suite.Equal(org.ID, found.ID)
	suite.Equal("valuation_org_acme", found.DatabaseName)

	_, err = suite.repo.GetByShortName(suite.ctx, "missing")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrganizationRepositoryTestSuite) TestGetAllPaginates() {
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Organization.WithShortName(name)))
	}

	page, total, err := suite.repo.GetAll(suite.ctx, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 2)
	suite.Equal("alpha", page[0].ShortName)
	suite.Equal("bravo", page[1].ShortName)
}

func (suite *OrganizationRepositoryTestSuite) TestUpdateAndDelete() {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))

	org.FullName = "Renamed Valuers"
	suite.NoError(suite.repo.Update(suite.ctx, org))

	found, err := suite.repo.GetByID(suite.ctx, org.ID)
	suite.NoError(err)
	suite.Equal("Renamed Valuers", found.FullName)

	suite.NoError(suite.repo.Delete(suite.ctx, org.ID))
	_, err = suite.repo.GetByID(suite.ctx, org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrganizationRepositoryTestSuite) TestIncrementReferenceCounterConcurrent() {
	org := suite.factories.Organization.WithShortName("acme")
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))

	const n = 25
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []int64
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := suite.repo.IncrementReferenceCounter(suite.ctx, "acme")
			suite.NoError(err)
			mu.Lock()
			numbers = append(numbers, v)
			mu.Unlock()
		}()
	}
	wg.Wait()

	suite.Require().Len(numbers, n)
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	for i, v := range numbers {
		suite.Equal(int64(i+1), v)
	}
}

func (suite *OrganizationRepositoryTestSuite) TestIncrementReferenceCounterInactive() {
	org := suite.factories.Organization.WithShortName("dormant")
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))
	org.IsActive = false
	suite.Require().NoError(suite.repo.Update(suite.ctx, org))

	_, err := suite.repo.IncrementReferenceCounter(suite.ctx, "dormant")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
