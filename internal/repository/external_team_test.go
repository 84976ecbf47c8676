package repository

import (
	"testing"
	"time"

	"dispatch-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ExternalTeamRepositoryTestSuite tests the ExternalTeamRepository
type ExternalTeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ExternalTeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ExternalTeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewExternalTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ExternalTeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ExternalTeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ExternalTeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertInsert tests inserting a fresh snapshot
func (suite *ExternalTeamRepositoryTestSuite) TestUpsertInsert() {
	team := suite.factories.ExternalTeam.WithExternalID("team-42")

	err := suite.repo.Upsert(team)

	suite.NoError(err)

	stored, err := suite.repo.GetByExternalID("team-42")
	suite.NoError(err)
	suite.Equal(team.ID, stored.ID)
	suite.Equal([]string{"100001", "100002"}, stored.MemberAdminIDs)
}

// TestUpsertRefresh tests that a second upsert on the same external id updates in place
func (suite *ExternalTeamRepositoryTestSuite) TestUpsertRefresh() {
	first := suite.factories.ExternalTeam.WithExternalID("team-42")
	first.SyncedAt = time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC)
	err := suite.repo.Upsert(first)
	suite.NoError(err)

	// Same platform team, fresh sync with a changed roster
	second := suite.factories.ExternalTeam.WithExternalID("team-42")
	second.Title = "Renamed Crew"
	second.MemberAdminIDs = []string{"100003"}
	second.SyncedAt = time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)
	err = suite.repo.Upsert(second)
	suite.NoError(err)

	stored, err := suite.repo.GetByExternalID("team-42")
	suite.NoError(err)
	// Row was refreshed, not duplicated
	suite.Equal(first.ID, stored.ID)
	suite.Equal("Renamed Crew", stored.Title)
	suite.Equal([]string{"100003"}, stored.MemberAdminIDs)
	suite.True(stored.SyncedAt.After(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)))

	_, total, err := suite.repo.GetAll(10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestGetByExternalIDNotFound tests retrieving a non-existent snapshot
func (suite *ExternalTeamRepositoryTestSuite) TestGetByExternalIDNotFound() {
	team, err := suite.repo.GetByExternalID("missing-team")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

// TestGetAllWithPagination tests listing snapshots with pagination
func (suite *ExternalTeamRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 5; i++ {
		team := suite.factories.ExternalTeam.Create()
		err := suite.repo.Upsert(team)
		suite.NoError(err)
	}

	// Test first page
	teams, total, err := suite.repo.GetAll(3, 0)
	suite.NoError(err)
	suite.Len(teams, 3)
	suite.Equal(int64(5), total)

	// Test second page
	teams, total, err = suite.repo.GetAll(3, 3)
	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal(int64(5), total)
}

// TestDeleteSyncedBefore tests pruning snapshots the platform stopped reporting
func (suite *ExternalTeamRepositoryTestSuite) TestDeleteSyncedBefore() {
	stale := suite.factories.ExternalTeam.WithExternalID("stale-team")
	stale.SyncedAt = time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC)
	err := suite.repo.Upsert(stale)
	suite.NoError(err)

	fresh := suite.factories.ExternalTeam.WithExternalID("fresh-team")
	fresh.SyncedAt = time.Date(2025, 1, 10, 3, 0, 0, 0, time.UTC)
	err = suite.repo.Upsert(fresh)
	suite.NoError(err)

	deleted, err := suite.repo.DeleteSyncedBefore(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repo.GetByExternalID("stale-team")
	suite.Equal(gorm.ErrRecordNotFound, err)

	remaining, err := suite.repo.GetByExternalID("fresh-team")
	suite.NoError(err)
	suite.Equal("fresh-team", remaining.ExternalID)
}

// Run the test suite
func TestExternalTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExternalTeamRepositoryTestSuite))
}
