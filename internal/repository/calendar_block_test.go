package repository

import (
	"testing"
	"time"

	"dispatch-portal-backend/internal/database/models"
	"dispatch-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CalendarBlockRepositoryTestSuite tests the CalendarBlockRepository
type CalendarBlockRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CalendarBlockRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CalendarBlockRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCalendarBlockRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CalendarBlockRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CalendarBlockRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CalendarBlockRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createWorker persists an organization and a worker for FK references
func (suite *CalendarBlockRepositoryTestSuite) createWorker() *models.Worker {
	org := suite.factories.Organization.Create()
	orgRepo := NewOrganizationRepository(suite.baseTestSuite.DB)
	err := orgRepo.Create(org)
	suite.NoError(err)

	worker := suite.factories.Worker.WithOrganization(org.ID)
	workerRepo := NewWorkerRepository(suite.baseTestSuite.DB)
	err = workerRepo.Create(worker)
	suite.NoError(err)
	return worker
}

// TestCreate tests creating a new calendar block
func (suite *CalendarBlockRepositoryTestSuite) TestCreate() {
	worker := suite.createWorker()

	block := suite.factories.CalendarBlock.WithWorker(worker.ID)

	err := suite.repo.Create(block)

	// Assertions
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, block.ID)
	suite.NotZero(block.CreatedAt)
	suite.True(block.BlocksAvailability)
}

// TestGetByID tests retrieving a calendar block by ID
func (suite *CalendarBlockRepositoryTestSuite) TestGetByID() {
	worker := suite.createWorker()

	block := suite.factories.CalendarBlock.WithWorker(worker.ID)
	err := suite.repo.Create(block)
	suite.NoError(err)

	retrievedBlock, err := suite.repo.GetByID(block.ID)

	suite.NoError(err)
	suite.NotNil(retrievedBlock)
	suite.Equal(block.ID, retrievedBlock.ID)
	suite.Equal(block.WorkerID, retrievedBlock.WorkerID)
	suite.Equal(models.BlockTypeMeeting, retrievedBlock.BlockType)
}

// TestGetByIDNotFound tests retrieving a non-existent calendar block
func (suite *CalendarBlockRepositoryTestSuite) TestGetByIDNotFound() {
	block, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(block)
}

// TestGetByWorkerIDWithPagination tests listing a worker's blocks
func (suite *CalendarBlockRepositoryTestSuite) TestGetByWorkerIDWithPagination() {
	worker := suite.createWorker()

	base := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		start := base.AddDate(0, 0, i)
		block := suite.factories.CalendarBlock.WithTimes(worker.ID, start, start.Add(time.Hour))
		err := suite.repo.Create(block)
		suite.NoError(err)
	}

	// Test first page
	blocks, total, err := suite.repo.GetByWorkerID(worker.ID, 3, 0)
	suite.NoError(err)
	suite.Len(blocks, 3)
	suite.Equal(int64(5), total)

	// Ordered by start time
	suite.True(blocks[0].StartTime.Before(blocks[1].StartTime))

	// Test second page
	blocks, total, err = suite.repo.GetByWorkerID(worker.ID, 3, 3)
	suite.NoError(err)
	suite.Len(blocks, 2)
	suite.Equal(int64(5), total)
}

// TestListInRange tests querying blocks overlapping a window
func (suite *CalendarBlockRepositoryTestSuite) TestListInRange() {
	worker := suite.createWorker()

	// Inside the window
	inside := suite.factories.CalendarBlock.WithTimes(worker.ID,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC))
	err := suite.repo.Create(inside)
	suite.NoError(err)

	// Straddles the window start
	straddling := suite.factories.CalendarBlock.WithTimes(worker.ID,
		time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC))
	err = suite.repo.Create(straddling)
	suite.NoError(err)

	// Entirely before the window
	before := suite.factories.CalendarBlock.WithTimes(worker.ID,
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	err = suite.repo.Create(before)
	suite.NoError(err)

	// Entirely after the window
	after := suite.factories.CalendarBlock.WithTimes(worker.ID,
		time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC))
	err = suite.repo.Create(after)
	suite.NoError(err)

	rangeStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	blocks, err := suite.repo.ListInRange([]uuid.UUID{worker.ID}, rangeStart, rangeEnd)

	suite.NoError(err)
	suite.Len(blocks, 2)

	ids := make([]uuid.UUID, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	suite.Contains(ids, inside.ID)
	suite.Contains(ids, straddling.ID)
	suite.NotContains(ids, before.ID)
	suite.NotContains(ids, after.ID)
}

// TestListInRangeIncludesRecurringSeries tests that a recurring block whose
// base interval precedes the window is still returned for later expansion
func (suite *CalendarBlockRepositoryTestSuite) TestListInRangeIncludesRecurringSeries() {
	worker := suite.createWorker()

	recurring := suite.factories.CalendarBlock.WithRecurrenceRule(worker.ID, "FREQ=WEEKLY;BYDAY=MO")
	recurring.StartTime = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	recurring.EndTime = time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	err := suite.repo.Create(recurring)
	suite.NoError(err)

	oneOff := suite.factories.CalendarBlock.WithTimes(worker.ID,
		time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC))
	err = suite.repo.Create(oneOff)
	suite.NoError(err)

	// Window months after the series started
	rangeStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	blocks, err := suite.repo.ListInRange([]uuid.UUID{worker.ID}, rangeStart, rangeEnd)

	suite.NoError(err)
	suite.Len(blocks, 1)
	suite.Equal(recurring.ID, blocks[0].ID)
	suite.Equal("FREQ=WEEKLY;BYDAY=MO", blocks[0].RecurrenceRule)
}

// TestListInRangeFiltersWorkers tests that only the requested workers' blocks return
func (suite *CalendarBlockRepositoryTestSuite) TestListInRangeFiltersWorkers() {
	worker1 := suite.createWorker()
	worker2 := suite.createWorker()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	block1 := suite.factories.CalendarBlock.WithTimes(worker1.ID, start, start.Add(time.Hour))
	err := suite.repo.Create(block1)
	suite.NoError(err)
	block2 := suite.factories.CalendarBlock.WithTimes(worker2.ID, start, start.Add(time.Hour))
	err = suite.repo.Create(block2)
	suite.NoError(err)

	blocks, err := suite.repo.ListInRange([]uuid.UUID{worker1.ID},
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))

	suite.NoError(err)
	suite.Len(blocks, 1)
	suite.Equal(block1.ID, blocks[0].ID)
}

// TestListInRangeEmptyWorkerList tests that no workers short-circuits to empty
func (suite *CalendarBlockRepositoryTestSuite) TestListInRangeEmptyWorkerList() {
	blocks, err := suite.repo.ListInRange([]uuid.UUID{},
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC))

	suite.NoError(err)
	suite.Empty(blocks)
}

// TestUpdate tests updating a calendar block
func (suite *CalendarBlockRepositoryTestSuite) TestUpdate() {
	worker := suite.createWorker()

	block := suite.factories.CalendarBlock.WithWorker(worker.ID)
	err := suite.repo.Create(block)
	suite.NoError(err)

	block.BlockType = models.BlockTypeTraining
	block.BlocksAvailability = false

	err = suite.repo.Update(block)
	suite.NoError(err)

	updatedBlock, err := suite.repo.GetByID(block.ID)
	suite.NoError(err)
	suite.Equal(models.BlockTypeTraining, updatedBlock.BlockType)
	suite.False(updatedBlock.BlocksAvailability)
}

// TestDelete tests deleting a calendar block
func (suite *CalendarBlockRepositoryTestSuite) TestDelete() {
	worker := suite.createWorker()

	block := suite.factories.CalendarBlock.WithWorker(worker.ID)
	err := suite.repo.Create(block)
	suite.NoError(err)

	err = suite.repo.Delete(block.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(block.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestCalendarBlockRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarBlockRepositoryTestSuite))
}
