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

// WorkItemRepositoryTestSuite tests the WorkItemRepository
type WorkItemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkItemRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkItemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewWorkItemRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkItemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkItemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkItemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrganization persists an organization for FK references
func (suite *WorkItemRepositoryTestSuite) createOrganization() *models.Organization {
	org := suite.factories.Organization.Create()
	orgRepo := NewOrganizationRepository(suite.baseTestSuite.DB)
	err := orgRepo.Create(org)
	suite.NoError(err)
	return org
}

// createWorker persists a worker in the given organization
func (suite *WorkItemRepositoryTestSuite) createWorker(orgID uuid.UUID) *models.Worker {
	worker := suite.factories.Worker.WithOrganization(orgID)
	workerRepo := NewWorkerRepository(suite.baseTestSuite.DB)
	err := workerRepo.Create(worker)
	suite.NoError(err)
	return worker
}

// TestCreate tests creating a new work item
func (suite *WorkItemRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()

	item := suite.factories.WorkItem.WithOrganization(org.ID)

	err := suite.repo.Create(item)

	// Assertions
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, item.ID)
	suite.Equal(models.WorkItemStatusOpen, item.Status)
	suite.Equal(models.WorkItemPriorityMedium, item.Priority)
	suite.Nil(item.AssigneeID)
}

// TestGetByID tests retrieving a work item by ID
func (suite *WorkItemRepositoryTestSuite) TestGetByID() {
	org := suite.createOrganization()
	worker := suite.createWorker(org.ID)

	item := suite.factories.WorkItem.WithAssignee(org.ID, worker.ID)
	err := suite.repo.Create(item)
	suite.NoError(err)

	retrievedItem, err := suite.repo.GetByID(item.ID)

	suite.NoError(err)
	suite.NotNil(retrievedItem)
	suite.Equal(item.ID, retrievedItem.ID)
	suite.NotNil(retrievedItem.AssigneeID)
	suite.Equal(worker.ID, *retrievedItem.AssigneeID)
}

// TestGetByIDNotFound tests retrieving a non-existent work item
func (suite *WorkItemRepositoryTestSuite) TestGetByIDNotFound() {
	item, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(item)
}

// TestGetByOrganizationIDWithPagination tests listing items due-date-ordered
func (suite *WorkItemRepositoryTestSuite) TestGetByOrganizationIDWithPagination() {
	org := suite.createOrganization()

	// Created out of order to prove the listing sorts by due date
	dueDates := []time.Time{
		time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, due := range dueDates {
		item := suite.factories.WorkItem.WithDueDate(org.ID, due)
		err := suite.repo.Create(item)
		suite.NoError(err)
	}

	// Test first page
	items, total, err := suite.repo.GetByOrganizationID(org.ID, 3, 0)
	suite.NoError(err)
	suite.Len(items, 3)
	suite.Equal(int64(5), total)
	suite.Equal("2025-06-01", items[0].DueDate.Format("2006-01-02"))
	suite.Equal("2025-06-12", items[2].DueDate.Format("2006-01-02"))

	// Test second page
	items, total, err = suite.repo.GetByOrganizationID(org.ID, 3, 3)
	suite.NoError(err)
	suite.Len(items, 2)
	suite.Equal(int64(5), total)
	suite.Equal("2025-06-30", items[1].DueDate.Format("2006-01-02"))
}

// TestListDueInRange tests the inclusive due-date window scan
func (suite *WorkItemRepositoryTestSuite) TestListDueInRange() {
	org := suite.createOrganization()
	otherOrg := suite.createOrganization()

	inside := suite.factories.WorkItem.WithDueDate(org.ID,
		time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(inside))

	// Due exactly on the window end day and must still surface
	onEdge := suite.factories.WorkItem.WithDueDate(org.ID,
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(onEdge))

	before := suite.factories.WorkItem.WithDueDate(org.ID,
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(before))

	after := suite.factories.WorkItem.WithDueDate(org.ID,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(after))

	// Another organization's item inside the window must not surface
	foreign := suite.factories.WorkItem.WithDueDate(otherOrg.ID,
		time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(foreign))

	items, err := suite.repo.ListDueInRange(org.ID,
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		nil)

	suite.NoError(err)
	suite.Len(items, 2)
	suite.Equal(inside.ID, items[0].ID)
	suite.Equal(onEdge.ID, items[1].ID)
}

// TestListDueInRangeAssigneeFilter tests narrowing the scan to assignees
func (suite *WorkItemRepositoryTestSuite) TestListDueInRangeAssigneeFilter() {
	org := suite.createOrganization()
	alice := suite.createWorker(org.ID)
	bob := suite.createWorker(org.ID)

	due := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	aliceItem := suite.factories.WorkItem.WithAssignee(org.ID, alice.ID)
	aliceItem.DueDate = due
	suite.NoError(suite.repo.Create(aliceItem))

	bobItem := suite.factories.WorkItem.WithAssignee(org.ID, bob.ID)
	bobItem.DueDate = due
	suite.NoError(suite.repo.Create(bobItem))

	// Unassigned items fall out when an assignee filter is present
	unassigned := suite.factories.WorkItem.WithDueDate(org.ID, due)
	suite.NoError(suite.repo.Create(unassigned))

	items, err := suite.repo.ListDueInRange(org.ID,
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		[]uuid.UUID{alice.ID})

	suite.NoError(err)
	suite.Len(items, 1)
	suite.Equal(aliceItem.ID, items[0].ID)
}

// TestUpdate tests updating a work item
func (suite *WorkItemRepositoryTestSuite) TestUpdate() {
	org := suite.createOrganization()

	item := suite.factories.WorkItem.WithOrganization(org.ID)
	err := suite.repo.Create(item)
	suite.NoError(err)

	item.Status = models.WorkItemStatusDone
	item.Priority = models.WorkItemPriorityHigh
	err = suite.repo.Update(item)
	suite.NoError(err)

	updatedItem, err := suite.repo.GetByID(item.ID)
	suite.NoError(err)
	suite.Equal(models.WorkItemStatusDone, updatedItem.Status)
	suite.Equal(models.WorkItemPriorityHigh, updatedItem.Priority)
}

// TestDelete tests deleting a work item
func (suite *WorkItemRepositoryTestSuite) TestDelete() {
	org := suite.createOrganization()

	item := suite.factories.WorkItem.WithOrganization(org.ID)
	err := suite.repo.Create(item)
	suite.NoError(err)

	err = suite.repo.Delete(item.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(item.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestWorkItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkItemRepositoryTestSuite))
}
