package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/mocks"
	"dispatch-portal-backend/internal/service"
	"dispatch-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkItemHandlerTestSuite defines the test suite for WorkItemHandler
type WorkItemHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockWorkItemService *mocks.MockWorkItemServiceInterface
	handler             *WorkItemHandler
	httpSuite           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *WorkItemHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkItemService = mocks.NewMockWorkItemServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewWorkItemHandler(suite.mockWorkItemService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	items := v1.Group("/work-items")
	{
		items.GET("/", suite.handler.ListWorkItems)
		items.POST("/", suite.handler.CreateWorkItem)
		items.GET("/:id", suite.handler.GetWorkItem)
		items.PUT("/:id", suite.handler.UpdateWorkItem)
		items.DELETE("/:id", suite.handler.DeleteWorkItem)
	}
}

// TearDownTest cleans up after each test
func (suite *WorkItemHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateWorkItem tests creating a work item
func (suite *WorkItemHandlerTestSuite) TestCreateWorkItem() {
	orgID := uuid.New()
	itemID := uuid.New()
	requestBody := map[string]interface{}{
		"organization_id": orgID.String(),
		"title":           "Replace transformer fuse",
		"due_date":        "2026-03-06T00:00:00Z",
	}

	expectedResponse := &service.WorkItemResponse{
		ID:             itemID,
		OrganizationID: orgID,
		Title:          "Replace transformer fuse",
		DueDate:        "2026-03-06",
		Status:         "open",
		Priority:       "medium",
	}

	suite.mockWorkItemService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/work-items/", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.WorkItemResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "open", response.Status)
	assert.Equal(suite.T(), "medium", response.Priority)
}

// TestCreateWorkItemAssigneeNotFound tests creating a work item with a missing assignee
func (suite *WorkItemHandlerTestSuite) TestCreateWorkItemAssigneeNotFound() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New().String(),
		"title":           "Replace transformer fuse",
		"assignee_id":     uuid.New().String(),
		"due_date":        "2026-03-06T00:00:00Z",
	}

	suite.mockWorkItemService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrWorkerNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/work-items/", requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "worker not found")
}

// TestCreateWorkItemCrossOrganizationAssignee tests assigning a worker from another organization
func (suite *WorkItemHandlerTestSuite) TestCreateWorkItemCrossOrganizationAssignee() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New().String(),
		"title":           "Replace transformer fuse",
		"assignee_id":     uuid.New().String(),
		"due_date":        "2026-03-06T00:00:00Z",
	}

	suite.mockWorkItemService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("assignee_id", "must belong to the same organization")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/work-items/", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "must belong to the same organization")
}

// TestGetWorkItem tests getting a work item by ID
func (suite *WorkItemHandlerTestSuite) TestGetWorkItem() {
	itemID := uuid.New()
	expectedResponse := &service.WorkItemResponse{
		ID:       itemID,
		Title:    "Replace transformer fuse",
		Status:   "in_progress",
		Priority: "high",
	}

	suite.mockWorkItemService.EXPECT().
		GetByID(itemID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/work-items/%s", itemID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.WorkItemResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), itemID, response.ID)
	assert.Equal(suite.T(), "in_progress", response.Status)
}

// TestGetWorkItemInvalidID tests getting a work item with an invalid ID
func (suite *WorkItemHandlerTestSuite) TestGetWorkItemInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/work-items/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid work item ID")
}

// TestGetWorkItemNotFound tests getting a non-existent work item
func (suite *WorkItemHandlerTestSuite) TestGetWorkItemNotFound() {
	itemID := uuid.New()

	suite.mockWorkItemService.EXPECT().
		GetByID(itemID).
		Return(nil, apperrors.ErrWorkItemNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/work-items/%s", itemID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "work item not found")
}

// TestListWorkItems tests listing work items for an organization
func (suite *WorkItemHandlerTestSuite) TestListWorkItems() {
	orgID := uuid.New()
	expectedResponse := &service.WorkItemListResponse{
		WorkItems: []service.WorkItemResponse{
			{ID: uuid.New(), OrganizationID: orgID, Title: "Replace transformer fuse", Status: "open"},
			{ID: uuid.New(), OrganizationID: orgID, Title: "Calibrate meter bank", Status: "done"},
		},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}

	suite.mockWorkItemService.EXPECT().
		GetByOrganization(orgID, 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/work-items/?organization_id=%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.WorkItemListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Len(suite.T(), response.WorkItems, 2)
}

// TestListWorkItemsMissingOrganization tests listing without an organization ID
func (suite *WorkItemHandlerTestSuite) TestListWorkItemsMissingOrganization() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/work-items/", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "organization_id parameter is required")
}

// TestUpdateWorkItem tests updating a work item
func (suite *WorkItemHandlerTestSuite) TestUpdateWorkItem() {
	itemID := uuid.New()
	assigneeID := uuid.New()
	requestBody := map[string]interface{}{
		"assignee_id": assigneeID.String(),
		"status":      "done",
	}

	expectedResponse := &service.WorkItemResponse{
		ID:         itemID,
		Title:      "Replace transformer fuse",
		AssigneeID: &assigneeID,
		Status:     "done",
	}

	suite.mockWorkItemService.EXPECT().
		Update(itemID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/work-items/%s", itemID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.WorkItemResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "done", response.Status)
}

// TestUpdateWorkItemNotFound tests updating a non-existent work item
func (suite *WorkItemHandlerTestSuite) TestUpdateWorkItemNotFound() {
	itemID := uuid.New()
	requestBody := map[string]interface{}{
		"status": "done",
	}

	suite.mockWorkItemService.EXPECT().
		Update(itemID, gomock.Any()).
		Return(nil, apperrors.ErrWorkItemNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/work-items/%s", itemID), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "work item not found")
}

// TestDeleteWorkItem tests deleting a work item
func (suite *WorkItemHandlerTestSuite) TestDeleteWorkItem() {
	itemID := uuid.New()

	suite.mockWorkItemService.EXPECT().
		Delete(itemID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/work-items/%s", itemID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteWorkItemNotFound tests deleting a non-existent work item
func (suite *WorkItemHandlerTestSuite) TestDeleteWorkItemNotFound() {
	itemID := uuid.New()

	suite.mockWorkItemService.EXPECT().
		Delete(itemID).
		Return(apperrors.ErrWorkItemNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/work-items/%s", itemID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "work item not found")
}

// TestWorkItemHandlerTestSuite runs the test suite
func TestWorkItemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkItemHandlerTestSuite))
}
