package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/mocks"
	"dispatch-portal-backend/internal/service"
	"dispatch-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTeamService *mocks.MockTeamServiceInterface
	handler         *TeamHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewTeamHandler(suite.mockTeamService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	teams := v1.Group("/teams")
	{
		teams.GET("/", suite.handler.ListTeams)
		teams.POST("/", suite.handler.CreateTeam)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.GET("/:id/full", suite.handler.GetTeamWithMembers)
		teams.GET("/:id/members", suite.handler.ListMembers)
		teams.POST("/:id/members", suite.handler.AddMember)
		teams.DELETE("/:id/members/:workerId", suite.handler.RemoveMember)
		teams.GET("/by-name/:name", suite.handler.GetTeamByName)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests creating a team
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	orgID := uuid.New()
	teamID := uuid.New()
	requestBody := map[string]interface{}{
		"organization_id": orgID.String(),
		"name":            "night-shift",
		"title":           "Night Shift Crew",
	}

	expectedResponse := &service.TeamResponse{
		ID:             teamID,
		OrganizationID: orgID,
		Name:           "night-shift",
		Title:          "Night Shift Crew",
	}

	suite.mockTeamService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.TeamResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
	assert.Equal(suite.T(), expectedResponse.OrganizationID, response.OrganizationID)
}

// TestCreateTeamOrganizationNotFound tests creating a team under a missing organization
func (suite *TeamHandlerTestSuite) TestCreateTeamOrganizationNotFound() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New().String(),
		"name":            "night-shift",
		"title":           "Night Shift Crew",
	}

	suite.mockTeamService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/", requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestCreateTeamConflict tests creating a team with a duplicate name
func (suite *TeamHandlerTestSuite) TestCreateTeamConflict() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New().String(),
		"name":            "night-shift",
		"title":           "Night Shift Crew",
	}

	suite.mockTeamService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrTeamExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/", requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestGetTeam tests getting a team by ID
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	teamID := uuid.New()
	expectedResponse := &service.TeamResponse{
		ID:    teamID,
		Name:  "night-shift",
		Title: "Night Shift Crew",
	}

	suite.mockTeamService.EXPECT().
		GetByID(teamID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.TeamResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.ID, response.ID)
}

// TestGetTeamInvalidID tests getting a team with an invalid ID
func (suite *TeamHandlerTestSuite) TestGetTeamInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
}

// TestGetTeamNotFound tests getting a non-existent team
func (suite *TeamHandlerTestSuite) TestGetTeamNotFound() {
	teamID := uuid.New()

	suite.mockTeamService.EXPECT().
		GetByID(teamID).
		Return(nil, apperrors.ErrTeamNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

// TestGetTeamByName tests getting a team by name within an organization
func (suite *TeamHandlerTestSuite) TestGetTeamByName() {
	orgID := uuid.New()
	expectedResponse := &service.TeamResponse{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           "night-shift",
	}

	suite.mockTeamService.EXPECT().
		GetByName(orgID, "night-shift").
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/teams/by-name/night-shift?organization_id=%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.TeamResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "night-shift", response.Name)
}

// TestGetTeamByNameMissingOrganization tests the by-name lookup without an organization ID
func (suite *TeamHandlerTestSuite) TestGetTeamByNameMissingOrganization() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/by-name/night-shift", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "organization_id parameter is required")
}

// TestListTeams tests listing teams for an organization
func (suite *TeamHandlerTestSuite) TestListTeams() {
	orgID := uuid.New()
	expectedResponse := &service.TeamListResponse{
		Teams: []service.TeamResponse{
			{ID: uuid.New(), OrganizationID: orgID, Name: "night-shift"},
			{ID: uuid.New(), OrganizationID: orgID, Name: "day-shift"},
		},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}

	suite.mockTeamService.EXPECT().
		GetByOrganization(orgID, 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/teams/?organization_id=%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.TeamListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Len(suite.T(), response.Teams, 2)
}

// TestListTeamsWithPagination tests listing teams with explicit pagination
func (suite *TeamHandlerTestSuite) TestListTeamsWithPagination() {
	orgID := uuid.New()
	expectedResponse := &service.TeamListResponse{
		Teams:    []service.TeamResponse{{ID: uuid.New(), OrganizationID: orgID, Name: "day-shift"}},
		Total:    3,
		Page:     2,
		PageSize: 1,
	}

	suite.mockTeamService.EXPECT().
		GetByOrganization(orgID, 2, 1).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/teams/?organization_id=%s&page=2&page_size=1", orgID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.TeamListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 2, response.Page)
}

// TestListTeamsMissingOrganization tests listing without an organization ID
func (suite *TeamHandlerTestSuite) TestListTeamsMissingOrganization() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "organization_id parameter is required")
}

// TestUpdateTeam tests updating a team
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	teamID := uuid.New()
	requestBody := map[string]interface{}{
		"title": "Night Shift Crew North",
	}

	expectedResponse := &service.TeamResponse{
		ID:    teamID,
		Name:  "night-shift",
		Title: "Night Shift Crew North",
	}

	suite.mockTeamService.EXPECT().
		Update(teamID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s", teamID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.TeamResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Night Shift Crew North", response.Title)
}

// TestDeleteTeam tests deleting a team
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	teamID := uuid.New()

	suite.mockTeamService.EXPECT().
		Delete(teamID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteTeamNotFound tests deleting a non-existent team
func (suite *TeamHandlerTestSuite) TestDeleteTeamNotFound() {
	teamID := uuid.New()

	suite.mockTeamService.EXPECT().
		Delete(teamID).
		Return(apperrors.ErrTeamNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

// TestGetTeamWithMembers tests the full team view with memberships preloaded
func (suite *TeamHandlerTestSuite) TestGetTeamWithMembers() {
	teamID := uuid.New()
	team := &models.Team{
		OrganizationID: uuid.New(),
	}
	team.ID = teamID
	team.Name = "night-shift"
	team.Title = "Night Shift Crew"
	team.Memberships = []models.TeamMembership{
		{TeamID: teamID, WorkerID: uuid.New(), Role: models.TeamRoleLead},
	}

	suite.mockTeamService.EXPECT().
		GetWithMembers(teamID).
		Return(team, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/full", teamID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "night-shift", response["name"])
	assert.Len(suite.T(), response["memberships"], 1)
}

// TestListMembers tests listing team members
func (suite *TeamHandlerTestSuite) TestListMembers() {
	teamID := uuid.New()
	members := []service.TeamMemberResponse{
		{WorkerID: uuid.New(), FullName: "Dana Reyes", Email: "dana.reyes@example.com", Role: "lead", IsActive: true},
		{WorkerID: uuid.New(), FullName: "Omar Haddad", Email: "omar.haddad@example.com", Role: "technician", IsActive: true},
	}

	suite.mockTeamService.EXPECT().
		ListMembers(teamID).
		Return(members, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/members", teamID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(2), response["total"])
	assert.Len(suite.T(), response["members"], 2)
}

// TestAddMember tests adding a worker to a team
func (suite *TeamHandlerTestSuite) TestAddMember() {
	teamID := uuid.New()
	workerID := uuid.New()
	requestBody := map[string]interface{}{
		"worker_id": workerID.String(),
		"role":      "dispatcher",
	}

	expectedResponse := &service.TeamMemberResponse{
		WorkerID: workerID,
		FullName: "Dana Reyes",
		Role:     "dispatcher",
		IsActive: true,
	}

	suite.mockTeamService.EXPECT().
		AddMember(teamID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/members", teamID), requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.TeamMemberResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), workerID, response.WorkerID)
	assert.Equal(suite.T(), "dispatcher", response.Role)
}

// TestAddMemberConflict tests adding a worker who is already a member
func (suite *TeamHandlerTestSuite) TestAddMemberConflict() {
	teamID := uuid.New()
	requestBody := map[string]interface{}{
		"worker_id": uuid.New().String(),
	}

	suite.mockTeamService.EXPECT().
		AddMember(teamID, gomock.Any()).
		Return(nil, apperrors.ErrTeamMembershipExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/members", teamID), requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "team membership already exists")
}

// TestAddMemberWorkerNotFound tests adding a non-existent worker
func (suite *TeamHandlerTestSuite) TestAddMemberWorkerNotFound() {
	teamID := uuid.New()
	requestBody := map[string]interface{}{
		"worker_id": uuid.New().String(),
	}

	suite.mockTeamService.EXPECT().
		AddMember(teamID, gomock.Any()).
		Return(nil, apperrors.ErrWorkerNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/members", teamID), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "worker not found")
}

// TestRemoveMember tests removing a worker from a team
func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	teamID := uuid.New()
	workerID := uuid.New()

	suite.mockTeamService.EXPECT().
		RemoveMember(teamID, workerID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		fmt.Sprintf("/api/v1/teams/%s/members/%s", teamID, workerID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestRemoveMemberNotFound tests removing a worker who is not a member
func (suite *TeamHandlerTestSuite) TestRemoveMemberNotFound() {
	teamID := uuid.New()
	workerID := uuid.New()

	suite.mockTeamService.EXPECT().
		RemoveMember(teamID, workerID).
		Return(apperrors.ErrTeamMembershipNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		fmt.Sprintf("/api/v1/teams/%s/members/%s", teamID, workerID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team membership not found")
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
