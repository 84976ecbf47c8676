package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/mocks"
	"dispatch-portal-backend/internal/service"
	"dispatch-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AvailabilityHandlerTestSuite defines the test suite for AvailabilityHandler
type AvailabilityHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockAvailabilityService *mocks.MockAvailabilityServiceInterface
	handler                 *AvailabilityHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AvailabilityHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAvailabilityService = mocks.NewMockAvailabilityServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewAvailabilityHandler(suite.mockAvailabilityService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	availability := v1.Group("/availability")
	{
		availability.GET("/workers/:id", suite.handler.GetWorkerAvailability)
		availability.GET("/teams/:id", suite.handler.GetTeamAvailability)
	}
}

// TearDownTest cleans up after each test
func (suite *AvailabilityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetWorkerAvailability tests computing free slots for a worker
func (suite *AvailabilityHandlerTestSuite) TestGetWorkerAvailability() {
	workerID := uuid.New()
	slots := []service.Slot{
		{Start: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), Day: "2026-03-02", Label: "09:00"},
		{Start: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), Day: "2026-03-02", Label: "09:30"},
	}

	suite.mockAvailabilityService.EXPECT().
		ForWorker(gomock.Any(), workerID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, params service.AvailabilityParams) ([]service.Slot, error) {
			assert.Equal(suite.T(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), params.RangeStart)
			assert.Equal(suite.T(), time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), params.RangeEnd)
			assert.Equal(suite.T(), 60, params.DurationMinutes)
			assert.Equal(suite.T(), 15, params.TravelMinutes)
			return slots, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/workers/%s?start_date=2026-03-02&end_date=2026-03-06&duration=60&travel=15", workerID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), workerID.String(), response["worker_id"])
	assert.Len(suite.T(), response["slots"], 2)
}

// TestGetWorkerAvailabilityInvalidID tests an unparsable worker ID
func (suite *AvailabilityHandlerTestSuite) TestGetWorkerAvailabilityInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET",
		"/api/v1/availability/workers/not-a-uuid?start_date=2026-03-02&end_date=2026-03-06&duration=60", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid worker ID")
}

// TestGetWorkerAvailabilityMissingDuration tests a missing duration parameter
func (suite *AvailabilityHandlerTestSuite) TestGetWorkerAvailabilityMissingDuration() {
	workerID := uuid.New()

	suite.mockAvailabilityService.EXPECT().
		ForWorker(gomock.Any(), workerID, gomock.Any()).
		Return(nil, apperrors.ErrDurationRequired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/workers/%s?start_date=2026-03-02&end_date=2026-03-06", workerID), nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "duration is required")
}

// TestGetWorkerAvailabilityWorkerNotFound tests a missing worker
func (suite *AvailabilityHandlerTestSuite) TestGetWorkerAvailabilityWorkerNotFound() {
	workerID := uuid.New()

	suite.mockAvailabilityService.EXPECT().
		ForWorker(gomock.Any(), workerID, gomock.Any()).
		Return(nil, apperrors.ErrWorkerNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/workers/%s?start_date=2026-03-02&end_date=2026-03-06&duration=60", workerID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "worker not found")
}

// TestGetWorkerAvailabilitySourceUnavailable tests a busy source fetch failure
func (suite *AvailabilityHandlerTestSuite) TestGetWorkerAvailabilitySourceUnavailable() {
	workerID := uuid.New()

	suite.mockAvailabilityService.EXPECT().
		ForWorker(gomock.Any(), workerID, gomock.Any()).
		Return(nil, apperrors.NewSourceUnavailableError("external_task", errors.New("connection refused"))).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/workers/%s?start_date=2026-03-02&end_date=2026-03-06&duration=60", workerID), nil)

	assert.Equal(suite.T(), http.StatusBadGateway, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadGateway, "source external_task unavailable")
}

// TestGetTeamAvailability tests computing merged free slots for a team
func (suite *AvailabilityHandlerTestSuite) TestGetTeamAvailability() {
	teamID := uuid.New()
	memberA := uuid.New().String()
	memberB := uuid.New().String()
	availability := &service.TeamAvailability{
		Slots: []service.Slot{
			{
				Start:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				Day:           "2026-03-02",
				Label:         "09:00",
				FreeWorkerIDs: []string{memberA, memberB},
			},
		},
		PerMember: map[string][]service.Slot{
			memberA: {{Start: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), Day: "2026-03-02", Label: "09:00"}},
			memberB: {{Start: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), Day: "2026-03-02", Label: "09:00"}},
		},
	}

	suite.mockAvailabilityService.EXPECT().
		ForTeam(gomock.Any(), teamID, gomock.Any()).
		Return(availability, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/teams/%s?start_date=2026-03-02&end_date=2026-03-06&duration=60", teamID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.TeamAvailability
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Slots, 1)
	assert.Len(suite.T(), response.Slots[0].FreeWorkerIDs, 2)
	assert.Len(suite.T(), response.PerMember, 2)
}

// TestGetTeamAvailabilityTeamNotFound tests a missing team
func (suite *AvailabilityHandlerTestSuite) TestGetTeamAvailabilityTeamNotFound() {
	teamID := uuid.New()

	suite.mockAvailabilityService.EXPECT().
		ForTeam(gomock.Any(), teamID, gomock.Any()).
		Return(nil, apperrors.ErrTeamNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/teams/%s?start_date=2026-03-02&end_date=2026-03-06&duration=60", teamID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

// TestGetTeamAvailabilityNoMembers tests a team with no members
func (suite *AvailabilityHandlerTestSuite) TestGetTeamAvailabilityNoMembers() {
	teamID := uuid.New()

	suite.mockAvailabilityService.EXPECT().
		ForTeam(gomock.Any(), teamID, gomock.Any()).
		Return(nil, apperrors.ErrNoMembersInTeam).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/teams/%s?start_date=2026-03-02&end_date=2026-03-06&duration=60", teamID), nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "team has no members")
}

// TestGetTeamAvailabilityMissingDates tests the availability query without a date range
func (suite *AvailabilityHandlerTestSuite) TestGetTeamAvailabilityMissingDates() {
	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/teams/%s?duration=60", uuid.New()), nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "start_date and end_date are required")
}

// TestGetTeamAvailabilityServiceError tests an unexpected availability failure
func (suite *AvailabilityHandlerTestSuite) TestGetTeamAvailabilityServiceError() {
	teamID := uuid.New()

	suite.mockAvailabilityService.EXPECT().
		ForTeam(gomock.Any(), teamID, gomock.Any()).
		Return(nil, errors.New("database connection lost")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/availability/teams/%s?start_date=2026-03-02&end_date=2026-03-06&duration=60", teamID), nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to compute availability")
}

// TestAvailabilityHandlerTestSuite runs the test suite
func TestAvailabilityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}
