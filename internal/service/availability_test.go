package service_test

import (
	"context"
	"testing"
	"time"

	"dispatch-portal-backend/internal/config"
	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/mocks"
	"dispatch-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AvailabilityServiceTestSuite defines the test suite for AvailabilityService
type AvailabilityServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockFieldClient     *mocks.MockFieldServiceClientInterface
	mockWorkerRepo      *mocks.MockWorkerRepositoryInterface
	mockTeamRepo        *mocks.MockTeamRepositoryInterface
	mockLeaveRepo       *mocks.MockLeaveRequestRepositoryInterface
	mockHolidayRepo     *mocks.MockPublicHolidayRepositoryInterface
	mockBlockRepo       *mocks.MockCalendarBlockRepositoryInterface
	availabilityService *service.AvailabilityService

	orgID    uuid.UUID
	workerID uuid.UUID
	adminID  string
	worker   models.Worker
}

// SetupTest sets up the test suite
func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFieldClient = mocks.NewMockFieldServiceClientInterface(suite.ctrl)
	suite.mockWorkerRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockLeaveRepo = mocks.NewMockLeaveRequestRepositoryInterface(suite.ctrl)
	suite.mockHolidayRepo = mocks.NewMockPublicHolidayRepositoryInterface(suite.ctrl)
	suite.mockBlockRepo = mocks.NewMockCalendarBlockRepositoryInterface(suite.ctrl)

	cfg := &config.Config{
		WorkingHoursStart:        "09:00",
		WorkingHoursEnd:          "17:00",
		SlotIntervalMinutes:      30,
		MaxRuleOccurrences:       500,
		FieldServiceBaseURL:      "https://fieldservice.example.com",
		FieldServiceClientID:     "portal",
		FieldServiceClientSecret: "secret",
	}

	// A fixed clock keeps every candidate start strictly in the future
	nowFunc := func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	suite.availabilityService = service.NewAvailabilityServiceWithClock(cfg, suite.mockFieldClient,
		suite.mockWorkerRepo, suite.mockTeamRepo, suite.mockLeaveRepo, suite.mockHolidayRepo,
		suite.mockBlockRepo, nowFunc)

	suite.orgID = uuid.New()
	suite.workerID = uuid.New()
	suite.adminID = "100001"
	suite.worker = models.Worker{
		BaseModel:       models.BaseModel{ID: suite.workerID},
		OrganizationID:  suite.orgID,
		FirstName:       "Dana",
		LastName:        "Reyes",
		ExternalAdminID: &suite.adminID,
		IsActive:        true,
	}
}

// TearDownTest cleans up after each test
func (suite *AvailabilityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func slotLabelsByDay(slots []service.Slot) map[string][]string {
	byDay := make(map[string][]string)
	for _, slot := range slots {
		byDay[slot.Day] = append(byDay[slot.Day], slot.Label)
	}
	return byDay
}

// TestGenerateSlotsSkipsBusyInterval tests the step walk around one busy
// interval: a 09:00-10:30 meeting pushes the first one-hour candidate of a
// 09:00-17:00 day to 10:30
func (suite *AvailabilityServiceTestSuite) TestGenerateSlotsSkipsBusyInterval() {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	busy := []service.Interval{{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(10*time.Hour + 30*time.Minute),
	}}

	slots := service.GenerateSlots(day, day, 60, 0,
		service.WorkingHours{StartMinutes: 9 * 60, EndMinutes: 17 * 60}, 30, busy,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Len(suite.T(), slots, 12)
	labels := make([]string, len(slots))
	for i, slot := range slots {
		labels[i] = slot.Label
	}
	assert.NotContains(suite.T(), labels, "09:00")
	assert.NotContains(suite.T(), labels, "09:30")
	assert.NotContains(suite.T(), labels, "10:00")
	assert.Equal(suite.T(), "10:30", labels[0])
	assert.Equal(suite.T(), "16:00", labels[len(labels)-1])
}

// TestGenerateSlotsTravelBuffer tests that the booked span includes a travel
// buffer on both sides of the appointment
func (suite *AvailabilityServiceTestSuite) TestGenerateSlotsTravelBuffer() {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	busy := []service.Interval{{
		Start: day.Add(12 * time.Hour),
		End:   day.Add(13 * time.Hour),
	}}

	// 60 minutes of work plus 30 minutes travel each way books 120 minutes
	slots := service.GenerateSlots(day, day, 60, 30,
		service.WorkingHours{StartMinutes: 9 * 60, EndMinutes: 17 * 60}, 30, busy,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	labels := make([]string, len(slots))
	for i, slot := range slots {
		labels[i] = slot.Label
	}
	assert.Contains(suite.T(), labels, "10:00", "span ending as the busy interval starts is free")
	assert.Contains(suite.T(), labels, "13:00", "span starting as the busy interval ends is free")
	assert.NotContains(suite.T(), labels, "10:30")
	assert.NotContains(suite.T(), labels, "11:00")
	assert.NotContains(suite.T(), labels, "12:30")
	assert.Equal(suite.T(), "15:00", labels[len(labels)-1], "last span must still fit the working window")
}

// TestGenerateSlotsSkipsWeekends tests that Saturday and Sunday yield no
// candidates
func (suite *AvailabilityServiceTestSuite) TestGenerateSlotsSkipsWeekends() {
	rangeStart := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC) // Friday
	rangeEnd := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)   // Monday

	slots := service.GenerateSlots(rangeStart, rangeEnd, 60, 0,
		service.WorkingHours{StartMinutes: 9 * 60, EndMinutes: 17 * 60}, 30, nil,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	byDay := slotLabelsByDay(slots)
	assert.Len(suite.T(), byDay["2026-03-06"], 15)
	assert.Len(suite.T(), byDay["2026-03-09"], 15)
	assert.NotContains(suite.T(), byDay, "2026-03-07")
	assert.NotContains(suite.T(), byDay, "2026-03-08")
}

// TestGenerateSlotsStrictlyFuture tests that candidates at or before the
// current instant are dropped
func (suite *AvailabilityServiceTestSuite) TestGenerateSlotsStrictlyFuture() {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	now := day.Add(11 * time.Hour)

	slots := service.GenerateSlots(day, day, 60, 0,
		service.WorkingHours{StartMinutes: 9 * 60, EndMinutes: 17 * 60}, 30, nil, now)

	require.NotEmpty(suite.T(), slots)
	assert.Equal(suite.T(), "11:30", slots[0].Label, "a candidate exactly at now is not bookable")
	for _, slot := range slots {
		assert.True(suite.T(), slot.Start.After(now))
	}
}

// TestGenerateSlotsRejectsInvalidInputs tests the degenerate parameter cases
func (suite *AvailabilityServiceTestSuite) TestGenerateSlotsRejectsInvalidInputs() {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	hours := service.WorkingHours{StartMinutes: 9 * 60, EndMinutes: 17 * 60}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(suite.T(), service.GenerateSlots(day, day, 0, 0, hours, 30, nil, now))
	assert.Empty(suite.T(), service.GenerateSlots(day, day, -30, 0, hours, 30, nil, now))
	assert.Empty(suite.T(), service.GenerateSlots(day, day, 60, -10, hours, 30, nil, now))
}

// TestMergeTeamAvailability tests that per-member slots union into team
// slots annotated with the members free at each instant
func (suite *AvailabilityServiceTestSuite) TestMergeTeamAvailability() {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	nine := day.Add(9 * time.Hour)
	halfPast := day.Add(9*time.Hour + 30*time.Minute)
	ten := day.Add(10 * time.Hour)

	makeSlot := func(start time.Time) service.Slot {
		return service.Slot{Start: start, Day: start.Format("2006-01-02"), Label: start.Format("15:04")}
	}

	merged := service.MergeTeamAvailability(map[string][]service.Slot{
		"worker-a": {makeSlot(nine), makeSlot(halfPast)},
		"worker-b": {makeSlot(halfPast), makeSlot(ten)},
	})

	require.Len(suite.T(), merged, 3)
	assert.Equal(suite.T(), nine, merged[0].Start)
	assert.Equal(suite.T(), []string{"worker-a"}, merged[0].FreeWorkerIDs)
	assert.Equal(suite.T(), []string{"worker-a", "worker-b"}, merged[1].FreeWorkerIDs)
	assert.Equal(suite.T(), []string{"worker-b"}, merged[2].FreeWorkerIDs)
}

// TestForWorkerWithoutMappingStillGetsSlots tests that a worker with no
// platform mapping and no local commitments gets a full schedule instead of
// an error
func (suite *AvailabilityServiceTestSuite) TestForWorkerWithoutMappingStillGetsSlots() {
	unmapped := suite.worker
	unmapped.ExternalAdminID = nil

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	dayEndExclusive := day.Add(24 * time.Hour)
	workerIDs := []uuid.UUID{suite.workerID}

	suite.mockWorkerRepo.EXPECT().
		GetByID(suite.workerID).
		Return(&unmapped, nil).
		Times(1)

	// No ListTasks expectation: an unmapped worker never queries the platform
	suite.mockBlockRepo.EXPECT().
		ListInRange(workerIDs, day, dayEndExclusive).
		Return([]models.CalendarBlock{}, nil).
		Times(1)
	suite.mockLeaveRepo.EXPECT().
		ListApprovedInRange(workerIDs, day, day).
		Return([]models.LeaveRequest{}, nil).
		Times(1)
	suite.mockHolidayRepo.EXPECT().
		ListInRange(suite.orgID, day, day).
		Return([]models.PublicHoliday{}, nil).
		Times(1)

	slots, err := suite.availabilityService.ForWorker(context.Background(), suite.workerID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day, DurationMinutes: 60})

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), slots, 15)
	assert.Equal(suite.T(), "09:00", slots[0].Label)
	assert.Equal(suite.T(), "16:00", slots[len(slots)-1].Label)
}

// TestForWorkerCombinesBusySources tests a full week where platform tasks,
// blocks, approved leave and a public holiday each claim their share
func (suite *AvailabilityServiceTestSuite) TestForWorkerCombinesBusySources() {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	rangeEndExclusive := friday.Add(24 * time.Hour)
	workerIDs := []uuid.UUID{suite.workerID}

	suite.mockWorkerRepo.EXPECT().
		GetByID(suite.workerID).
		Return(&suite.worker, nil).
		Times(1)

	suite.mockFieldClient.EXPECT().
		ListTasks(gomock.Any(), service.FieldTaskFilters{AdminIDs: []string{suite.adminID}}).
		Return([]service.FieldTask{{
			ID:              "8842",
			Subject:         "Boiler inspection",
			ScheduledStart:  "2026-03-03T13:00:00Z",
			DurationMinutes: 60,
			AdminID:         suite.adminID,
		}}, nil).
		Times(1)

	suite.mockBlockRepo.EXPECT().
		ListInRange(workerIDs, monday, rangeEndExclusive).
		Return([]models.CalendarBlock{{
			BaseModel:          models.BaseModel{ID: uuid.New(), Title: "Weekly standup"},
			WorkerID:           suite.workerID,
			BlockType:          models.BlockTypeMeeting,
			StartTime:          time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			EndTime:            time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
			BlocksAvailability: true,
		}}, nil).
		Times(1)

	suite.mockLeaveRepo.EXPECT().
		ListApprovedInRange(workerIDs, monday, friday).
		Return([]models.LeaveRequest{{
			BaseModel: models.BaseModel{ID: uuid.New()},
			WorkerID:  suite.workerID,
			LeaveType: models.LeaveTypeVacation,
			StartDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			Status:    models.LeaveStatusApproved,
		}}, nil).
		Times(1)

	suite.mockHolidayRepo.EXPECT().
		ListInRange(suite.orgID, monday, friday).
		Return([]models.PublicHoliday{{
			BaseModel: models.BaseModel{ID: uuid.New(), Title: "Founders Day"},
			Date:      time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		}}, nil).
		Times(1)

	slots, err := suite.availabilityService.ForWorker(context.Background(), suite.workerID,
		service.AvailabilityParams{RangeStart: monday, RangeEnd: friday, DurationMinutes: 60})

	require.NoError(suite.T(), err)
	byDay := slotLabelsByDay(slots)

	// Monday opens after the standup
	assert.Len(suite.T(), byDay["2026-03-02"], 12)
	assert.Equal(suite.T(), "10:30", byDay["2026-03-02"][0])

	// Tuesday loses the span around the platform task
	assert.Len(suite.T(), byDay["2026-03-03"], 12)
	assert.NotContains(suite.T(), byDay["2026-03-03"], "12:30")
	assert.NotContains(suite.T(), byDay["2026-03-03"], "13:00")
	assert.NotContains(suite.T(), byDay["2026-03-03"], "13:30")
	assert.Contains(suite.T(), byDay["2026-03-03"], "12:00")
	assert.Contains(suite.T(), byDay["2026-03-03"], "14:00")

	// Wednesday is approved leave, Friday is a public holiday
	assert.NotContains(suite.T(), byDay, "2026-03-04")
	assert.NotContains(suite.T(), byDay, "2026-03-06")

	// Thursday is untouched
	assert.Len(suite.T(), byDay["2026-03-05"], 15)
}

// TestForWorkerNotFound tests the unknown worker case
func (suite *AvailabilityServiceTestSuite) TestForWorkerNotFound() {
	suite.mockWorkerRepo.EXPECT().
		GetByID(suite.workerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	slots, err := suite.availabilityService.ForWorker(context.Background(), suite.workerID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day, DurationMinutes: 60})

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerNotFound)
	assert.Nil(suite.T(), slots)
}

// TestForWorkerPlatformFailure tests that a platform outage fails the
// computation instead of silently returning slots that may be taken
func (suite *AvailabilityServiceTestSuite) TestForWorkerPlatformFailure() {
	suite.mockWorkerRepo.EXPECT().
		GetByID(suite.workerID).
		Return(&suite.worker, nil).
		Times(1)

	suite.mockFieldClient.EXPECT().
		ListTasks(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrFieldServiceAPIFailure).
		Times(1)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	slots, err := suite.availabilityService.ForWorker(context.Background(), suite.workerID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day, DurationMinutes: 60})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsSourceUnavailable(err))
	assert.Nil(suite.T(), slots)
}

// TestForWorkerValidation tests the parameter checks
func (suite *AvailabilityServiceTestSuite) TestForWorkerValidation() {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := suite.availabilityService.ForWorker(ctx, suite.workerID, service.AvailabilityParams{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrDateRangeRequired)

	_, err = suite.availabilityService.ForWorker(ctx, suite.workerID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day.Add(-24 * time.Hour), DurationMinutes: 60})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)

	_, err = suite.availabilityService.ForWorker(ctx, suite.workerID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day})
	assert.ErrorIs(suite.T(), err, apperrors.ErrDurationRequired)

	_, err = suite.availabilityService.ForWorker(ctx, suite.workerID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day, DurationMinutes: 60, TravelMinutes: -5})
	assert.Error(suite.T(), err)
}

// TestForTeamAnnotatesFreeMembers tests that when one member is booked out
// the merged slots name only the members actually free
func (suite *AvailabilityServiceTestSuite) TestForTeamAnnotatesFreeMembers() {
	teamID := uuid.New()
	busyID := uuid.New()
	freeID := uuid.New()
	memberIDs := []uuid.UUID{busyID, freeID}
	members := []models.Worker{
		{BaseModel: models.BaseModel{ID: busyID}, OrganizationID: suite.orgID, FirstName: "Ana", LastName: "Silva"},
		{BaseModel: models.BaseModel{ID: freeID}, OrganizationID: suite.orgID, FirstName: "Omar", LastName: "Haddad"},
	}
	team := &models.Team{
		BaseModel:      models.BaseModel{ID: teamID, Name: "north-crew", Title: "North Crew"},
		OrganizationID: suite.orgID,
	}

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	dayEndExclusive := day.Add(24 * time.Hour)

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetMemberWorkerIDs(teamID).Return(memberIDs, nil).Times(1)
	suite.mockWorkerRepo.EXPECT().GetByIDs(memberIDs).Return(members, nil).Times(1)

	suite.mockBlockRepo.EXPECT().
		ListInRange(memberIDs, day, dayEndExclusive).
		Return([]models.CalendarBlock{{
			BaseModel:          models.BaseModel{ID: uuid.New(), Title: "Offsite"},
			WorkerID:           busyID,
			BlockType:          models.BlockTypeTraining,
			StartTime:          day.Add(9 * time.Hour),
			EndTime:            day.Add(17 * time.Hour),
			BlocksAvailability: true,
		}}, nil).
		Times(1)
	suite.mockLeaveRepo.EXPECT().
		ListApprovedInRange(memberIDs, day, day).
		Return([]models.LeaveRequest{}, nil).
		Times(1)
	suite.mockHolidayRepo.EXPECT().
		ListInRange(suite.orgID, day, day).
		Return([]models.PublicHoliday{}, nil).
		Times(1)

	result, err := suite.availabilityService.ForTeam(context.Background(), teamID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day, DurationMinutes: 60})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), result)

	assert.Empty(suite.T(), result.PerMember[busyID.String()])
	assert.Len(suite.T(), result.PerMember[freeID.String()], 15)

	require.Len(suite.T(), result.Slots, 15)
	for _, slot := range result.Slots {
		assert.Equal(suite.T(), []string{freeID.String()}, slot.FreeWorkerIDs,
			"slots the busy member cannot take list only the free member")
	}
}

// TestForTeamSingleMemberMatchesIndividual tests that a one-member team
// reports exactly the member's individual availability
func (suite *AvailabilityServiceTestSuite) TestForTeamSingleMemberMatchesIndividual() {
	teamID := uuid.New()
	memberIDs := []uuid.UUID{suite.workerID}
	unmapped := suite.worker
	unmapped.ExternalAdminID = nil
	team := &models.Team{
		BaseModel:      models.BaseModel{ID: teamID, Name: "solo-crew", Title: "Solo Crew"},
		OrganizationID: suite.orgID,
	}

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	dayEndExclusive := day.Add(24 * time.Hour)
	params := service.AvailabilityParams{RangeStart: day, RangeEnd: day, DurationMinutes: 60}

	blocks := []models.CalendarBlock{{
		BaseModel:          models.BaseModel{ID: uuid.New(), Title: "Weekly standup"},
		WorkerID:           suite.workerID,
		BlockType:          models.BlockTypeMeeting,
		StartTime:          day.Add(9 * time.Hour),
		EndTime:            day.Add(10*time.Hour + 30*time.Minute),
		BlocksAvailability: true,
	}}

	suite.mockWorkerRepo.EXPECT().GetByID(suite.workerID).Return(&unmapped, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetMemberWorkerIDs(teamID).Return(memberIDs, nil).Times(1)
	suite.mockWorkerRepo.EXPECT().GetByIDs(memberIDs).Return([]models.Worker{unmapped}, nil).Times(1)

	suite.mockBlockRepo.EXPECT().
		ListInRange(memberIDs, day, dayEndExclusive).
		Return(blocks, nil).
		Times(2)
	suite.mockLeaveRepo.EXPECT().
		ListApprovedInRange(memberIDs, day, day).
		Return([]models.LeaveRequest{}, nil).
		Times(2)
	suite.mockHolidayRepo.EXPECT().
		ListInRange(suite.orgID, day, day).
		Return([]models.PublicHoliday{}, nil).
		Times(2)

	individual, err := suite.availabilityService.ForWorker(context.Background(), suite.workerID, params)
	require.NoError(suite.T(), err)

	asTeam, err := suite.availabilityService.ForTeam(context.Background(), teamID, params)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), individual, asTeam.PerMember[suite.workerID.String()])

	require.Len(suite.T(), asTeam.Slots, len(individual))
	for i, slot := range asTeam.Slots {
		assert.Equal(suite.T(), individual[i].Start, slot.Start)
		assert.Equal(suite.T(), []string{suite.workerID.String()}, slot.FreeWorkerIDs)
	}
}

// TestForTeamNoMembers tests that an empty team cannot be scheduled
func (suite *AvailabilityServiceTestSuite) TestForTeamNoMembers() {
	teamID := uuid.New()
	team := &models.Team{
		BaseModel:      models.BaseModel{ID: teamID, Name: "ghost-crew", Title: "Ghost Crew"},
		OrganizationID: suite.orgID,
	}

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetMemberWorkerIDs(teamID).Return([]uuid.UUID{}, nil).Times(1)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	result, err := suite.availabilityService.ForTeam(context.Background(), teamID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day, DurationMinutes: 60})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoMembersInTeam)
	assert.Nil(suite.T(), result)
}

// TestForTeamNotFound tests the unknown team case
func (suite *AvailabilityServiceTestSuite) TestForTeamNotFound() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	result, err := suite.availabilityService.ForTeam(context.Background(), teamID,
		service.AvailabilityParams{RangeStart: day, RangeEnd: day, DurationMinutes: 60})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
	assert.Nil(suite.T(), result)
}

// TestAvailabilityServiceTestSuite runs the test suite
func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
