package service

import (
	"testing"
	"time"

	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventID_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		source EventSource
		raw    string
	}{
		{name: "ExternalTask", source: EventSourceExternalTask, raw: "8842"},
		{name: "WorkItem", source: EventSourceWorkItem, raw: uuid.New().String()},
		{name: "Leave", source: EventSourceLeave, raw: uuid.New().String()},
		{name: "PublicHoliday", source: EventSourcePublicHoliday, raw: uuid.New().String()},
		{name: "Block", source: EventSourceBlock, raw: uuid.New().String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := EventID(tt.source, tt.raw)
			source, ok := EventSourceFromID(id)
			assert.True(t, ok)
			assert.Equal(t, tt.source, source)
		})
	}
}

func TestEventSourceFromID_OccurrenceSuffix(t *testing.T) {
	// Recurring block occurrences carry a numeric suffix after the row ID
	id := EventID(EventSourceBlock, uuid.New().String()) + "-3"
	source, ok := EventSourceFromID(id)
	assert.True(t, ok)
	assert.Equal(t, EventSourceBlock, source)
}

func TestEventSourceFromID_Unknown(t *testing.T) {
	_, ok := EventSourceFromID("mystery-123")
	assert.False(t, ok)

	_, ok = EventSourceFromID("noprefix")
	assert.False(t, ok)
}

func TestParseEventSource(t *testing.T) {
	source, ok := ParseEventSource(" Leave ")
	assert.True(t, ok)
	assert.Equal(t, EventSourceLeave, source)

	_, ok = ParseEventSource("bogus")
	assert.False(t, ok)

	_, ok = ParseEventSource("")
	assert.False(t, ok)
}

func TestNormalizeFieldTask_MappedWorker(t *testing.T) {
	worker := &models.Worker{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirstName: "Dana",
		LastName:  "Reyes",
	}
	task := FieldTask{
		ID:              "8842",
		Subject:         "Boiler inspection",
		ScheduledStart:  "2026-03-02T09:00:00Z",
		DurationMinutes: 90,
		Status:          "scheduled",
		AdminID:         "100001",
		AdminName:       "D. Reyes (platform)",
		TeamID:          "t-7",
		Address:         "12 Canal St",
	}

	event, err := NormalizeFieldTask(task, map[string]*models.Worker{"100001": worker})
	require.NoError(t, err)

	assert.Equal(t, "task-8842", event.ID)
	assert.Equal(t, EventSourceExternalTask, event.Source)
	assert.Equal(t, "Boiler inspection", event.Title)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), event.Start)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC), event.End)
	assert.False(t, event.AllDay)
	assert.True(t, event.BlocksAvailability)
	require.NotNil(t, event.WorkerID)
	assert.Equal(t, worker.ID, *event.WorkerID)
	assert.Equal(t, "Dana Reyes", event.WorkerName)
	assert.Equal(t, "t-7", event.Details["team_id"])
	assert.Equal(t, "12 Canal St", event.Details["address"])
}

func TestNormalizeFieldTask_UnmappedAdminKeepsPlatformName(t *testing.T) {
	task := FieldTask{
		ID:             "9001",
		Subject:        "Meter swap",
		ScheduledStart: "2026-03-02T13:00:00Z",
		AdminID:        "999999",
		AdminName:      "External Tech",
	}

	event, err := NormalizeFieldTask(task, map[string]*models.Worker{})
	require.NoError(t, err)

	assert.Nil(t, event.WorkerID)
	assert.Equal(t, "External Tech", event.WorkerName)
}

func TestNormalizeFieldTask_Defaults(t *testing.T) {
	task := FieldTask{
		ID:             "77",
		ScheduledStart: "2026-03-02T13:00:00Z",
	}

	event, err := NormalizeFieldTask(task, nil)
	require.NoError(t, err)

	assert.Equal(t, "Field task", event.Title)
	assert.Equal(t, 60*time.Minute, event.End.Sub(event.Start))
	assert.Equal(t, defaultTaskDurationMinutes, event.Details["duration_minutes"])
}

func TestNormalizeFieldTask_Malformed(t *testing.T) {
	tests := []struct {
		name string
		task FieldTask
	}{
		{name: "MissingID", task: FieldTask{ScheduledStart: "2026-03-02T09:00:00Z"}},
		{name: "UnparseableStart", task: FieldTask{ID: "1", ScheduledStart: "yesterday-ish"}},
		{name: "EmptyStart", task: FieldTask{ID: "2"}},
		{name: "NegativeDuration", task: FieldTask{ID: "3", ScheduledStart: "2026-03-02T09:00:00Z", DurationMinutes: -15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeFieldTask(tt.task, nil)
			assert.Error(t, err)
			assert.True(t, apperrors.IsMalformedRecord(err))
		})
	}
}

func TestNormalizeWorkItem(t *testing.T) {
	assigneeID := uuid.New()
	assignee := &models.Worker{
		BaseModel: models.BaseModel{ID: assigneeID},
		FirstName: "Ana",
		LastName:  "Silva",
	}
	item := &models.WorkItem{
		BaseModel: models.BaseModel{
			ID:    uuid.New(),
			Title: "Replace stock valves",
		},
		AssigneeID: &assigneeID,
		DueDate:    time.Date(2026, 3, 5, 14, 45, 0, 0, time.UTC),
		Status:     models.WorkItemStatusOpen,
		Priority:   models.WorkItemPriorityHigh,
	}

	event, err := NormalizeWorkItem(item, assignee)
	require.NoError(t, err)

	assert.Equal(t, EventSourceWorkItem, event.Source)
	assert.True(t, event.AllDay)
	assert.False(t, event.BlocksAvailability, "work items never block availability")
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), event.Start)
	assert.Equal(t, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), event.End)
	assert.Equal(t, "Ana Silva", event.WorkerName)
	assert.Equal(t, "high", event.Details["priority"])
}

func TestNormalizeWorkItem_MissingDueDate(t *testing.T) {
	item := &models.WorkItem{BaseModel: models.BaseModel{ID: uuid.New(), Title: "No date"}}

	_, err := NormalizeWorkItem(item, nil)
	assert.Error(t, err)
	assert.True(t, apperrors.IsMalformedRecord(err))
}

func TestNormalizeLeaveRequest(t *testing.T) {
	workerID := uuid.New()
	worker := &models.Worker{
		BaseModel: models.BaseModel{ID: workerID},
		FirstName: "Omar",
		LastName:  "Haddad",
	}
	request := &models.LeaveRequest{
		BaseModel: models.BaseModel{ID: uuid.New()},
		WorkerID:  workerID,
		LeaveType: models.LeaveTypeVacation,
		StartDate: time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		Status:    models.LeaveStatusApproved,
	}

	event, err := NormalizeLeaveRequest(request, worker)
	require.NoError(t, err)

	assert.Equal(t, "Omar Haddad - vacation leave", event.Title)
	assert.True(t, event.AllDay)
	assert.True(t, event.BlocksAvailability)
	assert.Equal(t, time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC), event.Start)
	// End is exclusive at the midnight after the last day off
	assert.Equal(t, time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC), event.End)
}

func TestNormalizeLeaveRequest_PendingDoesNotBlock(t *testing.T) {
	request := &models.LeaveRequest{
		BaseModel: models.BaseModel{ID: uuid.New()},
		WorkerID:  uuid.New(),
		LeaveType: models.LeaveTypeSick,
		StartDate: time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC),
		Status:    models.LeaveStatusPending,
	}

	event, err := NormalizeLeaveRequest(request, nil)
	require.NoError(t, err)

	assert.False(t, event.BlocksAvailability)
	assert.Equal(t, "Worker - sick leave", event.Title)
}

func TestNormalizeLeaveRequest_EndBeforeStart(t *testing.T) {
	request := &models.LeaveRequest{
		BaseModel: models.BaseModel{ID: uuid.New()},
		WorkerID:  uuid.New(),
		StartDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC),
	}

	_, err := NormalizeLeaveRequest(request, nil)
	assert.Error(t, err)
	assert.True(t, apperrors.IsMalformedRecord(err))
}

func TestNormalizePublicHoliday(t *testing.T) {
	region := "EMEA"
	holiday := &models.PublicHoliday{
		BaseModel: models.BaseModel{ID: uuid.New(), Title: "May Day"},
		Date:      time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Region:    &region,
	}

	event, err := NormalizePublicHoliday(holiday)
	require.NoError(t, err)

	assert.Equal(t, "May Day", event.Title)
	assert.True(t, event.AllDay)
	assert.True(t, event.BlocksAvailability)
	assert.Nil(t, event.WorkerID, "holidays have no owner")
	assert.Equal(t, "EMEA", event.Details["region"])
}

func TestNormalizePublicHoliday_MissingDate(t *testing.T) {
	holiday := &models.PublicHoliday{BaseModel: models.BaseModel{ID: uuid.New(), Title: "Broken"}}

	_, err := NormalizePublicHoliday(holiday)
	assert.Error(t, err)
	assert.True(t, apperrors.IsMalformedRecord(err))
}

func TestNormalizeCalendarBlock(t *testing.T) {
	workerID := uuid.New()
	block := &models.CalendarBlock{
		BaseModel: models.BaseModel{ID: uuid.New(), Title: "Weekly standup"},
		WorkerID:  workerID,
		BlockType: models.BlockTypeMeeting,
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),

		Visibility:         models.BlockVisibilityPublic,
		BlocksAvailability: true,
	}

	event, err := NormalizeCalendarBlock(block, nil)
	require.NoError(t, err)

	assert.Equal(t, "Weekly standup", event.Title)
	assert.True(t, event.BlocksAvailability)
	require.NotNil(t, event.WorkerID)
	assert.Equal(t, workerID, *event.WorkerID)
	assert.Equal(t, "meeting", event.Details["block_type"])
}

func TestNormalizeCalendarBlock_PrivateMasksTitle(t *testing.T) {
	block := &models.CalendarBlock{
		BaseModel:  models.BaseModel{ID: uuid.New(), Title: "Dentist"},
		WorkerID:   uuid.New(),
		BlockType:  models.BlockTypePersonal,
		StartTime:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Visibility: models.BlockVisibilityPrivate,
	}

	event, err := NormalizeCalendarBlock(block, nil)
	require.NoError(t, err)

	assert.Equal(t, "Busy", event.Title)
	assert.Equal(t, block.StartTime, event.Start, "private blocks keep their interval")
}

func TestNormalizeCalendarBlock_EndBeforeStart(t *testing.T) {
	block := &models.CalendarBlock{
		BaseModel: models.BaseModel{ID: uuid.New(), Title: "Inverted"},
		WorkerID:  uuid.New(),
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	_, err := NormalizeCalendarBlock(block, nil)
	assert.Error(t, err)
	assert.True(t, apperrors.IsMalformedRecord(err))
}

func TestOccurrenceEvent(t *testing.T) {
	base := Event{
		ID:     "block-abc",
		Source: EventSourceBlock,
		Title:  "Weekly standup",
		Start:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		End:    time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}

	start := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	occ := OccurrenceEvent(base, start, end, 2)

	assert.Equal(t, "block-abc-2", occ.ID)
	assert.Equal(t, start, occ.Start)
	assert.Equal(t, end, occ.End)
	assert.Equal(t, base.Title, occ.Title)
	assert.Equal(t, "block-abc", base.ID, "base event is not mutated")
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), base.Start)
}
