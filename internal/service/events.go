package service

import (
	"fmt"
	"strings"
	"time"

	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"

	"github.com/google/uuid"
)

// EventSource identifies which backing system or table produced an event
type EventSource string

const (
	EventSourceExternalTask  EventSource = "external_task"
	EventSourceWorkItem      EventSource = "work_item"
	EventSourceLeave         EventSource = "leave"
	EventSourcePublicHoliday EventSource = "public_holiday"
	EventSourceBlock         EventSource = "block"
)

// AllEventSources lists every source in the order sections appear in the
// combined calendar response
var AllEventSources = []EventSource{
	EventSourceExternalTask,
	EventSourceWorkItem,
	EventSourceLeave,
	EventSourcePublicHoliday,
	EventSourceBlock,
}

// sourcePrefixes maps each source to the prefix carried by its event IDs.
// The prefix keeps IDs unique across sources and lets clients route an
// event ID back to the system that owns the underlying record.
var sourcePrefixes = map[EventSource]string{
	EventSourceExternalTask:  "task",
	EventSourceWorkItem:      "item",
	EventSourceLeave:         "leave",
	EventSourcePublicHoliday: "holiday",
	EventSourceBlock:         "block",
}

var prefixSources = map[string]EventSource{
	"task":    EventSourceExternalTask,
	"item":    EventSourceWorkItem,
	"leave":   EventSourceLeave,
	"holiday": EventSourcePublicHoliday,
	"block":   EventSourceBlock,
}

// sourceColors assigns each source its fixed display color
var sourceColors = map[EventSource]string{
	EventSourceExternalTask:  "orange",
	EventSourceWorkItem:      "indigo",
	EventSourceLeave:         "green",
	EventSourcePublicHoliday: "red",
	EventSourceBlock:         "slate",
}

// IsValid checks if the EventSource is valid
func (s EventSource) IsValid() bool {
	_, ok := sourcePrefixes[s]
	return ok
}

// ParseEventSource converts a request parameter into an EventSource
func ParseEventSource(value string) (EventSource, bool) {
	source := EventSource(strings.TrimSpace(strings.ToLower(value)))
	if !source.IsValid() {
		return "", false
	}
	return source, true
}

// EventID builds the prefixed event ID for a record of the given source
func EventID(source EventSource, raw string) string {
	return sourcePrefixes[source] + "-" + raw
}

// EventSourceFromID recovers the source from a prefixed event ID. The
// prefix is everything before the first hyphen, so occurrence suffixes on
// recurring block IDs do not interfere.
func EventSourceFromID(id string) (EventSource, bool) {
	prefix, _, found := strings.Cut(id, "-")
	if !found {
		return "", false
	}
	source, ok := prefixSources[prefix]
	return source, ok
}

// Event is the unified calendar entry every source normalizes into.
// Start and End are UTC instants; all-day events span whole days with End
// exclusive at the following midnight.
type Event struct {
	ID                 string                 `json:"id"`
	Source             EventSource            `json:"source"`
	Title              string                 `json:"title"`
	Start              time.Time              `json:"start"`
	End                time.Time              `json:"end"`
	AllDay             bool                   `json:"all_day"`
	Color              string                 `json:"color"`
	Status             string                 `json:"status,omitempty"`
	WorkerID           *uuid.UUID             `json:"worker_id,omitempty"`
	WorkerName         string                 `json:"worker_name,omitempty"`
	BlocksAvailability bool                   `json:"blocks_availability"`
	Details            map[string]interface{} `json:"details,omitempty"`
}

// dayStart truncates an instant to midnight UTC of its calendar day
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// defaultTaskDurationMinutes is assumed when the platform reports a task
// without a duration
const defaultTaskDurationMinutes = 60

// NormalizeFieldTask converts a platform task into an event. The owner is
// resolved through the admin-ID mapping when one exists; otherwise the
// platform's own display name is kept so the entry stays attributable.
func NormalizeFieldTask(task FieldTask, workersByAdminID map[string]*models.Worker) (Event, error) {
	if task.ID == "" {
		return Event{}, apperrors.NewMalformedRecordError(string(EventSourceExternalTask), "missing id")
	}
	start, err := time.Parse(time.RFC3339, task.ScheduledStart)
	if err != nil {
		return Event{}, apperrors.NewMalformedRecordError(string(EventSourceExternalTask),
			fmt.Sprintf("task %s: unparseable scheduled_start %q", task.ID, task.ScheduledStart))
	}
	if task.DurationMinutes < 0 {
		return Event{}, apperrors.NewMalformedRecordError(string(EventSourceExternalTask),
			fmt.Sprintf("task %s: negative duration %d", task.ID, task.DurationMinutes))
	}

	duration := task.DurationMinutes
	if duration == 0 {
		duration = defaultTaskDurationMinutes
	}

	title := task.Subject
	if title == "" {
		title = "Field task"
	}

	event := Event{
		ID:                 EventID(EventSourceExternalTask, task.ID),
		Source:             EventSourceExternalTask,
		Title:              title,
		Start:              start.UTC(),
		End:                start.UTC().Add(time.Duration(duration) * time.Minute),
		Color:              sourceColors[EventSourceExternalTask],
		Status:             task.Status,
		WorkerName:         task.AdminName,
		BlocksAvailability: true,
		Details: map[string]interface{}{
			"admin_id":         task.AdminID,
			"duration_minutes": duration,
		},
	}
	if task.TeamID != "" {
		event.Details["team_id"] = task.TeamID
	}
	if task.Address != "" {
		event.Details["address"] = task.Address
	}
	if worker, ok := workersByAdminID[task.AdminID]; ok && worker != nil {
		id := worker.ID
		event.WorkerID = &id
		event.WorkerName = worker.FullName()
	}
	return event, nil
}

// NormalizeWorkItem converts a work item into an all-day marker on its due
// date. Work items never count against availability.
func NormalizeWorkItem(item *models.WorkItem, assignee *models.Worker) (Event, error) {
	if item.DueDate.IsZero() {
		return Event{}, apperrors.NewMalformedRecordError(string(EventSourceWorkItem),
			fmt.Sprintf("work item %s: missing due date", item.ID))
	}

	start := dayStart(item.DueDate)
	event := Event{
		ID:                 EventID(EventSourceWorkItem, item.ID.String()),
		Source:             EventSourceWorkItem,
		Title:              item.Title,
		Start:              start,
		End:                start.Add(24 * time.Hour),
		AllDay:             true,
		Color:              sourceColors[EventSourceWorkItem],
		Status:             string(item.Status),
		BlocksAvailability: false,
		Details: map[string]interface{}{
			"priority": string(item.Priority),
		},
	}
	if item.AssigneeID != nil {
		id := *item.AssigneeID
		event.WorkerID = &id
	}
	if assignee != nil {
		event.WorkerName = assignee.FullName()
	}
	return event, nil
}

// NormalizeLeaveRequest converts a leave request into an all-day range
// event. The title is synthesized from the worker and the leave type since
// leave rows carry no title of their own. Only approved leave counts
// against availability; pending requests still show on the calendar.
func NormalizeLeaveRequest(request *models.LeaveRequest, worker *models.Worker) (Event, error) {
	if request.EndDate.Before(request.StartDate) {
		return Event{}, apperrors.NewMalformedRecordError(string(EventSourceLeave),
			fmt.Sprintf("leave request %s: end date before start date", request.ID))
	}

	workerName := "Worker"
	if worker != nil && strings.TrimSpace(worker.FullName()) != "" {
		workerName = worker.FullName()
	}

	start := dayStart(request.StartDate)
	workerID := request.WorkerID
	return Event{
		ID:                 EventID(EventSourceLeave, request.ID.String()),
		Source:             EventSourceLeave,
		Title:              fmt.Sprintf("%s - %s leave", workerName, request.LeaveType),
		Start:              start,
		End:                dayStart(request.EndDate).Add(24 * time.Hour),
		AllDay:             true,
		Color:              sourceColors[EventSourceLeave],
		Status:             string(request.Status),
		WorkerID:           &workerID,
		WorkerName:         workerName,
		BlocksAvailability: request.Status == models.LeaveStatusApproved,
		Details: map[string]interface{}{
			"leave_type": string(request.LeaveType),
		},
	}, nil
}

// NormalizePublicHoliday converts a public holiday into an organization-wide
// all-day event with no owner
func NormalizePublicHoliday(holiday *models.PublicHoliday) (Event, error) {
	if holiday.Date.IsZero() {
		return Event{}, apperrors.NewMalformedRecordError(string(EventSourcePublicHoliday),
			fmt.Sprintf("public holiday %s: missing date", holiday.ID))
	}

	start := dayStart(holiday.Date)
	event := Event{
		ID:                 EventID(EventSourcePublicHoliday, holiday.ID.String()),
		Source:             EventSourcePublicHoliday,
		Title:              holiday.Title,
		Start:              start,
		End:                start.Add(24 * time.Hour),
		AllDay:             true,
		Color:              sourceColors[EventSourcePublicHoliday],
		BlocksAvailability: true,
	}
	if holiday.Region != nil && *holiday.Region != "" {
		event.Details = map[string]interface{}{"region": *holiday.Region}
	}
	return event, nil
}

// NormalizeCalendarBlock converts a block row into an event covering its
// stored interval. Private blocks keep their time but mask the title.
// Recurring series are expanded elsewhere; this produces the base event the
// occurrences are stamped from.
func NormalizeCalendarBlock(block *models.CalendarBlock, worker *models.Worker) (Event, error) {
	if block.EndTime.Before(block.StartTime) {
		return Event{}, apperrors.NewMalformedRecordError(string(EventSourceBlock),
			fmt.Sprintf("calendar block %s: end before start", block.ID))
	}

	title := block.Title
	if block.Visibility == models.BlockVisibilityPrivate {
		title = "Busy"
	}

	workerID := block.WorkerID
	event := Event{
		ID:                 EventID(EventSourceBlock, block.ID.String()),
		Source:             EventSourceBlock,
		Title:              title,
		Start:              block.StartTime.UTC(),
		End:                block.EndTime.UTC(),
		AllDay:             block.AllDay,
		Color:              sourceColors[EventSourceBlock],
		WorkerID:           &workerID,
		BlocksAvailability: block.BlocksAvailability,
		Details: map[string]interface{}{
			"block_type": string(block.BlockType),
		},
	}
	if worker != nil {
		event.WorkerName = worker.FullName()
	}
	return event, nil
}

// OccurrenceEvent stamps one expanded occurrence of a recurring block from
// its base event. Index is 1-based and keeps occurrence IDs distinct from
// the series row's own ID.
func OccurrenceEvent(base Event, start, end time.Time, index int) Event {
	occurrence := base
	occurrence.ID = fmt.Sprintf("%s-%d", base.ID, index)
	occurrence.Start = start
	occurrence.End = end
	return occurrence
}
