package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"dispatch-portal-backend/internal/config"
	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/logger"
	"dispatch-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingHours is the daily bookable window in minutes from midnight
type WorkingHours struct {
	StartMinutes int
	EndMinutes   int
}

// Interval is a half-open busy span [Start, End)
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Slot is one bookable candidate start. FreeWorkerIDs is populated only on
// team queries, naming the members free at that instant.
type Slot struct {
	Start         time.Time `json:"start"`
	Day           string    `json:"day"`
	Label         string    `json:"label"`
	FreeWorkerIDs []string  `json:"free_worker_ids,omitempty"`
}

// TeamAvailability pairs the merged team slots with each member's own list
type TeamAvailability struct {
	Slots     []Slot            `json:"slots"`
	PerMember map[string][]Slot `json:"per_member"`
}

// AvailabilityParams carries the validated inputs of one availability
// query. RangeStart and RangeEnd are inclusive calendar days.
type AvailabilityParams struct {
	RangeStart      time.Time
	RangeEnd        time.Time
	DurationMinutes int
	TravelMinutes   int
}

// GenerateSlots computes the bookable starts for one worker. The booked
// span is the appointment itself plus a travel buffer on each side; a
// candidate fits only when that whole span lies inside the working window
// of a weekday, touches no busy interval, and starts strictly in the
// future. Pure: all inputs arrive as values and no I/O happens here.
func GenerateSlots(rangeStart, rangeEnd time.Time, durationMinutes, travelMinutes int, hours WorkingHours, stepMinutes int, busy []Interval, now time.Time) []Slot {
	slots := []Slot{}
	if durationMinutes <= 0 || travelMinutes < 0 {
		return slots
	}
	if stepMinutes <= 0 {
		stepMinutes = 30
	}

	totalMinutes := durationMinutes + 2*travelMinutes
	lastDay := dayStart(rangeEnd)

	for day := dayStart(rangeStart); !day.After(lastDay); day = day.Add(24 * time.Hour) {
		weekday := day.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}

		for minute := hours.StartMinutes; minute+totalMinutes <= hours.EndMinutes; minute += stepMinutes {
			start := day.Add(time.Duration(minute) * time.Minute)
			if !start.After(now) {
				continue
			}
			end := start.Add(time.Duration(totalMinutes) * time.Minute)

			free := true
			for _, b := range busy {
				if start.Before(b.End) && end.After(b.Start) {
					free = false
					break
				}
			}
			if !free {
				continue
			}

			slots = append(slots, Slot{
				Start: start,
				Day:   start.Format("2006-01-02"),
				Label: start.Format("15:04"),
			})
		}
	}
	return slots
}

// MergeTeamAvailability unions per-member slot lists into team slots. Each
// distinct instant any member can take becomes one merged slot annotated
// with the members free then; an instant nobody can take never appears. A
// slot therefore means "at least one member is free", matching the booking
// flow where a job goes to one member, not the whole team.
func MergeTeamAvailability(perMember map[string][]Slot) []Slot {
	free := make(map[int64][]string)
	starts := make(map[int64]time.Time)
	for memberID, slots := range perMember {
		for _, slot := range slots {
			key := slot.Start.Unix()
			free[key] = append(free[key], memberID)
			starts[key] = slot.Start
		}
	}

	merged := make([]Slot, 0, len(starts))
	for key, start := range starts {
		members := free[key]
		sort.Strings(members)
		merged = append(merged, Slot{
			Start:         start,
			Day:           start.Format("2006-01-02"),
			Label:         start.Format("15:04"),
			FreeWorkerIDs: members,
		})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Start.Before(merged[j].Start) })
	return merged
}

// AvailabilityService computes free slots for workers and teams from their
// aggregated busy intervals
type AvailabilityService struct {
	cfg         *config.Config
	fieldClient FieldServiceClientInterface
	workerRepo  repository.WorkerRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	leaveRepo   repository.LeaveRequestRepositoryInterface
	holidayRepo repository.PublicHolidayRepositoryInterface
	blockRepo   repository.CalendarBlockRepositoryInterface
	nowFunc     func() time.Time
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	cfg *config.Config,
	fieldClient FieldServiceClientInterface,
	workerRepo repository.WorkerRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	leaveRepo repository.LeaveRequestRepositoryInterface,
	holidayRepo repository.PublicHolidayRepositoryInterface,
	blockRepo repository.CalendarBlockRepositoryInterface,
) *AvailabilityService {
	return &AvailabilityService{
		cfg:         cfg,
		fieldClient: fieldClient,
		workerRepo:  workerRepo,
		teamRepo:    teamRepo,
		leaveRepo:   leaveRepo,
		holidayRepo: holidayRepo,
		blockRepo:   blockRepo,
		nowFunc:     time.Now,
	}
}

// NewAvailabilityServiceWithClock creates an availability service whose
// notion of "now" is injectable so slot cutoffs can be tested
// deterministically
func NewAvailabilityServiceWithClock(
	cfg *config.Config,
	fieldClient FieldServiceClientInterface,
	workerRepo repository.WorkerRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	leaveRepo repository.LeaveRequestRepositoryInterface,
	holidayRepo repository.PublicHolidayRepositoryInterface,
	blockRepo repository.CalendarBlockRepositoryInterface,
	nowFunc func() time.Time,
) *AvailabilityService {
	service := NewAvailabilityService(cfg, fieldClient, workerRepo, teamRepo, leaveRepo, holidayRepo, blockRepo)
	if nowFunc != nil {
		service.nowFunc = nowFunc
	}
	return service
}

func (s *AvailabilityService) validateParams(params AvailabilityParams) error {
	if params.RangeStart.IsZero() || params.RangeEnd.IsZero() {
		return apperrors.ErrDateRangeRequired
	}
	if params.RangeEnd.Before(params.RangeStart) {
		return apperrors.ErrInvalidTimeRange
	}
	if params.DurationMinutes <= 0 {
		return apperrors.ErrDurationRequired
	}
	if params.TravelMinutes < 0 {
		return apperrors.NewValidationError("travel_minutes", "must not be negative")
	}
	return nil
}

// ForWorker computes the bookable slots for one worker over the range
func (s *AvailabilityService) ForWorker(ctx context.Context, workerID uuid.UUID, params AvailabilityParams) ([]Slot, error) {
	if err := s.validateParams(params); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.GetByID(workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	busy, err := s.busyIntervals(ctx, worker.OrganizationID, params, []models.Worker{*worker})
	if err != nil {
		return nil, err
	}

	start, end := s.cfg.WorkingWindowMinutes()
	hours := WorkingHours{StartMinutes: start, EndMinutes: end}
	return GenerateSlots(params.RangeStart, params.RangeEnd, params.DurationMinutes, params.TravelMinutes,
		hours, s.cfg.SlotIntervalMinutes, busy[workerID], s.nowFunc()), nil
}

// ForTeam computes each member's slots and the merged team view
func (s *AvailabilityService) ForTeam(ctx context.Context, teamID uuid.UUID, params AvailabilityParams) (*TeamAvailability, error) {
	if err := s.validateParams(params); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	memberIDs, err := s.teamRepo.GetMemberWorkerIDs(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	if len(memberIDs) == 0 {
		return nil, apperrors.ErrNoMembersInTeam
	}

	members, err := s.workerRepo.GetByIDs(memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	busy, err := s.busyIntervals(ctx, team.OrganizationID, params, members)
	if err != nil {
		return nil, err
	}

	start, end := s.cfg.WorkingWindowMinutes()
	hours := WorkingHours{StartMinutes: start, EndMinutes: end}
	now := s.nowFunc()

	perMember := make(map[string][]Slot, len(members))
	for i := range members {
		memberID := members[i].ID
		perMember[memberID.String()] = GenerateSlots(params.RangeStart, params.RangeEnd,
			params.DurationMinutes, params.TravelMinutes, hours, s.cfg.SlotIntervalMinutes,
			busy[memberID], now)
	}

	return &TeamAvailability{
		Slots:     MergeTeamAvailability(perMember),
		PerMember: perMember,
	}, nil
}

// busyIntervals gathers each worker's busy spans inside the range: the
// platform's scheduled tasks, blocking calendar blocks with recurrences
// expanded, approved leave, and organization-wide public holidays. Workers
// without a platform mapping simply contribute no external spans; an empty
// result means "no known commitments" and is a valid answer.
func (s *AvailabilityService) busyIntervals(ctx context.Context, orgID uuid.UUID, params AvailabilityParams, workers []models.Worker) (map[uuid.UUID][]Interval, error) {
	log := logger.WithContext(ctx)

	dayFirst := dayStart(params.RangeStart)
	dayLast := dayStart(params.RangeEnd)
	rangeEndExclusive := dayLast.Add(24 * time.Hour)

	workerIDs := make([]uuid.UUID, len(workers))
	for i := range workers {
		workerIDs[i] = workers[i].ID
	}
	_, workersByAdminID := workerMaps(workers)

	busy := make(map[uuid.UUID][]Interval, len(workers))

	// Field-service tasks for the mapped workers
	adminIDs := make([]string, 0, len(workers))
	for i := range workers {
		if workers[i].ExternalAdminID != nil && *workers[i].ExternalAdminID != "" {
			adminIDs = append(adminIDs, *workers[i].ExternalAdminID)
		}
	}
	sort.Strings(adminIDs)
	if len(adminIDs) > 0 && s.cfg.HasFieldService() {
		tasks, err := s.fieldClient.ListTasks(ctx, FieldTaskFilters{AdminIDs: adminIDs})
		if err != nil {
			return nil, apperrors.NewSourceUnavailableError(string(EventSourceExternalTask), err)
		}
		for _, task := range tasks {
			event, err := NormalizeFieldTask(task, workersByAdminID)
			if err != nil || event.WorkerID == nil {
				continue
			}
			if !event.Start.Before(rangeEndExclusive) || !event.End.After(dayFirst) {
				continue
			}
			busy[*event.WorkerID] = append(busy[*event.WorkerID], Interval{Start: event.Start, End: event.End})
		}
	}

	// Blocking calendar blocks, recurrences expanded
	blocks, err := s.blockRepo.ListInRange(workerIDs, dayFirst, rangeEndExclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar blocks: %w", err)
	}
	for i := range blocks {
		block := &blocks[i]
		if !block.BlocksAvailability {
			continue
		}
		if block.EndTime.Before(block.StartTime) {
			log.Debugf("skipping calendar block %s with end before start", block.ID)
			continue
		}
		occurrences, truncated := ExpandBlock(block, dayFirst, rangeEndExclusive, s.cfg.MaxRuleOccurrences)
		if truncated {
			log.Warnf("recurring block %s truncated at %d occurrences", block.ID, s.cfg.MaxRuleOccurrences)
		}
		for _, occ := range occurrences {
			busy[block.WorkerID] = append(busy[block.WorkerID], Interval{Start: occ.Start, End: occ.End})
		}
	}

	// Approved leave, widened to whole days
	leaves, err := s.leaveRepo.ListApprovedInRange(workerIDs, dayFirst, dayLast)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave requests: %w", err)
	}
	for i := range leaves {
		leave := &leaves[i]
		if leave.EndDate.Before(leave.StartDate) {
			continue
		}
		busy[leave.WorkerID] = append(busy[leave.WorkerID], Interval{
			Start: dayStart(leave.StartDate),
			End:   dayStart(leave.EndDate).Add(24 * time.Hour),
		})
	}

	// Public holidays block every worker in the organization
	holidays, err := s.holidayRepo.ListInRange(orgID, dayFirst, dayLast)
	if err != nil {
		return nil, fmt.Errorf("failed to load public holidays: %w", err)
	}
	for i := range holidays {
		if holidays[i].Date.IsZero() {
			continue
		}
		interval := Interval{
			Start: dayStart(holidays[i].Date),
			End:   dayStart(holidays[i].Date).Add(24 * time.Hour),
		}
		for _, workerID := range workerIDs {
			busy[workerID] = append(busy[workerID], interval)
		}
	}

	return busy, nil
}
