package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dispatch-portal-backend/internal/config"
	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/logger"
	"dispatch-portal-backend/internal/metrics"
	"dispatch-portal-backend/internal/monitoring"
	"dispatch-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// maxWorkerScan bounds the all-active-workers scan used when a combined
// query arrives without worker or team filters
const maxWorkerScan = 1000

// CombinedParams carries the validated inputs of one combined calendar
// query. RangeStart and RangeEnd are inclusive calendar days at midnight
// UTC; no timezone conversion is applied to them. An empty Include map
// enables every source.
type CombinedParams struct {
	OrganizationID uuid.UUID
	RangeStart     time.Time
	RangeEnd       time.Time
	WorkerIDs      []uuid.UUID
	TeamIDs        []uuid.UUID
	AdminIDs       []string
	Include        map[EventSource]bool
}

// CombinedMetadata reports per-source outcomes of one aggregation. Counts
// holds emitted events per source; Skipped holds records dropped during
// normalization; Errors holds the fetch failure, if any, keyed by source.
type CombinedMetadata struct {
	Counts  map[string]int    `json:"counts"`
	Skipped map[string]int    `json:"skipped,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// CombinedCalendar is the merged, chronologically sorted event list plus
// its per-source metadata
type CombinedCalendar struct {
	Events   []Event          `json:"events"`
	Metadata CombinedMetadata `json:"metadata"`
}

// CalendarService aggregates events from the field-service platform and
// the portal's own tables into one calendar
type CalendarService struct {
	cfg          *config.Config
	fieldClient  FieldServiceClientInterface
	identity     *IdentityService
	workerRepo   repository.WorkerRepositoryInterface
	workItemRepo repository.WorkItemRepositoryInterface
	leaveRepo    repository.LeaveRequestRepositoryInterface
	holidayRepo  repository.PublicHolidayRepositoryInterface
	blockRepo    repository.CalendarBlockRepositoryInterface
	metrics      metrics.Sink
}

// NewCalendarService creates a new calendar service
func NewCalendarService(
	cfg *config.Config,
	fieldClient FieldServiceClientInterface,
	identity *IdentityService,
	workerRepo repository.WorkerRepositoryInterface,
	workItemRepo repository.WorkItemRepositoryInterface,
	leaveRepo repository.LeaveRequestRepositoryInterface,
	holidayRepo repository.PublicHolidayRepositoryInterface,
	blockRepo repository.CalendarBlockRepositoryInterface,
	sink metrics.Sink,
) *CalendarService {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &CalendarService{
		cfg:          cfg,
		fieldClient:  fieldClient,
		identity:     identity,
		workerRepo:   workerRepo,
		workItemRepo: workItemRepo,
		leaveRepo:    leaveRepo,
		holidayRepo:  holidayRepo,
		blockRepo:    blockRepo,
		metrics:      sink,
	}
}

// workerMaps indexes workers by their portal ID and by their external
// admin mapping
func workerMaps(workers []models.Worker) (map[uuid.UUID]*models.Worker, map[string]*models.Worker) {
	byID := make(map[uuid.UUID]*models.Worker, len(workers))
	byAdminID := make(map[string]*models.Worker)
	for i := range workers {
		worker := &workers[i]
		byID[worker.ID] = worker
		if worker.ExternalAdminID != nil && *worker.ExternalAdminID != "" {
			byAdminID[*worker.ExternalAdminID] = worker
		}
	}
	return byID, byAdminID
}

// clampEvent trims an event to the queried window and reports whether any
// part of it remains
func clampEvent(event Event, rangeStart, rangeEnd time.Time) (Event, bool) {
	if !event.Start.Before(rangeEnd) || !event.End.After(rangeStart) {
		return Event{}, false
	}
	if event.Start.Before(rangeStart) {
		event.Start = rangeStart
	}
	if event.End.After(rangeEnd) {
		event.End = rangeEnd
	}
	return event, true
}

// unionStrings merges two string sets preserving first-seen order
func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, values := range [][]string{a, b} {
		for _, v := range values {
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Combined aggregates all enabled sources into one event list for the
// given range. Each source is fetched in isolation: a failing source is
// recorded under its key in the metadata and the remaining sources still
// contribute, so the call never fails wholesale because one backend is
// down. Records that fail normalization are skipped and counted.
func (s *CalendarService) Combined(ctx context.Context, params CombinedParams) (*CombinedCalendar, error) {
	if params.RangeStart.IsZero() || params.RangeEnd.IsZero() {
		return nil, apperrors.ErrDateRangeRequired
	}
	if params.RangeEnd.Before(params.RangeStart) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if params.OrganizationID == uuid.Nil {
		return nil, apperrors.NewConfigurationError("organization_id is required")
	}

	log := logger.WithContext(ctx)

	dayFirst := dayStart(params.RangeStart)
	dayLast := dayStart(params.RangeEnd)
	rangeEndExclusive := dayLast.Add(24 * time.Hour)

	hasLocalFilter := len(params.WorkerIDs) > 0 || len(params.TeamIDs) > 0

	// Resolve the worker scope once; every source shares it. Without
	// filters the scope is the organization's active workforce, bounded so
	// a huge organization cannot turn one request into an unbounded scan.
	var workers []models.Worker
	var workerIDs []uuid.UUID
	if hasLocalFilter {
		resolved, err := s.identity.ResolveEffectiveWorkerIDs(params.WorkerIDs, params.TeamIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve worker scope: %w", err)
		}
		workerIDs = resolved
		workers, err = s.workerRepo.GetByIDs(resolved)
		if err != nil {
			return nil, fmt.Errorf("failed to load workers: %w", err)
		}
	} else {
		var total int64
		var err error
		workers, total, err = s.workerRepo.GetActiveByOrganization(params.OrganizationID, maxWorkerScan, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load active workers: %w", err)
		}
		if total > int64(len(workers)) {
			log.Warnf("combined calendar scanning only %d of %d active workers", len(workers), total)
		}
		workerIDs = make([]uuid.UUID, len(workers))
		for i := range workers {
			workerIDs[i] = workers[i].ID
		}
	}
	workersByID, workersByAdminID := workerMaps(workers)

	result := &CombinedCalendar{
		Events: []Event{},
		Metadata: CombinedMetadata{
			Counts:  make(map[string]int),
			Skipped: make(map[string]int),
			Errors:  make(map[string]string),
		},
	}

	enabled := func(source EventSource) bool {
		if len(params.Include) == 0 {
			return true
		}
		return params.Include[source]
	}

	// fetchSource runs one source's fetch-and-normalize step with failure
	// isolation
	fetchSource := func(source EventSource, fetch func() ([]Event, int, error)) {
		if !enabled(source) {
			return
		}
		key := string(source)
		events, skipped, err := fetch()
		if skipped > 0 {
			result.Metadata.Skipped[key] = skipped
			s.metrics.RecordSkippedRecords(key, skipped)
		}
		if err != nil {
			result.Metadata.Counts[key] = 0
			result.Metadata.Errors[key] = err.Error()
			s.metrics.RecordSourceError(key)
			monitoring.CaptureException(apperrors.NewSourceUnavailableError(key, err), map[string]string{"source": key})
			log.Warnf("calendar source %s failed: %v", key, err)
			return
		}
		kept := 0
		for _, event := range events {
			if clamped, ok := clampEvent(event, dayFirst, rangeEndExclusive); ok {
				result.Events = append(result.Events, clamped)
				kept++
			}
		}
		result.Metadata.Counts[key] = kept
		s.metrics.RecordSourceEvents(key, kept)
	}

	fetchSource(EventSourceExternalTask, func() ([]Event, int, error) {
		adminIDs := params.AdminIDs
		if hasLocalFilter {
			resolved, err := s.identity.ResolveExternalAdminIDs(workerIDs)
			if err != nil {
				return nil, 0, err
			}
			adminIDs = unionStrings(resolved, params.AdminIDs)
			if len(adminIDs) == 0 {
				// The filtered workers hold no platform mappings. Fetching
				// without an admin filter would leak every admin's tasks
				// into a worker-scoped response, so the source contributes
				// nothing instead.
				return []Event{}, 0, nil
			}
		}
		tasks, err := s.fieldClient.ListTasks(ctx, FieldTaskFilters{AdminIDs: adminIDs})
		if err != nil {
			return nil, 0, err
		}
		events := make([]Event, 0, len(tasks))
		skipped := 0
		for _, task := range tasks {
			event, err := NormalizeFieldTask(task, workersByAdminID)
			if err != nil {
				skipped++
				continue
			}
			// The platform cannot filter tasks by date server-side, so the
			// scheduled interval is checked against the range here.
			if !event.Start.Before(rangeEndExclusive) || !event.End.After(dayFirst) {
				continue
			}
			events = append(events, event)
		}
		return events, skipped, nil
	})

	fetchSource(EventSourceWorkItem, func() ([]Event, int, error) {
		var assigneeIDs []uuid.UUID
		if hasLocalFilter {
			assigneeIDs = workerIDs
		}
		items, err := s.workItemRepo.ListDueInRange(params.OrganizationID, dayFirst, dayLast, assigneeIDs)
		if err != nil {
			return nil, 0, err
		}
		events := make([]Event, 0, len(items))
		skipped := 0
		for i := range items {
			var assignee *models.Worker
			if items[i].AssigneeID != nil {
				assignee = workersByID[*items[i].AssigneeID]
			}
			event, err := NormalizeWorkItem(&items[i], assignee)
			if err != nil {
				skipped++
				continue
			}
			events = append(events, event)
		}
		return events, skipped, nil
	})

	fetchSource(EventSourceLeave, func() ([]Event, int, error) {
		// Rejected requests stay off the calendar; pending ones show but
		// never block availability
		leaves, err := s.leaveRepo.ListInRange(workerIDs, dayFirst, dayLast,
			[]models.LeaveStatus{models.LeaveStatusPending, models.LeaveStatusApproved})
		if err != nil {
			return nil, 0, err
		}
		events := make([]Event, 0, len(leaves))
		skipped := 0
		for i := range leaves {
			event, err := NormalizeLeaveRequest(&leaves[i], workersByID[leaves[i].WorkerID])
			if err != nil {
				skipped++
				continue
			}
			events = append(events, event)
		}
		return events, skipped, nil
	})

	fetchSource(EventSourcePublicHoliday, func() ([]Event, int, error) {
		holidays, err := s.holidayRepo.ListInRange(params.OrganizationID, dayFirst, dayLast)
		if err != nil {
			return nil, 0, err
		}
		events := make([]Event, 0, len(holidays))
		skipped := 0
		for i := range holidays {
			event, err := NormalizePublicHoliday(&holidays[i])
			if err != nil {
				skipped++
				continue
			}
			events = append(events, event)
		}
		return events, skipped, nil
	})

	fetchSource(EventSourceBlock, func() ([]Event, int, error) {
		blocks, err := s.blockRepo.ListInRange(workerIDs, dayFirst, rangeEndExclusive)
		if err != nil {
			return nil, 0, err
		}
		events := make([]Event, 0, len(blocks))
		skipped := 0
		for i := range blocks {
			block := &blocks[i]
			base, err := NormalizeCalendarBlock(block, workersByID[block.WorkerID])
			if err != nil {
				skipped++
				continue
			}
			occurrences, truncated := ExpandBlock(block, dayFirst, rangeEndExclusive, s.cfg.MaxRuleOccurrences)
			if truncated {
				log.Warnf("recurring block %s truncated at %d occurrences", block.ID, s.cfg.MaxRuleOccurrences)
			}
			for _, occ := range occurrences {
				if occ.Index == 0 {
					events = append(events, base)
				} else {
					events = append(events, OccurrenceEvent(base, occ.Start, occ.End, occ.Index))
				}
			}
		}
		return events, skipped, nil
	})

	sort.Slice(result.Events, func(i, j int) bool {
		if !result.Events[i].Start.Equal(result.Events[j].Start) {
			return result.Events[i].Start.Before(result.Events[j].Start)
		}
		return result.Events[i].ID < result.Events[j].ID
	})

	return result, nil
}
