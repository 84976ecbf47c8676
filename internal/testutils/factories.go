package testutils

import (
	"fmt"
	"time"

	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:          uuid.New(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			Name:        "test-org",
			Title:       "Test Organization",
			Description: "A test organization for testing purposes",
			Metadata:    nil,
		},
		Domain: "test.com",
		Region: "EMEA",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.Title = name + " Organization"
	return org
}

// WithDomain sets a custom domain for the organization
func (f *OrganizationFactory) WithDomain(domain string) *models.Organization {
	org := f.Create()
	org.Domain = domain
	return org
}

// WorkerFactory provides methods to create test Worker data
type WorkerFactory struct{}

// NewWorkerFactory creates a new WorkerFactory
func NewWorkerFactory() *WorkerFactory {
	return &WorkerFactory{}
}

// Create creates a test Worker with default values
func (f *WorkerFactory) Create() *models.Worker {
	id := uuid.New()
	// Generate unique email using part of UUID to avoid conflicts
	email := fmt.Sprintf("worker-%s@test.com", id.String()[:8])

	return &models.Worker{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "worker-" + id.String()[:8],
			Title:     "John Doe",
			Metadata:  nil,
		},
		OrganizationID:  uuid.New(),
		FirstName:       "John",
		LastName:        "Doe",
		Email:           email,
		PhoneNumber:     "+1-555-0123",
		ExternalAdminID: nil,
		IsActive:        true,
	}
}

// WithOrganization sets the organization ID for the worker
func (f *WorkerFactory) WithOrganization(orgID uuid.UUID) *models.Worker {
	worker := f.Create()
	worker.OrganizationID = orgID
	return worker
}

// WithEmail sets a custom email for the worker
func (f *WorkerFactory) WithEmail(email string) *models.Worker {
	worker := f.Create()
	worker.Email = email
	return worker
}

// WithExternalAdminID links the worker to a field-service administrator id
func (f *WorkerFactory) WithExternalAdminID(adminID string) *models.Worker {
	worker := f.Create()
	worker.ExternalAdminID = &adminID
	return worker
}

// WithActive sets the active flag for the worker
func (f *WorkerFactory) WithActive(isActive bool) *models.Worker {
	worker := f.Create()
	worker.IsActive = isActive
	return worker
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:          uuid.New(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			Name:        "test-team",
			Title:       "Test Team",
			Description: "A test team for testing purposes",
			Metadata:    nil,
		},
		OrganizationID: uuid.New(),
		Email:          "test-team@test.com",
		Color:          "#3788d8",
	}
}

// WithOrganization sets the organization ID for the team
func (f *TeamFactory) WithOrganization(orgID uuid.UUID) *models.Team {
	team := f.Create()
	team.OrganizationID = orgID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	team.Title = name + " Team"
	return team
}

// TeamMembershipFactory provides methods to create test TeamMembership data
type TeamMembershipFactory struct{}

// NewTeamMembershipFactory creates a new TeamMembershipFactory
func NewTeamMembershipFactory() *TeamMembershipFactory {
	return &TeamMembershipFactory{}
}

// Create creates a test TeamMembership linking a team and a worker
func (f *TeamMembershipFactory) Create(teamID, workerID uuid.UUID) *models.TeamMembership {
	id := uuid.New()
	return &models.TeamMembership{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "membership-" + id.String()[:8],
			Title:     "Team Membership",
		},
		TeamID:   teamID,
		WorkerID: workerID,
		Role:     models.TeamRoleTechnician,
	}
}

// WithRole creates a membership with a custom role
func (f *TeamMembershipFactory) WithRole(teamID, workerID uuid.UUID, role models.TeamRole) *models.TeamMembership {
	membership := f.Create(teamID, workerID)
	membership.Role = role
	return membership
}

// ExternalTeamFactory provides methods to create test ExternalTeam data
type ExternalTeamFactory struct{}

// NewExternalTeamFactory creates a new ExternalTeamFactory
func NewExternalTeamFactory() *ExternalTeamFactory {
	return &ExternalTeamFactory{}
}

// Create creates a test ExternalTeam snapshot with default values
func (f *ExternalTeamFactory) Create() *models.ExternalTeam {
	id := uuid.New()
	return &models.ExternalTeam{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "external-" + id.String()[:8],
			Title:     "External Team",
		},
		ExternalID:     "ext-" + id.String()[:8],
		PartnerID:      nil,
		MemberAdminIDs: []string{"100001", "100002"},
		Color:          "#ff9f89",
		SyncedAt:       time.Now(),
	}
}

// WithExternalID sets a custom external id for the snapshot
func (f *ExternalTeamFactory) WithExternalID(externalID string) *models.ExternalTeam {
	team := f.Create()
	team.ExternalID = externalID
	return team
}

// WithMemberAdminIDs sets the administrator ids belonging to the snapshot
func (f *ExternalTeamFactory) WithMemberAdminIDs(adminIDs ...string) *models.ExternalTeam {
	team := f.Create()
	team.MemberAdminIDs = adminIDs
	return team
}

// CalendarBlockFactory provides methods to create test CalendarBlock data
type CalendarBlockFactory struct{}

// NewCalendarBlockFactory creates a new CalendarBlockFactory
func NewCalendarBlockFactory() *CalendarBlockFactory {
	return &CalendarBlockFactory{}
}

// Create creates a test CalendarBlock with default values (one hour, starting tomorrow 10:00 UTC)
func (f *CalendarBlockFactory) Create() *models.CalendarBlock {
	id := uuid.New()
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, time.UTC)

	return &models.CalendarBlock{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "block-" + id.String()[:8],
			Title:     "Test Block",
		},
		WorkerID:           uuid.New(),
		BlockType:          models.BlockTypeMeeting,
		StartTime:          start,
		EndTime:            start.Add(time.Hour),
		AllDay:             false,
		RecurrenceRule:     "",
		Visibility:         models.BlockVisibilityPublic,
		BlocksAvailability: true,
	}
}

// WithWorker sets the worker ID for the block
func (f *CalendarBlockFactory) WithWorker(workerID uuid.UUID) *models.CalendarBlock {
	block := f.Create()
	block.WorkerID = workerID
	return block
}

// WithTimes sets explicit start and end times for the block
func (f *CalendarBlockFactory) WithTimes(workerID uuid.UUID, start, end time.Time) *models.CalendarBlock {
	block := f.Create()
	block.WorkerID = workerID
	block.StartTime = start
	block.EndTime = end
	return block
}

// WithRecurrenceRule sets an RRULE body for the block
func (f *CalendarBlockFactory) WithRecurrenceRule(workerID uuid.UUID, rule string) *models.CalendarBlock {
	block := f.Create()
	block.WorkerID = workerID
	block.RecurrenceRule = rule
	return block
}

// WithBlocksAvailability sets whether the block counts against free slots
func (f *CalendarBlockFactory) WithBlocksAvailability(workerID uuid.UUID, blocks bool) *models.CalendarBlock {
	block := f.Create()
	block.WorkerID = workerID
	block.BlocksAvailability = blocks
	return block
}

// LeaveRequestFactory provides methods to create test LeaveRequest data
type LeaveRequestFactory struct{}

// NewLeaveRequestFactory creates a new LeaveRequestFactory
func NewLeaveRequestFactory() *LeaveRequestFactory {
	return &LeaveRequestFactory{}
}

// Create creates a pending two-day test LeaveRequest starting next week
func (f *LeaveRequestFactory) Create() *models.LeaveRequest {
	id := uuid.New()
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7)

	return &models.LeaveRequest{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "leave-" + id.String()[:8],
			Title:     "Test Leave",
		},
		WorkerID:  uuid.New(),
		LeaveType: models.LeaveTypeVacation,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
		Status:    models.LeaveStatusPending,
	}
}

// WithWorker sets the worker ID for the leave request
func (f *LeaveRequestFactory) WithWorker(workerID uuid.UUID) *models.LeaveRequest {
	leave := f.Create()
	leave.WorkerID = workerID
	return leave
}

// WithDates sets explicit start and end dates for the leave request
func (f *LeaveRequestFactory) WithDates(workerID uuid.UUID, start, end time.Time) *models.LeaveRequest {
	leave := f.Create()
	leave.WorkerID = workerID
	leave.StartDate = start
	leave.EndDate = end
	return leave
}

// WithStatus sets a custom status for the leave request
func (f *LeaveRequestFactory) WithStatus(workerID uuid.UUID, status models.LeaveStatus) *models.LeaveRequest {
	leave := f.Create()
	leave.WorkerID = workerID
	leave.Status = status
	return leave
}

// PublicHolidayFactory provides methods to create test PublicHoliday data
type PublicHolidayFactory struct{}

// NewPublicHolidayFactory creates a new PublicHolidayFactory
func NewPublicHolidayFactory() *PublicHolidayFactory {
	return &PublicHolidayFactory{}
}

// Create creates a test PublicHoliday with default values
func (f *PublicHolidayFactory) Create() *models.PublicHoliday {
	id := uuid.New()
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 14)

	return &models.PublicHoliday{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "holiday-" + id.String()[:8],
			Title:     "Test Holiday",
		},
		OrganizationID: uuid.New(),
		Date:           date,
		Region:         nil,
	}
}

// WithOrganization sets the organization ID for the holiday
func (f *PublicHolidayFactory) WithOrganization(orgID uuid.UUID) *models.PublicHoliday {
	holiday := f.Create()
	holiday.OrganizationID = orgID
	return holiday
}

// WithDate sets an explicit date for the holiday
func (f *PublicHolidayFactory) WithDate(orgID uuid.UUID, date time.Time) *models.PublicHoliday {
	holiday := f.Create()
	holiday.OrganizationID = orgID
	holiday.Date = date
	return holiday
}

// WorkItemFactory provides methods to create test WorkItem data
type WorkItemFactory struct{}

// NewWorkItemFactory creates a new WorkItemFactory
func NewWorkItemFactory() *WorkItemFactory {
	return &WorkItemFactory{}
}

// Create creates an open test WorkItem due in three days
func (f *WorkItemFactory) Create() *models.WorkItem {
	id := uuid.New()
	now := time.Now().UTC()
	due := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 3)

	return &models.WorkItem{
		BaseModel: models.BaseModel{
			ID:          id,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			Name:        "item-" + id.String()[:8],
			Title:       "Test Work Item",
			Description: "A test work item for testing purposes",
		},
		OrganizationID: uuid.New(),
		AssigneeID:     nil,
		DueDate:        due,
		Status:         models.WorkItemStatusOpen,
		Priority:       models.WorkItemPriorityMedium,
	}
}

// WithOrganization sets the organization ID for the work item
func (f *WorkItemFactory) WithOrganization(orgID uuid.UUID) *models.WorkItem {
	item := f.Create()
	item.OrganizationID = orgID
	return item
}

// WithAssignee sets the assignee for the work item
func (f *WorkItemFactory) WithAssignee(orgID, workerID uuid.UUID) *models.WorkItem {
	item := f.Create()
	item.OrganizationID = orgID
	item.AssigneeID = &workerID
	return item
}

// WithDueDate sets an explicit due date for the work item
func (f *WorkItemFactory) WithDueDate(orgID uuid.UUID, due time.Time) *models.WorkItem {
	item := f.Create()
	item.OrganizationID = orgID
	item.DueDate = due
	return item
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization   *OrganizationFactory
	Worker         *WorkerFactory
	Team           *TeamFactory
	TeamMembership *TeamMembershipFactory
	ExternalTeam   *ExternalTeamFactory
	CalendarBlock  *CalendarBlockFactory
	LeaveRequest   *LeaveRequestFactory
	PublicHoliday  *PublicHolidayFactory
	WorkItem       *WorkItemFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:   NewOrganizationFactory(),
		Worker:         NewWorkerFactory(),
		Team:           NewTeamFactory(),
		TeamMembership: NewTeamMembershipFactory(),
		ExternalTeam:   NewExternalTeamFactory(),
		CalendarBlock:  NewCalendarBlockFactory(),
		LeaveRequest:   NewLeaveRequestFactory(),
		PublicHoliday:  NewPublicHolidayFactory(),
		WorkItem:       NewWorkItemFactory(),
	}
}

// CreateFullOrganizationHierarchy creates a complete organization with a team,
// a worker and the membership linking them. Nothing is persisted; callers save
// the returned records in FK order.
func (fs *FactorySet) CreateFullOrganizationHierarchy() (*models.Organization, *models.Team, *models.Worker, *models.TeamMembership) {
	org := fs.Organization.Create()
	team := fs.Team.WithOrganization(org.ID)
	worker := fs.Worker.WithOrganization(org.ID)
	membership := fs.TeamMembership.Create(team.ID, worker.ID)
	return org, team, worker, membership
}
