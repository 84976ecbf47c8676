package service

import (
	"context"
	"time"

	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FieldServiceClientInterface defines the interface for the field service platform client
type FieldServiceClientInterface interface {
	ListTasks(ctx context.Context, filters FieldTaskFilters) ([]FieldTask, error)
	ListTeams(ctx context.Context) ([]FieldTeam, error)
	ListAdministrators(ctx context.Context) ([]FieldAdmin, error)
}

// CalendarServiceInterface defines the interface for the combined calendar service
type CalendarServiceInterface interface {
	Combined(ctx context.Context, params CombinedParams) (*CombinedCalendar, error)
}

// AvailabilityServiceInterface defines the interface for the availability service
type AvailabilityServiceInterface interface {
	ForWorker(ctx context.Context, workerID uuid.UUID, params AvailabilityParams) ([]Slot, error)
	ForTeam(ctx context.Context, teamID uuid.UUID, params AvailabilityParams) (*TeamAvailability, error)
}

// FeedServiceInterface defines the interface for the calendar feed service
type FeedServiceInterface interface {
	ICSFeed(ctx context.Context, params CombinedParams) (string, error)
}

// DirectoryServiceInterface defines the interface for directory lookups
type DirectoryServiceInterface interface {
	SearchByName(name string) ([]DirectoryEntry, error)
}

// IdentityServiceInterface defines the interface for identity resolution
type IdentityServiceInterface interface {
	ResolveEffectiveWorkerIDs(workerIDs []uuid.UUID, teamIDs []uuid.UUID) ([]uuid.UUID, error)
	ResolveExternalAdminIDs(workerIDs []uuid.UUID) ([]string, error)
	MapExternalAdminIDToWorker(adminID string) (*models.Worker, error)
}

// ExternalTeamServiceInterface defines the interface for external team snapshots
type ExternalTeamServiceInterface interface {
	List(page, pageSize int) (*ExternalTeamListResponse, error)
	GetByExternalID(externalID string) (*ExternalTeamResponse, error)
	Sync(ctx context.Context) (*ExternalTeamSyncResult, error)
	Administrators(ctx context.Context) ([]FieldAdmin, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetByName(name string) (*OrganizationResponse, error)
	GetByDomain(domain string) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
	GetWithWorkers(id uuid.UUID) (*models.Organization, error)
	GetWithTeams(id uuid.UUID) (*models.Organization, error)
}

// WorkerServiceInterface defines the interface for worker service
type WorkerServiceInterface interface {
	CreateWorker(req *CreateWorkerRequest) (*WorkerResponse, error)
	GetWorkerByID(id uuid.UUID) (*WorkerResponse, error)
	GetWorkersByOrganization(organizationID uuid.UUID, limit, offset int) ([]WorkerResponse, int64, error)
	GetActiveWorkers(organizationID uuid.UUID, limit, offset int) ([]WorkerResponse, int64, error)
	GetMappedWorkers(organizationID uuid.UUID) ([]WorkerResponse, error)
	UpdateWorker(id uuid.UUID, req *UpdateWorkerRequest) (*WorkerResponse, error)
	SetExternalAdminID(id uuid.UUID, adminID *string) (*WorkerResponse, error)
	DeleteWorker(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetByName(organizationID uuid.UUID, name string) (*TeamResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	AddMember(teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(teamID, workerID uuid.UUID) error
	ListMembers(id uuid.UUID) ([]TeamMemberResponse, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
}

// CalendarBlockServiceInterface defines the interface for calendar block service
type CalendarBlockServiceInterface interface {
	Create(req *CreateCalendarBlockRequest) (*CalendarBlockResponse, error)
	GetByID(id uuid.UUID) (*CalendarBlockResponse, error)
	GetByWorker(workerID uuid.UUID, page, pageSize int) (*CalendarBlockListResponse, error)
	Update(id uuid.UUID, req *UpdateCalendarBlockRequest) (*CalendarBlockResponse, error)
	Delete(id uuid.UUID) error
}

// LeaveRequestServiceInterface defines the interface for leave request service
type LeaveRequestServiceInterface interface {
	Create(req *CreateLeaveRequestRequest) (*LeaveRequestResponse, error)
	GetByID(id uuid.UUID) (*LeaveRequestResponse, error)
	GetByWorker(workerID uuid.UUID, page, pageSize int) (*LeaveRequestListResponse, error)
	Update(id uuid.UUID, req *UpdateLeaveRequestRequest) (*LeaveRequestResponse, error)
	Approve(id uuid.UUID) (*LeaveRequestResponse, error)
	Reject(id uuid.UUID) (*LeaveRequestResponse, error)
	Delete(id uuid.UUID) error
}

// PublicHolidayServiceInterface defines the interface for public holiday service
type PublicHolidayServiceInterface interface {
	Create(req *CreatePublicHolidayRequest) (*PublicHolidayResponse, error)
	GetByID(id uuid.UUID) (*PublicHolidayResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*PublicHolidayListResponse, error)
	ListInRange(organizationID uuid.UUID, rangeStart, rangeEnd time.Time) ([]PublicHolidayResponse, error)
	Update(id uuid.UUID, req *UpdatePublicHolidayRequest) (*PublicHolidayResponse, error)
	Delete(id uuid.UUID) error
}

// WorkItemServiceInterface defines the interface for work item service
type WorkItemServiceInterface interface {
	Create(req *CreateWorkItemRequest) (*WorkItemResponse, error)
	GetByID(id uuid.UUID) (*WorkItemResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*WorkItemListResponse, error)
	Update(id uuid.UUID, req *UpdateWorkItemRequest) (*WorkItemResponse, error)
	Delete(id uuid.UUID) error
}
