package repository

import (
	"time"

	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByDomain(domain string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	GetWithWorkers(id uuid.UUID) (*models.Organization, error)
	GetWithTeams(id uuid.UUID) (*models.Organization, error)
}

// WorkerRepositoryInterface defines the interface for worker repository operations
type WorkerRepositoryInterface interface {
	Create(worker *models.Worker) error
	GetByID(id uuid.UUID) (*models.Worker, error)
	GetByIDs(ids []uuid.UUID) ([]models.Worker, error)
	GetByEmail(email string) (*models.Worker, error)
	GetByExternalAdminID(adminID string) (*models.Worker, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Worker, int64, error)
	GetActiveByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Worker, int64, error)
	GetMappedByOrganization(orgID uuid.UUID) ([]models.Worker, error)
	SetExternalAdminID(workerID uuid.UUID, adminID *string) error
	Update(worker *models.Worker) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(orgID uuid.UUID, name string) (*models.Team, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Team, int64, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetMemberWorkerIDs(teamID uuid.UUID) ([]uuid.UUID, error)
	AddMember(membership *models.TeamMembership) error
	RemoveMember(teamID, workerID uuid.UUID) error
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// ExternalTeamRepositoryInterface defines the interface for external team snapshot operations
type ExternalTeamRepositoryInterface interface {
	Upsert(team *models.ExternalTeam) error
	GetByExternalID(externalID string) (*models.ExternalTeam, error)
	GetAll(limit, offset int) ([]models.ExternalTeam, int64, error)
	DeleteSyncedBefore(cutoff time.Time) (int64, error)
}

// CalendarBlockRepositoryInterface defines the interface for calendar block repository operations
type CalendarBlockRepositoryInterface interface {
	Create(block *models.CalendarBlock) error
	GetByID(id uuid.UUID) (*models.CalendarBlock, error)
	GetByWorkerID(workerID uuid.UUID, limit, offset int) ([]models.CalendarBlock, int64, error)
	ListInRange(workerIDs []uuid.UUID, rangeStart, rangeEnd time.Time) ([]models.CalendarBlock, error)
	Update(block *models.CalendarBlock) error
	Delete(id uuid.UUID) error
}

// LeaveRequestRepositoryInterface defines the interface for leave request repository operations
type LeaveRequestRepositoryInterface interface {
	Create(leave *models.LeaveRequest) error
	GetByID(id uuid.UUID) (*models.LeaveRequest, error)
	GetByWorkerID(workerID uuid.UUID, limit, offset int) ([]models.LeaveRequest, int64, error)
	ListInRange(workerIDs []uuid.UUID, rangeStart, rangeEnd time.Time, statuses []models.LeaveStatus) ([]models.LeaveRequest, error)
	ListApprovedInRange(workerIDs []uuid.UUID, rangeStart, rangeEnd time.Time) ([]models.LeaveRequest, error)
	UpdateStatus(id uuid.UUID, status models.LeaveStatus) error
	Update(leave *models.LeaveRequest) error
	Delete(id uuid.UUID) error
}

// PublicHolidayRepositoryInterface defines the interface for public holiday repository operations
type PublicHolidayRepositoryInterface interface {
	Create(holiday *models.PublicHoliday) error
	GetByID(id uuid.UUID) (*models.PublicHoliday, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.PublicHoliday, int64, error)
	ListInRange(orgID uuid.UUID, rangeStart, rangeEnd time.Time) ([]models.PublicHoliday, error)
	Update(holiday *models.PublicHoliday) error
	Delete(id uuid.UUID) error
}

// WorkItemRepositoryInterface defines the interface for work item repository operations
type WorkItemRepositoryInterface interface {
	Create(item *models.WorkItem) error
	GetByID(id uuid.UUID) (*models.WorkItem, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.WorkItem, int64, error)
	ListDueInRange(orgID uuid.UUID, rangeStart, rangeEnd time.Time, assigneeIDs []uuid.UUID) ([]models.WorkItem, error)
	Update(item *models.WorkItem) error
	Delete(id uuid.UUID) error
}
