package service

import (
	"errors"
	"fmt"

	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and their memberships
type TeamService struct {
	repo             repository.TeamRepositoryInterface
	organizationRepo repository.OrganizationRepositoryInterface
	workerRepo       repository.WorkerRepositoryInterface
	validator        *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:             repo,
		organizationRepo: orgRepo,
		workerRepo:       workerRepo,
		validator:        validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=40"`
	Title          string    `json:"title" validate:"required,max=100"`
	Description    string    `json:"description" validate:"max=200"`
	Email          string    `json:"email" validate:"omitempty,email,max=255"`
	Color          string    `json:"color" validate:"max=20"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description,omitempty" validate:"max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Color       *string `json:"color,omitempty" validate:"omitempty,max=20"`
}

// AddTeamMemberRequest represents the request to add a worker to a team
type AddTeamMemberRequest struct {
	WorkerID uuid.UUID `json:"worker_id" validate:"required"`
	Role     string    `json:"role" validate:"omitempty,oneof=lead dispatcher technician" example:"technician" default:"technician"` // Optional: defaults to "technician" if not provided
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Email          string    `json:"email,omitempty"`
	Color          string    `json:"color,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// TeamMemberResponse represents a single member of a team
type TeamMemberResponse struct {
	WorkerID uuid.UUID `json:"worker_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt string    `json:"joined_at"`
	IsActive bool      `json:"is_active"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate organization exists
	if _, err := s.organizationRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	// Check if team with same name exists in organization
	existingByName, err := s.repo.GetByName(req.OrganizationID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existingByName != nil {
		return nil, apperrors.ErrTeamExists
	}

	// Create team
	team := &models.Team{
		BaseModel: models.BaseModel{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
		},
		OrganizationID: req.OrganizationID,
		Email:          req.Email,
		Color:          req.Color,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByName retrieves a team by name within an organization
func (s *TeamService) GetByName(organizationID uuid.UUID, name string) (*TeamResponse, error) {
	team, err := s.repo.GetByName(organizationID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByOrganization retrieves teams for an organization with pagination
func (s *TeamService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Get existing team
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	// Update fields
	team.Title = req.Title
	team.Description = req.Description
	if req.Email != nil {
		team.Email = *req.Email
	}
	if req.Color != nil {
		team.Color = *req.Color
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete deletes a team
func (s *TeamService) Delete(id uuid.UUID) error {
	// Check if team exists
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// AddMember adds a worker to a team
func (s *TeamService) AddMember(teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate team exists
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	// Validate worker exists
	worker, err := s.workerRepo.GetByID(req.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to verify worker: %w", err)
	}

	// Set default role if not provided
	role := models.TeamRole(req.Role)
	if role == "" {
		role = models.TeamRoleTechnician
	}

	// Check if the worker is already a member
	memberIDs, err := s.repo.GetMemberWorkerIDs(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	for _, memberID := range memberIDs {
		if memberID == req.WorkerID {
			return nil, apperrors.ErrTeamMembershipExists
		}
	}

	membership := &models.TeamMembership{
		BaseModel: models.BaseModel{
			Name:  workerHandle(worker.Email),
			Title: clip(worker.FullName(), 100),
		},
		TeamID:   teamID,
		WorkerID: req.WorkerID,
		Role:     role,
	}

	if err := s.repo.AddMember(membership); err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	return &TeamMemberResponse{
		WorkerID: worker.ID,
		FullName: worker.FullName(),
		Email:    worker.Email,
		Role:     string(role),
		JoinedAt: membership.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		IsActive: worker.IsActive,
	}, nil
}

// RemoveMember removes a worker from a team
func (s *TeamService) RemoveMember(teamID, workerID uuid.UUID) error {
	// Validate team exists
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to verify team: %w", err)
	}

	if err := s.repo.RemoveMember(teamID, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMembershipNotFound
		}
		return fmt.Errorf("failed to remove team member: %w", err)
	}

	return nil
}

// GetWithMembers retrieves a team with its memberships preloaded
func (s *TeamService) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team with members: %w", err)
	}

	return team, nil
}

// ListMembers retrieves the members of a team
func (s *TeamService) ListMembers(id uuid.UUID) ([]TeamMemberResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team with members: %w", err)
	}

	members := make([]TeamMemberResponse, 0, len(team.Memberships))
	for _, membership := range team.Memberships {
		members = append(members, TeamMemberResponse{
			WorkerID: membership.WorkerID,
			FullName: membership.Worker.FullName(),
			Email:    membership.Worker.Email,
			Role:     string(membership.Role),
			JoinedAt: membership.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			IsActive: membership.Worker.IsActive,
		})
	}

	return members, nil
}

// toResponse converts a team model to response
func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:             team.ID,
		OrganizationID: team.OrganizationID,
		Name:           team.Name,
		Title:          team.Title,
		Description:    team.Description,
		Email:          team.Email,
		Color:          team.Color,
		CreatedAt:      team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
