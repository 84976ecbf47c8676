package service

import (
	"fmt"
	"strings"

	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// WorkerService handles business logic for workers
type WorkerService struct {
	repo      repository.WorkerRepositoryInterface
	validator *validator.Validate
}

// NewWorkerService creates a new worker service
func NewWorkerService(repo repository.WorkerRepositoryInterface, validator *validator.Validate) *WorkerService {
	return &WorkerService{
		repo:      repo,
		validator: validator,
	}
}

// CreateWorkerRequest represents the data needed to create a worker
type CreateWorkerRequest struct {
	OrganizationID  uuid.UUID `json:"organization_id" validate:"required"`
	FirstName       string    `json:"first_name" validate:"required,max=100"`
	LastName        string    `json:"last_name" validate:"required,max=100"`
	Email           string    `json:"email" validate:"required,email,max=255"`
	PhoneNumber     string    `json:"phone_number" validate:"max=20"`
	ExternalAdminID *string   `json:"external_admin_id" validate:"omitempty,max=64"`
	IsActive        *bool     `json:"is_active" example:"true" default:"true"` // Optional: defaults to true if not provided
}

// UpdateWorkerRequest represents the data needed to update a worker
type UpdateWorkerRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	IsActive    *bool   `json:"is_active"`
}

// SetAdminMappingRequest represents the request to link a worker to its
// administrator identity in the field service platform. A null admin_id
// clears the mapping.
type SetAdminMappingRequest struct {
	AdminID *string `json:"admin_id" validate:"omitempty,max=64"`
}

// WorkerResponse represents the response data for a worker
type WorkerResponse struct {
	ID              uuid.UUID `json:"id"`
	OrganizationID  uuid.UUID `json:"organization_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phone_number"`
	ExternalAdminID *string   `json:"external_admin_id,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// CreateWorker creates a new worker
func (s *WorkerService) CreateWorker(req *CreateWorkerRequest) (*WorkerResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if email already exists
	existingWorker, err := s.repo.GetByEmail(req.Email)
	if err == nil && existingWorker != nil {
		return nil, apperrors.ErrWorkerExists
	}

	// Check if the admin mapping is already held by another worker
	if req.ExternalAdminID != nil && *req.ExternalAdminID != "" {
		holder, err := s.repo.GetByExternalAdminID(*req.ExternalAdminID)
		if err == nil && holder != nil {
			return nil, apperrors.ErrAdminMappingTaken
		}
	}

	// Set default active status
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	worker := &models.Worker{
		BaseModel: models.BaseModel{
			Name:  workerHandle(req.Email),
			Title: clip(req.FirstName+" "+req.LastName, 100),
		},
		OrganizationID:  req.OrganizationID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		ExternalAdminID: req.ExternalAdminID,
		IsActive:        isActive,
	}

	if err := s.repo.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return s.convertToResponse(worker), nil
}

// GetWorkerByID retrieves a worker by ID
func (s *WorkerService) GetWorkerByID(id uuid.UUID) (*WorkerResponse, error) {
	worker, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrWorkerNotFound
	}

	return s.convertToResponse(worker), nil
}

// GetWorkersByOrganization retrieves workers for an organization
func (s *WorkerService) GetWorkersByOrganization(organizationID uuid.UUID, limit, offset int) ([]WorkerResponse, int64, error) {
	workers, total, err := s.repo.GetByOrganizationID(organizationID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get workers: %w", err)
	}

	responses := make([]WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = *s.convertToResponse(&workers[i])
	}

	return responses, total, nil
}

// GetActiveWorkers retrieves active workers for an organization
func (s *WorkerService) GetActiveWorkers(organizationID uuid.UUID, limit, offset int) ([]WorkerResponse, int64, error) {
	workers, total, err := s.repo.GetActiveByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get active workers: %w", err)
	}

	responses := make([]WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = *s.convertToResponse(&workers[i])
	}

	return responses, total, nil
}

// GetMappedWorkers retrieves the workers of an organization that carry an
// admin mapping into the field service platform
func (s *WorkerService) GetMappedWorkers(organizationID uuid.UUID) ([]WorkerResponse, error) {
	workers, err := s.repo.GetMappedByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mapped workers: %w", err)
	}

	responses := make([]WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = *s.convertToResponse(&workers[i])
	}

	return responses, nil
}

// UpdateWorker updates an existing worker
func (s *WorkerService) UpdateWorker(id uuid.UUID, req *UpdateWorkerRequest) (*WorkerResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	worker, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrWorkerNotFound
	}

	// Check email uniqueness if email is being updated
	if req.Email != nil && *req.Email != worker.Email {
		existingWorker, err := s.repo.GetByEmail(*req.Email)
		if err == nil && existingWorker != nil && existingWorker.ID != id {
			return nil, apperrors.ErrWorkerExists
		}
	}

	// Update fields
	if req.FirstName != nil {
		worker.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		worker.LastName = *req.LastName
	}
	if req.Email != nil {
		worker.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		worker.PhoneNumber = *req.PhoneNumber
	}
	if req.IsActive != nil {
		worker.IsActive = *req.IsActive
	}
	worker.Title = clip(worker.FirstName+" "+worker.LastName, 100)

	if err := s.repo.Update(worker); err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	return s.convertToResponse(worker), nil
}

// SetExternalAdminID links a worker to an administrator identity in the
// field service platform, or clears the link when adminID is nil. A mapping
// already held by a different worker is rejected.
func (s *WorkerService) SetExternalAdminID(id uuid.UUID, adminID *string) (*WorkerResponse, error) {
	worker, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrWorkerNotFound
	}

	if adminID != nil {
		trimmed := strings.TrimSpace(*adminID)
		if trimmed == "" {
			adminID = nil
		} else {
			adminID = &trimmed
		}
	}

	if adminID != nil {
		holder, err := s.repo.GetByExternalAdminID(*adminID)
		if err == nil && holder != nil && holder.ID != id {
			return nil, apperrors.ErrAdminMappingTaken
		}
	}

	if err := s.repo.SetExternalAdminID(id, adminID); err != nil {
		return nil, fmt.Errorf("failed to set admin mapping: %w", err)
	}

	worker.ExternalAdminID = adminID
	return s.convertToResponse(worker), nil
}

// DeleteWorker deletes a worker
func (s *WorkerService) DeleteWorker(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrWorkerNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	return nil
}

// convertToResponse converts a worker model to response
func (s *WorkerService) convertToResponse(worker *models.Worker) *WorkerResponse {
	return &WorkerResponse{
		ID:              worker.ID,
		OrganizationID:  worker.OrganizationID,
		FirstName:       worker.FirstName,
		LastName:        worker.LastName,
		FullName:        worker.FullName(),
		Email:           worker.Email,
		PhoneNumber:     worker.PhoneNumber,
		ExternalAdminID: worker.ExternalAdminID,
		IsActive:        worker.IsActive,
		CreatedAt:       worker.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       worker.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// workerHandle derives the short name column from the worker email
func workerHandle(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	return clip(strings.ToLower(local), 40)
}
