package service

import (
	"errors"
	"fmt"
	"time"

	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveRequestService handles business logic for leave requests
type LeaveRequestService struct {
	repo       repository.LeaveRequestRepositoryInterface
	workerRepo repository.WorkerRepositoryInterface
	validator  *validator.Validate
}

// NewLeaveRequestService creates a new leave request service
func NewLeaveRequestService(
	repo repository.LeaveRequestRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	validator *validator.Validate,
) *LeaveRequestService {
	return &LeaveRequestService{
		repo:       repo,
		workerRepo: workerRepo,
		validator:  validator,
	}
}

// CreateLeaveRequestRequest represents the request to create a leave request
type CreateLeaveRequestRequest struct {
	WorkerID    uuid.UUID `json:"worker_id" validate:"required"`
	LeaveType   string    `json:"leave_type" validate:"omitempty,oneof=vacation sick parental unpaid" example:"vacation" default:"vacation"` // Optional: defaults to "vacation" if not provided
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Description string    `json:"description" validate:"max=200"`
}

// UpdateLeaveRequestRequest represents the request to update a pending leave request
type UpdateLeaveRequestRequest struct {
	LeaveType   *string    `json:"leave_type" validate:"omitempty,oneof=vacation sick parental unpaid"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description" validate:"omitempty,max=200"`
}

// LeaveRequestResponse represents the response for leave request operations
type LeaveRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	WorkerID    uuid.UUID `json:"worker_id"`
	LeaveType   string    `json:"leave_type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// LeaveRequestListResponse represents a paginated list of leave requests
type LeaveRequestListResponse struct {
	LeaveRequests []LeaveRequestResponse `json:"leave_requests"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new leave request in pending status
func (s *LeaveRequestService) Create(req *CreateLeaveRequestRequest) (*LeaveRequestResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate date range
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	// Validate worker exists
	if _, err := s.workerRepo.GetByID(req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to verify worker: %w", err)
	}

	// Set default leave type
	leaveType := models.LeaveTypeVacation
	if req.LeaveType != "" {
		leaveType = models.LeaveType(req.LeaveType)
	}

	// Create leave request; every new request starts out pending
	leave := &models.LeaveRequest{
		BaseModel: models.BaseModel{
			Name:        clip(string(leaveType), 40),
			Title:       clip(string(leaveType)+" leave", 100),
			Description: req.Description,
		},
		WorkerID:  req.WorkerID,
		LeaveType: leaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.LeaveStatusPending,
	}

	if err := s.repo.Create(leave); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	return s.toResponse(leave), nil
}

// GetByID retrieves a leave request by ID
func (s *LeaveRequestService) GetByID(id uuid.UUID) (*LeaveRequestResponse, error) {
	leave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return s.toResponse(leave), nil
}

// GetByWorker retrieves leave requests for a worker with pagination
func (s *LeaveRequestService) GetByWorker(workerID uuid.UUID, page, pageSize int) (*LeaveRequestListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	leaves, total, err := s.repo.GetByWorkerID(workerID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave requests: %w", err)
	}

	responses := make([]LeaveRequestResponse, len(leaves))
	for i := range leaves {
		responses[i] = *s.toResponse(&leaves[i])
	}

	return &LeaveRequestListResponse{
		LeaveRequests: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update updates a leave request that has not been decided yet
func (s *LeaveRequestService) Update(id uuid.UUID, req *UpdateLeaveRequestRequest) (*LeaveRequestResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Get existing leave request
	leave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	// Only pending requests can be edited
	if leave.Status != models.LeaveStatusPending {
		return nil, apperrors.ErrLeaveAlreadyDecided
	}

	// Update fields
	if req.LeaveType != nil {
		leave.LeaveType = models.LeaveType(*req.LeaveType)
		leave.Name = clip(*req.LeaveType, 40)
		leave.Title = clip(*req.LeaveType+" leave", 100)
	}
	if req.StartDate != nil {
		leave.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		leave.EndDate = *req.EndDate
	}
	if req.Description != nil {
		leave.Description = *req.Description
	}

	// Validate date range after applying changes
	if leave.EndDate.Before(leave.StartDate) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if err := s.repo.Update(leave); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	return s.toResponse(leave), nil
}

// Approve approves a pending leave request
func (s *LeaveRequestService) Approve(id uuid.UUID) (*LeaveRequestResponse, error) {
	return s.decide(id, models.LeaveStatusApproved)
}

// Reject rejects a pending leave request
func (s *LeaveRequestService) Reject(id uuid.UUID) (*LeaveRequestResponse, error) {
	return s.decide(id, models.LeaveStatusRejected)
}

// decide transitions a pending leave request to its final status. A request
// that has already been approved or rejected cannot be decided again.
func (s *LeaveRequestService) decide(id uuid.UUID, status models.LeaveStatus) (*LeaveRequestResponse, error) {
	leave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	if leave.Status != models.LeaveStatusPending {
		return nil, apperrors.ErrLeaveAlreadyDecided
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to update leave request status: %w", err)
	}

	leave.Status = status
	return s.toResponse(leave), nil
}

// Delete deletes a leave request
func (s *LeaveRequestService) Delete(id uuid.UUID) error {
	// Check if leave request exists
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to get leave request: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	return nil
}

// toResponse converts a leave request model to response
func (s *LeaveRequestService) toResponse(leave *models.LeaveRequest) *LeaveRequestResponse {
	return &LeaveRequestResponse{
		ID:          leave.ID,
		WorkerID:    leave.WorkerID,
		LeaveType:   string(leave.LeaveType),
		StartDate:   leave.StartDate.Format("2006-01-02"),
		EndDate:     leave.EndDate.Format("2006-01-02"),
		Status:      string(leave.Status),
		Description: leave.Description,
		CreatedAt:   leave.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   leave.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
