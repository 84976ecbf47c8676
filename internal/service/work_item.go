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

// WorkItemService handles business logic for internal work items
type WorkItemService struct {
	repo             repository.WorkItemRepositoryInterface
	organizationRepo repository.OrganizationRepositoryInterface
	workerRepo       repository.WorkerRepositoryInterface
	validator        *validator.Validate
}

// NewWorkItemService creates a new work item service
func NewWorkItemService(
	repo repository.WorkItemRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	validator *validator.Validate,
) *WorkItemService {
	return &WorkItemService{
		repo:             repo,
		organizationRepo: orgRepo,
		workerRepo:       workerRepo,
		validator:        validator,
	}
}

// CreateWorkItemRequest represents the request to create a work item
type CreateWorkItemRequest struct {
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	Title          string     `json:"title" validate:"required,max=100"`
	Description    string     `json:"description" validate:"max=200"`
	AssigneeID     *uuid.UUID `json:"assignee_id"`
	DueDate        time.Time  `json:"due_date" validate:"required"`
	Status         string     `json:"status" validate:"omitempty,oneof=open in_progress done cancelled" example:"open" default:"open"` // Optional: defaults to "open" if not provided
	Priority       string     `json:"priority" validate:"omitempty,oneof=low medium high urgent" example:"medium" default:"medium"`    // Optional: defaults to "medium" if not provided
}

// UpdateWorkItemRequest represents the request to update a work item
type UpdateWorkItemRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=200"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status" validate:"omitempty,oneof=open in_progress done cancelled"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

// WorkItemResponse represents the response for work item operations
type WorkItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	AssigneeID     *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate        string     `json:"due_date"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// WorkItemListResponse represents a paginated list of work items
type WorkItemListResponse struct {
	WorkItems []WorkItemResponse `json:"work_items"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new work item
func (s *WorkItemService) Create(req *CreateWorkItemRequest) (*WorkItemResponse, error) {
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

	// Validate assignee if provided
	if req.AssigneeID != nil {
		assignee, err := s.workerRepo.GetByID(*req.AssigneeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrWorkerNotFound
			}
			return nil, fmt.Errorf("failed to verify assignee: %w", err)
		}
		if assignee.OrganizationID != req.OrganizationID {
			return nil, apperrors.NewValidationError("assignee_id", "must belong to the same organization")
		}
	}

	// Set default values
	status := models.WorkItemStatusOpen
	if req.Status != "" {
		status = models.WorkItemStatus(req.Status)
	}
	priority := models.WorkItemPriorityMedium
	if req.Priority != "" {
		priority = models.WorkItemPriority(req.Priority)
	}

	// Create work item
	item := &models.WorkItem{
		BaseModel: models.BaseModel{
			Name:        clip(req.Title, 40),
			Title:       req.Title,
			Description: req.Description,
		},
		OrganizationID: req.OrganizationID,
		AssigneeID:     req.AssigneeID,
		DueDate:        req.DueDate,
		Status:         status,
		Priority:       priority,
	}

	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create work item: %w", err)
	}

	return s.toResponse(item), nil
}

// GetByID retrieves a work item by ID
func (s *WorkItemService) GetByID(id uuid.UUID) (*WorkItemResponse, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkItemNotFound
		}
		return nil, fmt.Errorf("failed to get work item: %w", err)
	}

	return s.toResponse(item), nil
}

// GetByOrganization retrieves work items for an organization with pagination
func (s *WorkItemService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*WorkItemListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	items, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get work items: %w", err)
	}

	responses := make([]WorkItemResponse, len(items))
	for i := range items {
		responses[i] = *s.toResponse(&items[i])
	}

	return &WorkItemListResponse{
		WorkItems: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a work item
func (s *WorkItemService) Update(id uuid.UUID, req *UpdateWorkItemRequest) (*WorkItemResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Get existing work item
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkItemNotFound
		}
		return nil, fmt.Errorf("failed to get work item: %w", err)
	}

	// Validate new assignee if provided
	if req.AssigneeID != nil {
		assignee, err := s.workerRepo.GetByID(*req.AssigneeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrWorkerNotFound
			}
			return nil, fmt.Errorf("failed to verify assignee: %w", err)
		}
		if assignee.OrganizationID != item.OrganizationID {
			return nil, apperrors.NewValidationError("assignee_id", "must belong to the same organization")
		}
	}

	// Update fields
	if req.Title != nil {
		item.Title = *req.Title
		item.Name = clip(*req.Title, 40)
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.AssigneeID != nil {
		item.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		item.DueDate = *req.DueDate
	}
	if req.Status != nil {
		item.Status = models.WorkItemStatus(*req.Status)
	}
	if req.Priority != nil {
		item.Priority = models.WorkItemPriority(*req.Priority)
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update work item: %w", err)
	}

	return s.toResponse(item), nil
}

// Delete deletes a work item
func (s *WorkItemService) Delete(id uuid.UUID) error {
	// Check if work item exists
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkItemNotFound
		}
		return fmt.Errorf("failed to get work item: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete work item: %w", err)
	}

	return nil
}

// toResponse converts a work item model to response
func (s *WorkItemService) toResponse(item *models.WorkItem) *WorkItemResponse {
	return &WorkItemResponse{
		ID:             item.ID,
		OrganizationID: item.OrganizationID,
		Title:          item.Title,
		Description:    item.Description,
		AssigneeID:     item.AssigneeID,
		DueDate:        item.DueDate.Format("2006-01-02"),
		Status:         string(item.Status),
		Priority:       string(item.Priority),
		CreatedAt:      item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      item.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
