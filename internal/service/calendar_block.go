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
	"github.com/teambition/rrule-go"
	"gorm.io/gorm"
)

// CalendarBlockService handles business logic for worker calendar blocks
type CalendarBlockService struct {
	repo       repository.CalendarBlockRepositoryInterface
	workerRepo repository.WorkerRepositoryInterface
	validator  *validator.Validate
}

// NewCalendarBlockService creates a new calendar block service
func NewCalendarBlockService(
	repo repository.CalendarBlockRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	validator *validator.Validate,
) *CalendarBlockService {
	return &CalendarBlockService{
		repo:       repo,
		workerRepo: workerRepo,
		validator:  validator,
	}
}

// CreateCalendarBlockRequest represents the request to create a calendar block
type CreateCalendarBlockRequest struct {
	WorkerID           uuid.UUID `json:"worker_id" validate:"required"`
	Title              string    `json:"title" validate:"required,max=100"`
	Description        string    `json:"description" validate:"max=200"`
	BlockType          string    `json:"block_type" validate:"omitempty,oneof=meeting personal training maintenance" example:"meeting" default:"meeting"` // Optional: defaults to "meeting" if not provided
	StartTime          time.Time `json:"start_time" validate:"required"`
	EndTime            time.Time `json:"end_time" validate:"required"`
	AllDay             bool      `json:"all_day"`
	RecurrenceRule     string    `json:"recurrence_rule" validate:"max=255"`
	Visibility         string    `json:"visibility" validate:"omitempty,oneof=public private" example:"public" default:"public"` // Optional: defaults to "public" if not provided
	BlocksAvailability *bool     `json:"blocks_availability" example:"true" default:"true"`                                      // Optional: defaults to true if not provided
}

// UpdateCalendarBlockRequest represents the request to update a calendar block
type UpdateCalendarBlockRequest struct {
	Title              *string    `json:"title" validate:"omitempty,max=100"`
	Description        *string    `json:"description" validate:"omitempty,max=200"`
	BlockType          *string    `json:"block_type" validate:"omitempty,oneof=meeting personal training maintenance"`
	StartTime          *time.Time `json:"start_time"`
	EndTime            *time.Time `json:"end_time"`
	AllDay             *bool      `json:"all_day"`
	RecurrenceRule     *string    `json:"recurrence_rule" validate:"omitempty,max=255"`
	Visibility         *string    `json:"visibility" validate:"omitempty,oneof=public private"`
	BlocksAvailability *bool      `json:"blocks_availability"`
}

// CalendarBlockResponse represents the response for calendar block operations
type CalendarBlockResponse struct {
	ID                 uuid.UUID `json:"id"`
	WorkerID           uuid.UUID `json:"worker_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	BlockType          string    `json:"block_type"`
	StartTime          string    `json:"start_time"`
	EndTime            string    `json:"end_time"`
	AllDay             bool      `json:"all_day"`
	RecurrenceRule     string    `json:"recurrence_rule,omitempty"`
	Visibility         string    `json:"visibility"`
	BlocksAvailability bool      `json:"blocks_availability"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at"`
}

// CalendarBlockListResponse represents a paginated list of calendar blocks
type CalendarBlockListResponse struct {
	Blocks   []CalendarBlockResponse `json:"blocks"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Create creates a new calendar block
func (s *CalendarBlockService) Create(req *CreateCalendarBlockRequest) (*CalendarBlockResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate time range
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	// Validate recurrence rule if provided
	if req.RecurrenceRule != "" {
		if _, err := rrule.StrToRRule(req.RecurrenceRule); err != nil {
			return nil, apperrors.NewValidationError("recurrence_rule", "must be a valid recurrence rule")
		}
	}

	// Validate worker exists
	if _, err := s.workerRepo.GetByID(req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to verify worker: %w", err)
	}

	// Set default values
	blockType := models.BlockTypeMeeting
	if req.BlockType != "" {
		blockType = models.BlockType(req.BlockType)
	}
	visibility := models.BlockVisibilityPublic
	if req.Visibility != "" {
		visibility = models.BlockVisibility(req.Visibility)
	}
	blocksAvailability := true
	if req.BlocksAvailability != nil {
		blocksAvailability = *req.BlocksAvailability
	}

	// Create calendar block
	block := &models.CalendarBlock{
		BaseModel: models.BaseModel{
			Name:        clip(string(blockType), 40),
			Title:       req.Title,
			Description: req.Description,
		},
		WorkerID:           req.WorkerID,
		BlockType:          blockType,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		AllDay:             req.AllDay,
		RecurrenceRule:     req.RecurrenceRule,
		Visibility:         visibility,
		BlocksAvailability: blocksAvailability,
	}

	if err := s.repo.Create(block); err != nil {
		return nil, fmt.Errorf("failed to create calendar block: %w", err)
	}

	return s.toResponse(block), nil
}

// GetByID retrieves a calendar block by ID
func (s *CalendarBlockService) GetByID(id uuid.UUID) (*CalendarBlockResponse, error) {
	block, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarBlockNotFound
		}
		return nil, fmt.Errorf("failed to get calendar block: %w", err)
	}

	return s.toResponse(block), nil
}

// GetByWorker retrieves calendar blocks for a worker with pagination
func (s *CalendarBlockService) GetByWorker(workerID uuid.UUID, page, pageSize int) (*CalendarBlockListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	blocks, total, err := s.repo.GetByWorkerID(workerID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar blocks: %w", err)
	}

	responses := make([]CalendarBlockResponse, len(blocks))
	for i := range blocks {
		responses[i] = *s.toResponse(&blocks[i])
	}

	return &CalendarBlockListResponse{
		Blocks:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a calendar block
func (s *CalendarBlockService) Update(id uuid.UUID, req *UpdateCalendarBlockRequest) (*CalendarBlockResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Get existing calendar block
	block, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarBlockNotFound
		}
		return nil, fmt.Errorf("failed to get calendar block: %w", err)
	}

	// Update fields
	if req.Title != nil {
		block.Title = *req.Title
	}
	if req.Description != nil {
		block.Description = *req.Description
	}
	if req.BlockType != nil {
		block.BlockType = models.BlockType(*req.BlockType)
		block.Name = clip(*req.BlockType, 40)
	}
	if req.StartTime != nil {
		block.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		block.EndTime = *req.EndTime
	}
	if req.AllDay != nil {
		block.AllDay = *req.AllDay
	}
	if req.RecurrenceRule != nil {
		block.RecurrenceRule = *req.RecurrenceRule
	}
	if req.Visibility != nil {
		block.Visibility = models.BlockVisibility(*req.Visibility)
	}
	if req.BlocksAvailability != nil {
		block.BlocksAvailability = *req.BlocksAvailability
	}

	// Validate time range after applying changes
	if !block.EndTime.After(block.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	// Validate recurrence rule after applying changes
	if block.RecurrenceRule != "" {
		if _, err := rrule.StrToRRule(block.RecurrenceRule); err != nil {
			return nil, apperrors.NewValidationError("recurrence_rule", "must be a valid recurrence rule")
		}
	}

	if err := s.repo.Update(block); err != nil {
		return nil, fmt.Errorf("failed to update calendar block: %w", err)
	}

	return s.toResponse(block), nil
}

// Delete deletes a calendar block
func (s *CalendarBlockService) Delete(id uuid.UUID) error {
	// Check if calendar block exists
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCalendarBlockNotFound
		}
		return fmt.Errorf("failed to get calendar block: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete calendar block: %w", err)
	}

	return nil
}

// toResponse converts a calendar block model to response
func (s *CalendarBlockService) toResponse(block *models.CalendarBlock) *CalendarBlockResponse {
	return &CalendarBlockResponse{
		ID:                 block.ID,
		WorkerID:           block.WorkerID,
		Title:              block.Title,
		Description:        block.Description,
		BlockType:          string(block.BlockType),
		StartTime:          block.StartTime.Format("2006-01-02T15:04:05Z07:00"),
		EndTime:            block.EndTime.Format("2006-01-02T15:04:05Z07:00"),
		AllDay:             block.AllDay,
		RecurrenceRule:     block.RecurrenceRule,
		Visibility:         string(block.Visibility),
		BlocksAvailability: block.BlocksAvailability,
		CreatedAt:          block.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          block.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
