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

// PublicHolidayService handles business logic for public holidays
type PublicHolidayService struct {
	repo             repository.PublicHolidayRepositoryInterface
	organizationRepo repository.OrganizationRepositoryInterface
	validator        *validator.Validate
}

// NewPublicHolidayService creates a new public holiday service
func NewPublicHolidayService(
	repo repository.PublicHolidayRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	validator *validator.Validate,
) *PublicHolidayService {
	return &PublicHolidayService{
		repo:             repo,
		organizationRepo: orgRepo,
		validator:        validator,
	}
}

// CreatePublicHolidayRequest represents the request to create a public holiday
type CreatePublicHolidayRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Title          string    `json:"title" validate:"required,max=100"`
	Date           time.Time `json:"date" validate:"required"`
	Region         *string   `json:"region" validate:"omitempty,max=100"`
}

// UpdatePublicHolidayRequest represents the request to update a public holiday
type UpdatePublicHolidayRequest struct {
	Title  *string    `json:"title" validate:"omitempty,max=100"`
	Date   *time.Time `json:"date"`
	Region *string    `json:"region" validate:"omitempty,max=100"`
}

// PublicHolidayResponse represents the response for public holiday operations
type PublicHolidayResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	Region         *string   `json:"region,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// PublicHolidayListResponse represents a paginated list of public holidays
type PublicHolidayListResponse struct {
	Holidays []PublicHolidayResponse `json:"holidays"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Create creates a new public holiday
func (s *PublicHolidayService) Create(req *CreatePublicHolidayRequest) (*PublicHolidayResponse, error) {
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

	// Check if a holiday already exists on this date for the same region
	day := req.Date.Truncate(24 * time.Hour)
	existing, err := s.repo.ListInRange(req.OrganizationID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing holidays: %w", err)
	}
	for i := range existing {
		if sameRegion(existing[i].Region, req.Region) {
			return nil, apperrors.ErrPublicHolidayExists
		}
	}

	// Create public holiday
	holiday := &models.PublicHoliday{
		BaseModel: models.BaseModel{
			Name:  clip(req.Title, 40),
			Title: req.Title,
		},
		OrganizationID: req.OrganizationID,
		Date:           req.Date,
		Region:         req.Region,
	}

	if err := s.repo.Create(holiday); err != nil {
		return nil, fmt.Errorf("failed to create public holiday: %w", err)
	}

	return s.toResponse(holiday), nil
}

// GetByID retrieves a public holiday by ID
func (s *PublicHolidayService) GetByID(id uuid.UUID) (*PublicHolidayResponse, error) {
	holiday, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPublicHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get public holiday: %w", err)
	}

	return s.toResponse(holiday), nil
}

// GetByOrganization retrieves public holidays for an organization with pagination
func (s *PublicHolidayService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*PublicHolidayListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	holidays, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get public holidays: %w", err)
	}

	responses := make([]PublicHolidayResponse, len(holidays))
	for i := range holidays {
		responses[i] = *s.toResponse(&holidays[i])
	}

	return &PublicHolidayListResponse{
		Holidays: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListInRange retrieves the public holidays of an organization falling
// inside the given date range
func (s *PublicHolidayService) ListInRange(organizationID uuid.UUID, rangeStart, rangeEnd time.Time) ([]PublicHolidayResponse, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	holidays, err := s.repo.ListInRange(organizationID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}

	responses := make([]PublicHolidayResponse, len(holidays))
	for i := range holidays {
		responses[i] = *s.toResponse(&holidays[i])
	}

	return responses, nil
}

// Update updates a public holiday
func (s *PublicHolidayService) Update(id uuid.UUID, req *UpdatePublicHolidayRequest) (*PublicHolidayResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Get existing public holiday
	holiday, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPublicHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get public holiday: %w", err)
	}

	// Update fields
	if req.Title != nil {
		holiday.Title = *req.Title
		holiday.Name = clip(*req.Title, 40)
	}
	if req.Date != nil {
		holiday.Date = *req.Date
	}
	if req.Region != nil {
		holiday.Region = req.Region
	}

	if err := s.repo.Update(holiday); err != nil {
		return nil, fmt.Errorf("failed to update public holiday: %w", err)
	}

	return s.toResponse(holiday), nil
}

// Delete deletes a public holiday
func (s *PublicHolidayService) Delete(id uuid.UUID) error {
	// Check if public holiday exists
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPublicHolidayNotFound
		}
		return fmt.Errorf("failed to get public holiday: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete public holiday: %w", err)
	}

	return nil
}

// toResponse converts a public holiday model to response
func (s *PublicHolidayService) toResponse(holiday *models.PublicHoliday) *PublicHolidayResponse {
	return &PublicHolidayResponse{
		ID:             holiday.ID,
		OrganizationID: holiday.OrganizationID,
		Title:          holiday.Title,
		Date:           holiday.Date.Format("2006-01-02"),
		Region:         holiday.Region,
		CreatedAt:      holiday.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      holiday.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// sameRegion reports whether two optional region values refer to the same
// region. Two nil regions match, a nil and a set region do not.
func sameRegion(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
