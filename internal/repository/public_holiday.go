package repository

import (
	"time"

	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicHolidayRepository handles database operations for public holidays
type PublicHolidayRepository struct {
	db *gorm.DB
}

// NewPublicHolidayRepository creates a new public holiday repository
func NewPublicHolidayRepository(db *gorm.DB) *PublicHolidayRepository {
	return &PublicHolidayRepository{db: db}
}

// Create creates a new public holiday
func (r *PublicHolidayRepository) Create(holiday *models.PublicHoliday) error {
	return r.db.Create(holiday).Error
}

// GetByID retrieves a public holiday by ID
func (r *PublicHolidayRepository) GetByID(id uuid.UUID) (*models.PublicHoliday, error) {
	var holiday models.PublicHoliday
	err := r.db.First(&holiday, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

// GetByOrganizationID retrieves all public holidays for an organization with pagination
func (r *PublicHolidayRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.PublicHoliday, int64, error) {
	var holidays []models.PublicHoliday
	var total int64

	// Get total count
	if err := r.db.Model(&models.PublicHoliday{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("organization_id = ?", orgID).Limit(limit).Offset(offset).Order("date").Find(&holidays).Error
	if err != nil {
		return nil, 0, err
	}

	return holidays, total, nil
}

// ListInRange retrieves the organization's holidays falling inside the
// inclusive date window
func (r *PublicHolidayRepository) ListInRange(orgID uuid.UUID, rangeStart, rangeEnd time.Time) ([]models.PublicHoliday, error) {
	var holidays []models.PublicHoliday
	err := r.db.
		Where("organization_id = ?", orgID).
		Where("date >= ? AND date <= ?", rangeStart, rangeEnd).
		Order("date").
		Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	return holidays, nil
}

// Update updates a public holiday
func (r *PublicHolidayRepository) Update(holiday *models.PublicHoliday) error {
	return r.db.Save(holiday).Error
}

// Delete deletes a public holiday
func (r *PublicHolidayRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PublicHoliday{}, "id = ?", id).Error
}
