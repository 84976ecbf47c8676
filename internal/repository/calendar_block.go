package repository

import (
	"time"

	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarBlockRepository handles database operations for calendar blocks
type CalendarBlockRepository struct {
	db *gorm.DB
}

// NewCalendarBlockRepository creates a new calendar block repository
func NewCalendarBlockRepository(db *gorm.DB) *CalendarBlockRepository {
	return &CalendarBlockRepository{db: db}
}

// Create creates a new calendar block
func (r *CalendarBlockRepository) Create(block *models.CalendarBlock) error {
	return r.db.Create(block).Error
}

// GetByID retrieves a calendar block by ID
func (r *CalendarBlockRepository) GetByID(id uuid.UUID) (*models.CalendarBlock, error) {
	var block models.CalendarBlock
	err := r.db.First(&block, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// GetByWorkerID retrieves all calendar blocks for a worker with pagination
func (r *CalendarBlockRepository) GetByWorkerID(workerID uuid.UUID, limit, offset int) ([]models.CalendarBlock, int64, error) {
	var blocks []models.CalendarBlock
	var total int64

	// Get total count
	if err := r.db.Model(&models.CalendarBlock{}).Where("worker_id = ?", workerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("worker_id = ?", workerID).Limit(limit).Offset(offset).Order("start_time").Find(&blocks).Error
	if err != nil {
		return nil, 0, err
	}

	return blocks, total, nil
}

// ListInRange retrieves the workers' blocks relevant to a query window:
// one-off blocks overlapping it, plus recurring blocks whose series started
// before the window ends (their occurrences inside the window are derived
// later from the recurrence rule).
func (r *CalendarBlockRepository) ListInRange(workerIDs []uuid.UUID, rangeStart, rangeEnd time.Time) ([]models.CalendarBlock, error) {
	if len(workerIDs) == 0 {
		return []models.CalendarBlock{}, nil
	}

	var blocks []models.CalendarBlock
	err := r.db.
		Where("worker_id IN ?", workerIDs).
		Where("(start_time < ? AND end_time > ?) OR (recurrence_rule <> '' AND start_time < ?)",
			rangeEnd, rangeStart, rangeEnd).
		Order("start_time").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// Update updates a calendar block
func (r *CalendarBlockRepository) Update(block *models.CalendarBlock) error {
	return r.db.Save(block).Error
}

// Delete deletes a calendar block
func (r *CalendarBlockRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CalendarBlock{}, "id = ?", id).Error
}
