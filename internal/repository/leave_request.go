package repository

import (
	"time"

	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveRequestRepository handles database operations for leave requests
type LeaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *gorm.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

// Create creates a new leave request
func (r *LeaveRequestRepository) Create(leave *models.LeaveRequest) error {
	return r.db.Create(leave).Error
}

// GetByID retrieves a leave request by ID
func (r *LeaveRequestRepository) GetByID(id uuid.UUID) (*models.LeaveRequest, error) {
	var leave models.LeaveRequest
	err := r.db.First(&leave, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// GetByWorkerID retrieves all leave requests for a worker with pagination
func (r *LeaveRequestRepository) GetByWorkerID(workerID uuid.UUID, limit, offset int) ([]models.LeaveRequest, int64, error) {
	var leaves []models.LeaveRequest
	var total int64

	// Get total count
	if err := r.db.Model(&models.LeaveRequest{}).Where("worker_id = ?", workerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("worker_id = ?", workerID).Limit(limit).Offset(offset).Order("start_date DESC").Find(&leaves).Error
	if err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

// ListInRange retrieves the workers' leave requests overlapping the
// inclusive date window, optionally narrowed to a set of statuses
func (r *LeaveRequestRepository) ListInRange(workerIDs []uuid.UUID, rangeStart, rangeEnd time.Time, statuses []models.LeaveStatus) ([]models.LeaveRequest, error) {
	if len(workerIDs) == 0 {
		return []models.LeaveRequest{}, nil
	}

	query := r.db.
		Where("worker_id IN ?", workerIDs).
		Where("start_date <= ? AND end_date >= ?", rangeEnd, rangeStart)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var leaves []models.LeaveRequest
	err := query.Order("start_date").Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

// ListApprovedInRange retrieves the workers' approved leave overlapping the
// inclusive date window. Pending and rejected requests never surface here.
func (r *LeaveRequestRepository) ListApprovedInRange(workerIDs []uuid.UUID, rangeStart, rangeEnd time.Time) ([]models.LeaveRequest, error) {
	if len(workerIDs) == 0 {
		return []models.LeaveRequest{}, nil
	}

	var leaves []models.LeaveRequest
	err := r.db.
		Where("worker_id IN ?", workerIDs).
		Where("status = ?", models.LeaveStatusApproved).
		Where("start_date <= ? AND end_date >= ?", rangeEnd, rangeStart).
		Order("start_date").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

// UpdateStatus transitions a leave request's approval state
func (r *LeaveRequestRepository) UpdateStatus(id uuid.UUID, status models.LeaveStatus) error {
	result := r.db.Model(&models.LeaveRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update updates a leave request
func (r *LeaveRequestRepository) Update(leave *models.LeaveRequest) error {
	return r.db.Save(leave).Error
}

// Delete deletes a leave request
func (r *LeaveRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LeaveRequest{}, "id = ?", id).Error
}
