package repository

import (
	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerRepository handles database operations for workers
type WorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create creates a new worker
func (r *WorkerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

// GetByID retrieves a worker by ID
func (r *WorkerRepository) GetByID(id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByIDs retrieves all workers matching the given ids
func (r *WorkerRepository) GetByIDs(ids []uuid.UUID) ([]models.Worker, error) {
	if len(ids) == 0 {
		return []models.Worker{}, nil
	}
	var workers []models.Worker
	err := r.db.Where("id IN ?", ids).Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return workers, nil
}

// GetByEmail retrieves a worker by email
func (r *WorkerRepository) GetByEmail(email string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByExternalAdminID retrieves the worker holding the given external
// platform mapping
func (r *WorkerRepository) GetByExternalAdminID(adminID string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "external_admin_id = ?", adminID).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByOrganizationID retrieves all workers for an organization with pagination
func (r *WorkerRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Worker, int64, error) {
	var workers []models.Worker
	var total int64

	// Get total count
	if err := r.db.Model(&models.Worker{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("organization_id = ?", orgID).Limit(limit).Offset(offset).Order("last_name, first_name").Find(&workers).Error
	if err != nil {
		return nil, 0, err
	}

	return workers, total, nil
}

// GetActiveByOrganization retrieves active workers for an organization with pagination
func (r *WorkerRepository) GetActiveByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Worker, int64, error) {
	var workers []models.Worker
	var total int64

	query := r.db.Model(&models.Worker{}).Where("organization_id = ? AND is_active = ?", orgID, true)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Limit(limit).Offset(offset).Order("last_name, first_name").Find(&workers).Error
	if err != nil {
		return nil, 0, err
	}

	return workers, total, nil
}

// GetMappedByOrganization retrieves the organization's workers that carry an
// external admin mapping
func (r *WorkerRepository) GetMappedByOrganization(orgID uuid.UUID) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Where("organization_id = ? AND external_admin_id IS NOT NULL", orgID).Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return workers, nil
}

// SetExternalAdminID sets or clears a worker's external platform mapping
func (r *WorkerRepository) SetExternalAdminID(workerID uuid.UUID, adminID *string) error {
	return r.db.Model(&models.Worker{}).Where("id = ?", workerID).Update("external_admin_id", adminID).Error
}

// Update updates a worker
func (r *WorkerRepository) Update(worker *models.Worker) error {
	return r.db.Save(worker).Error
}

// Delete deletes a worker
func (r *WorkerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Worker{}, "id = ?", id).Error
}
