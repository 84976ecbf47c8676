package repository

import (
	"time"

	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkItemRepository handles database operations for work items
type WorkItemRepository struct {
	db *gorm.DB
}

// NewWorkItemRepository creates a new work item repository
func NewWorkItemRepository(db *gorm.DB) *WorkItemRepository {
	return &WorkItemRepository{db: db}
}

// Create creates a new work item
func (r *WorkItemRepository) Create(item *models.WorkItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a work item by ID
func (r *WorkItemRepository) GetByID(id uuid.UUID) (*models.WorkItem, error) {
	var item models.WorkItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByOrganizationID retrieves all work items for an organization with pagination
func (r *WorkItemRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.WorkItem, int64, error) {
	var items []models.WorkItem
	var total int64

	// Get total count
	if err := r.db.Model(&models.WorkItem{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("organization_id = ?", orgID).Limit(limit).Offset(offset).Order("due_date").Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListDueInRange retrieves the organization's work items due inside the
// inclusive date window, optionally narrowed to a set of assignees
func (r *WorkItemRepository) ListDueInRange(orgID uuid.UUID, rangeStart, rangeEnd time.Time, assigneeIDs []uuid.UUID) ([]models.WorkItem, error) {
	query := r.db.
		Where("organization_id = ?", orgID).
		Where("due_date >= ? AND due_date <= ?", rangeStart, rangeEnd)
	if len(assigneeIDs) > 0 {
		query = query.Where("assignee_id IN ?", assigneeIDs)
	}

	var items []models.WorkItem
	err := query.Order("due_date").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates a work item
func (r *WorkItemRepository) Update(item *models.WorkItem) error {
	return r.db.Save(item).Error
}

// Delete deletes a work item
func (r *WorkItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WorkItem{}, "id = ?", id).Error
}
