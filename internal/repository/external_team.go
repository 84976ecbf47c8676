package repository

import (
	"time"

	"dispatch-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExternalTeamRepository handles database operations for external team snapshots
type ExternalTeamRepository struct {
	db *gorm.DB
}

// NewExternalTeamRepository creates a new external team repository
func NewExternalTeamRepository(db *gorm.DB) *ExternalTeamRepository {
	return &ExternalTeamRepository{db: db}
}

// Upsert inserts or refreshes a snapshot row keyed by the platform's team id
func (r *ExternalTeamRepository) Upsert(team *models.ExternalTeam) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "title", "partner_id", "member_admin_ids", "color", "synced_at", "updated_at",
		}),
	}).Create(team).Error
}

// GetByExternalID retrieves a snapshot by the platform's team id
func (r *ExternalTeamRepository) GetByExternalID(externalID string) (*models.ExternalTeam, error) {
	var team models.ExternalTeam
	err := r.db.First(&team, "external_id = ?", externalID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all snapshots with pagination
func (r *ExternalTeamRepository) GetAll(limit, offset int) ([]models.ExternalTeam, int64, error) {
	var teams []models.ExternalTeam
	var total int64

	// Get total count
	if err := r.db.Model(&models.ExternalTeam{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Limit(limit).Offset(offset).Order("title").Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// DeleteSyncedBefore removes snapshots the platform no longer reports,
// identified by a sync timestamp older than the given cutoff
func (r *ExternalTeamRepository) DeleteSyncedBefore(cutoff time.Time) (int64, error) {
	result := r.db.Delete(&models.ExternalTeam{}, "synced_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
