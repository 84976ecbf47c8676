package repository

import (
	"dispatch-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name within an organization
func (r *TeamRepository) GetByName(orgID uuid.UUID, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByOrganizationID retrieves all teams for an organization with pagination
func (r *TeamRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	// Get total count
	if err := r.db.Model(&models.Team{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("organization_id = ?", orgID).Limit(limit).Offset(offset).Order("name").Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetWithMembers retrieves a team with its memberships and their workers
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Memberships").Preload("Memberships.Worker").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetMemberWorkerIDs returns the worker ids of all members of a team.
// An unknown team id yields an empty slice, not an error.
func (r *TeamRepository) GetMemberWorkerIDs(teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TeamMembership{}).Where("team_id = ?", teamID).Pluck("worker_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// AddMember adds a worker to a team with a role
func (r *TeamRepository) AddMember(membership *models.TeamMembership) error {
	return r.db.Create(membership).Error
}

// RemoveMember removes a worker from a team
func (r *TeamRepository) RemoveMember(teamID, workerID uuid.UUID) error {
	result := r.db.Delete(&models.TeamMembership{}, "team_id = ? AND worker_id = ?", teamID, workerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
