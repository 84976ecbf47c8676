package models

import (
	"github.com/google/uuid"
)

// TeamMembership represents a linking table between teams and workers.
// A worker appears at most once per team via the composite unique index.
type TeamMembership struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_memberships_team_worker"`
	WorkerID uuid.UUID `json:"worker_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_memberships_team_worker;index"`
	Role     TeamRole  `json:"role" gorm:"type:varchar(50);not null;default:'technician'"`

	// Relationships
	Team   Team   `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Worker Worker `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}
