package models

import (
	"github.com/google/uuid"
)

// Team represents a local grouping of workers for dispatch purposes
type Team struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email          string    `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"` // DL
	Color          string    `json:"color" gorm:"size:20"`

	// Relationships
	Organization Organization     `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Memberships  []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
