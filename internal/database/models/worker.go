package models

import (
	"github.com/google/uuid"
)

// TeamRole represents the role a worker holds within a team
type TeamRole string

const (
	TeamRoleLead       TeamRole = "lead"
	TeamRoleDispatcher TeamRole = "dispatcher"
	TeamRoleTechnician TeamRole = "technician"
)

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleLead, TeamRoleDispatcher, TeamRoleTechnician:
		return true
	}
	return false
}

// Worker represents a member of the local workforce who can be assigned
// work and owns a calendar. The optional ExternalAdminID links the worker
// to its identity in the external field-service platform; at most one
// worker may hold a given mapping.
type Worker struct {
	BaseModel
	OrganizationID  uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName       string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName        string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber     string    `json:"phone_number" gorm:"size:20"`
	ExternalAdminID *string   `json:"external_admin_id,omitempty" gorm:"size:64;uniqueIndex:idx_workers_external_admin_id,where:external_admin_id IS NOT NULL"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Organization   Organization     `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Memberships    []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	CalendarBlocks []CalendarBlock  `json:"calendar_blocks,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	LeaveRequests  []LeaveRequest   `json:"leave_requests,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Worker
func (Worker) TableName() string {
	return "workers"
}

// FullName returns the worker's display name
func (w *Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}
