package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaveRequest represents a worker's request for a range of days off.
// Only approved requests count as busy time for availability purposes.
type LeaveRequest struct {
	BaseModel
	WorkerID  uuid.UUID   `json:"worker_id" gorm:"type:uuid;not null;index" validate:"required"`
	LeaveType LeaveType   `json:"leave_type" gorm:"type:varchar(50);not null;default:'vacation'" validate:"required"`
	StartDate time.Time   `json:"start_date" gorm:"type:date;not null;index" validate:"required"`
	EndDate   time.Time   `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Status    LeaveStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending'"`

	// Relationships
	Worker Worker `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LeaveRequest
func (LeaveRequest) TableName() string {
	return "leave_requests"
}
