package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkItem represents an internal deliverable with a single due date.
// The due date is a point, not a range; on the calendar it surfaces as an
// all-day marker on that day.
type WorkItem struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssigneeID     *uuid.UUID       `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	DueDate        time.Time        `json:"due_date" gorm:"type:date;not null;index" validate:"required"`
	Status         WorkItemStatus   `json:"status" gorm:"type:varchar(50);not null;default:'open'"`
	Priority       WorkItemPriority `json:"priority" gorm:"type:varchar(50);not null;default:'medium'"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Assignee     *Worker      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for WorkItem
func (WorkItem) TableName() string {
	return "work_items"
}
