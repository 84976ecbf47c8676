package models

import (
	"time"

	"github.com/google/uuid"
)

// CalendarBlock represents a manually entered busy interval owned by a
// worker. RecurrenceRule holds an unexpanded RRULE body ("FREQ=WEEKLY;...")
// and is empty for one-off blocks; occurrences are derived at query time.
// BlocksAvailability controls whether the interval counts against slot
// computation; the block is shown on the calendar either way.
type CalendarBlock struct {
	BaseModel
	WorkerID           uuid.UUID       `json:"worker_id" gorm:"type:uuid;not null;index" validate:"required"`
	BlockType          BlockType       `json:"block_type" gorm:"type:varchar(50);not null;default:'meeting'" validate:"required"`
	StartTime          time.Time       `json:"start_time" gorm:"not null;index" validate:"required"`
	EndTime            time.Time       `json:"end_time" gorm:"not null" validate:"required"`
	AllDay             bool            `json:"all_day" gorm:"default:false"`
	RecurrenceRule     string          `json:"recurrence_rule" gorm:"type:text"`
	Visibility         BlockVisibility `json:"visibility" gorm:"type:varchar(50);not null;default:'public'"`
	BlocksAvailability bool            `json:"blocks_availability" gorm:"default:true"`

	// Relationships
	Worker Worker `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CalendarBlock
func (CalendarBlock) TableName() string {
	return "calendar_blocks"
}
