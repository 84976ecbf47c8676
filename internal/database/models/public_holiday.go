package models

import (
	"time"

	"github.com/google/uuid"
)

// PublicHoliday represents an organization-wide non-working date,
// optionally scoped to a region.
type PublicHoliday struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date           time.Time `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Region         *string   `json:"region,omitempty" gorm:"size:100"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PublicHoliday
func (PublicHoliday) TableName() string {
	return "public_holidays"
}
