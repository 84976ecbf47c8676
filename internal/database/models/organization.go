package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Domain string `json:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Region string `json:"region" gorm:"size:100"`

	// Relationships
	Workers        []Worker        `json:"workers,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Teams          []Team          `json:"teams,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	PublicHolidays []PublicHoliday `json:"public_holidays,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	WorkItems      []WorkItem      `json:"work_items,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
