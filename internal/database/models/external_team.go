package models

import (
	"time"
)

// ExternalTeam is a snapshot of a team record owned by the external
// field-service platform. Member identities are that platform's
// administrator ids, not local worker ids; the sync job refreshes rows.
type ExternalTeam struct {
	BaseModel
	ExternalID     string    `json:"external_id" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`
	PartnerID      *string   `json:"partner_id,omitempty" gorm:"size:64"`
	MemberAdminIDs []string  `json:"member_admin_ids" gorm:"serializer:json;type:jsonb"`
	Color          string    `json:"color" gorm:"size:20"`
	SyncedAt       time.Time `json:"synced_at"`
}

// TableName returns the table name for ExternalTeam
func (ExternalTeam) TableName() string {
	return "external_teams"
}
