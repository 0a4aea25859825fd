package models

import (
	"time"

	"github.com/google/uuid"
)

// Agent represents a staff user who can receive leads.
//
// ActiveLeadsCount is incremented in the same transaction that creates the
// assigned lead and is never decremented here; lead closure and reassignment
// are handled elsewhere, so the counter drifts from true current workload on
// long-running systems.
type Agent struct {
	BaseModel
	FullName         string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber      string     `json:"phone_number" gorm:"size:20"`
	RoleID           uuid.UUID  `json:"role_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsAvailable      bool       `json:"is_available" gorm:"not null;default:true"`
	ActiveLeadsCount int        `json:"active_leads_count" gorm:"not null;default:0"`
	Weightage        float64    `json:"weightage" gorm:"not null;default:1"`
	LastAssignedAt   *time.Time `json:"last_assigned_at,omitempty"`

	// Relationships
	Role Role `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Agent
func (Agent) TableName() string {
	return "agents"
}
