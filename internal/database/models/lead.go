package models

import (
	"github.com/google/uuid"
)

// LeadStatus represents the lifecycle state of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusEnrolled  LeadStatus = "enrolled"
	LeadStatusClosed    LeadStatus = "closed"
)

// IsValid checks if the lead status is a known value
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusEnrolled, LeadStatusClosed:
		return true
	}
	return false
}

// LeadSource represents how a lead entered the system
type LeadSource string

const (
	LeadSourceWebsite LeadSource = "website"
	LeadSourceStaff   LeadSource = "staff"
	LeadSourceBulk    LeadSource = "bulk_upload"
)

// Lead represents a prospective admission.
//
// (NormalizedPhone, AdmissionYear, SourceWebsite) is the natural
// de-duplication key for externally submitted leads. NormalizedPhone is
// indexed so the duplicate guard can do a fast equality lookup.
type Lead struct {
	BaseModel
	FullName        string     `json:"full_name" gorm:"size:200"`
	Email           string     `json:"email" gorm:"size:255"`
	Phone           string     `json:"phone" gorm:"not null;size:20" validate:"required"`
	NormalizedPhone string     `json:"-" gorm:"not null;size:20;index:idx_leads_normalized_phone"`
	AdmissionYear   string     `json:"admission_year" gorm:"not null;size:10" validate:"required"`
	SourceWebsite   string     `json:"source_website" gorm:"not null;size:100" validate:"required"`
	CourseInterest  string     `json:"course_interest" gorm:"size:100"`
	Status          LeadStatus `json:"status" gorm:"type:varchar(50);not null;default:'new'"`
	Source          LeadSource `json:"source" gorm:"type:varchar(50);not null;default:'website'"`
	AssignedTo      *uuid.UUID `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	CreatedBy       *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid"`

	// Relationships
	AssignedAgent *Agent `json:"assigned_agent,omitempty" gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
