package models

// Routing-eligible role names. Agents holding any other role are never
// considered for lead assignment, regardless of availability.
const (
	RoleNameAdmissionManager   = "Admission Manager"
	RoleNameAdmissionExecutive = "Admission Executive"
)

// Role represents a staff role within the admissions organization
type Role struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`

	// Relationships
	Agents []Agent `json:"agents,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// IsRoutingEligible reports whether agents with this role may receive leads
func (r *Role) IsRoutingEligible() bool {
	return r.Name == RoleNameAdmissionManager || r.Name == RoleNameAdmissionExecutive
}
