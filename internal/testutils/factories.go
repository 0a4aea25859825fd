package testutils

import (
	"fmt"
	"time"

	"admissions-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role with default values
func (f *RoleFactory) Create() *models.Role {
	return &models.Role{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        models.RoleNameAdmissionExecutive,
		Description: "Handles inbound admission leads",
	}
}

// Manager creates the manager role
func (f *RoleFactory) Manager() *models.Role {
	role := f.Create()
	role.Name = models.RoleNameAdmissionManager
	role.Description = "Senior admissions staff"
	return role
}

// WithName sets a custom name for the role
func (f *RoleFactory) WithName(name string) *models.Role {
	role := f.Create()
	role.Name = name
	return role
}

// AgentFactory provides methods to create test Agent data
type AgentFactory struct {
	seq int
}

// NewAgentFactory creates a new AgentFactory
func NewAgentFactory() *AgentFactory {
	return &AgentFactory{}
}

// Create creates a test Agent with default values and a unique email
func (f *AgentFactory) Create(roleID uuid.UUID) *models.Agent {
	f.seq++
	return &models.Agent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:         fmt.Sprintf("Test Agent %d", f.seq),
		Email:            fmt.Sprintf("agent%d@example.com", f.seq),
		RoleID:           roleID,
		IsAvailable:      true,
		ActiveLeadsCount: 0,
		Weightage:        1,
	}
}

// WithWorkload sets the workload counter and weightage
func (f *AgentFactory) WithWorkload(roleID uuid.UUID, count int, weightage float64) *models.Agent {
	agent := f.Create(roleID)
	agent.ActiveLeadsCount = count
	agent.Weightage = weightage
	return agent
}

// Unavailable creates an agent excluded from assignment
func (f *AgentFactory) Unavailable(roleID uuid.UUID) *models.Agent {
	agent := f.Create(roleID)
	agent.IsAvailable = false
	return agent
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct {
	seq int
}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values and a unique phone
func (f *LeadFactory) Create() *models.Lead {
	f.seq++
	phone := fmt.Sprintf("99990%05d", f.seq)
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:        fmt.Sprintf("Test Lead %d", f.seq),
		Phone:           phone,
		NormalizedPhone: phone,
		AdmissionYear:   "2024",
		SourceWebsite:   "test",
		Status:          models.LeadStatusNew,
		Source:          models.LeadSourceWebsite,
	}
}

// WithDedupKey sets the full de-duplication key
func (f *LeadFactory) WithDedupKey(phone, year, source string) *models.Lead {
	lead := f.Create()
	lead.Phone = phone
	lead.NormalizedPhone = phone
	lead.AdmissionYear = year
	lead.SourceWebsite = source
	return lead
}

// AssignedTo binds the lead to an agent
func (f *LeadFactory) AssignedTo(agentID uuid.UUID) *models.Lead {
	lead := f.Create()
	lead.AssignedTo = &agentID
	return lead
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Role  *RoleFactory
	Agent *AgentFactory
	Lead  *LeadFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Role:  NewRoleFactory(),
		Agent: NewAgentFactory(),
		Lead:  NewLeadFactory(),
	}
}
