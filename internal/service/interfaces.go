package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

import (
	"admissions-crm-backend/internal/database/models"
	"admissions-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// AssignmentFinder is the routing decision surface consumed by the lead
// service. Implementations are fail-open: a nil winner or empty pool means
// "proceed unassigned", never an error.
type AssignmentFinder interface {
	FindBestAgent() *CandidateAgent
	CandidatePool() []models.Agent
}

// LeadServiceInterface defines the lead service contract
type LeadServiceInterface interface {
	CreateLead(req *CreateLeadRequest, isInternal bool, creatorID *uuid.UUID) (*CreateLeadResult, error)
	BulkCreateLeads(reqs []CreateLeadRequest, creatorID *uuid.UUID) (*BulkCreateResult, error)
	GetLead(id uuid.UUID) (*LeadResponse, error)
	ListLeads(filter repository.LeadFilter, page, limit int) (*LeadListResponse, error)
}

// AgentServiceInterface defines the agent service contract
type AgentServiceInterface interface {
	CreateAgent(req *CreateAgentRequest) (*AgentResponse, error)
	GetAgent(id uuid.UUID) (*AgentResponse, error)
	ListAgents(page, limit int) (*AgentListResponse, error)
	SetAvailability(id uuid.UUID, isAvailable bool) (*AgentResponse, error)
}

// RoleServiceInterface defines the role service contract
type RoleServiceInterface interface {
	CreateRole(req *CreateRoleRequest) (*models.Role, error)
	GetRole(id uuid.UUID) (*models.Role, error)
	ListRoles() ([]models.Role, error)
}
